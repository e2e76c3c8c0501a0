// Package config defines the data structures related to configuration and
// includes functions for loading, parsing, and validating the config.
package config

import (
	"fmt"

	"github.com/khardy/pad-screen-model/pkg/constants"
	"github.com/spf13/viper"
)

// ConfigurationError indicates an invalid parameter set. It is fatal and is
// surfaced before any simulation runs.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Configuration holds the full parameter set for pad-screen-model. It is
// constructed once by LoadConfiguration, checked by Validate, and never
// mutated afterwards; it is safe to share across concurrent runs.
type Configuration struct {
	Model      ModelConfig
	Cohort     Cohort
	Strategies map[string]Strategy
	Costs      Costs
	Utilities  Utilities
	Analysis   Analysis
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// ModelConfig selects the model variant.
type ModelConfig struct {
	Variant string // simple, staged
}

// Cohort describes the simulated population.
type Cohort struct {
	Size          int
	BaseAge       int
	RetirementAge int
}

// Strategy holds one arm's annual transition probabilities, keyed by event kind.
type Strategy struct {
	Probabilities map[string]float64
}

// EventCost holds the per-event unit cost under each perspective. A zero
// societal figure falls back to the payer figure.
type EventCost struct {
	Payer    float64
	Societal float64
}

// UnitCost returns the cost applicable under the given perspective.
func (c EventCost) UnitCost(perspective string) float64 {
	if perspective == constants.PerspectiveSocietal && c.Societal != 0 {
		return c.Societal
	}
	return c.Payer
}

// Costs holds all unit costs referenced by the outcome aggregation.
type Costs struct {
	Screening             float64
	MedicationPerYear     float64
	PreventiveCarePerYear float64
	ProductivityPerYear   float64
	WelfarePerYear        float64
	Events                map[string]EventCost
}

// Utilities holds the QALY weights. Baseline anchors the healthy/no-PAD state;
// Weights maps each non-death event kind to its post-event health-state weight.
// Death is fixed at weight zero.
type Utilities struct {
	Baseline float64
	Weights  map[string]float64
}

// Decrement returns the per-event QALY loss relative to baseline.
func (u Utilities) Decrement(kind string) float64 {
	return u.Baseline - u.Weights[kind]
}

// Analysis holds the comparison enumeration and run controls.
type Analysis struct {
	Horizons         []int
	Perspectives     []string
	Seed             uint64
	WillingnessToPay float64
	PadPrevalence    float64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format       string `yaml:"format,omitempty"` // pretty, csv, xlsx
	WorkbookFile string `yaml:"workbookFile,omitempty"`
}

// simpleDrawOrder and stagedDrawOrder are the fixed post-death draw sequences.
// The order matters: each draw shrinks the at-risk pool for every draw after
// it within the same year, which is what prevents one cohort member from being
// counted under two mutually exclusive events.
var (
	simpleDrawOrder = []string{
		constants.EventMACE,
		constants.EventAmputation,
		constants.EventRevasc,
	}
	stagedDrawOrder = []string{
		constants.EventNoPADToAsx,
		constants.EventAsxToSx,
		constants.EventSxToCLI,
		constants.EventCLIToAmp,
		constants.EventMACE,
		constants.EventESRD,
	}
)

// DrawOrder returns the active variant's fixed non-death draw sequence.
func (conf *Configuration) DrawOrder() []string {
	if conf.Model.Variant == constants.VariantStaged {
		return stagedDrawOrder
	}
	return simpleDrawOrder
}

// EventKinds returns every event kind of the active variant, death included.
func (conf *Configuration) EventKinds() []string {
	kinds := []string{constants.EventDeath}
	return append(kinds, conf.DrawOrder()...)
}

// ReportingBase returns the multiplier applied to cohort-normalized deltas.
func (conf *Configuration) ReportingBase() float64 {
	if conf.Model.Variant == constants.VariantStaged {
		return constants.ReportingBaseStaged
	}
	return constants.ReportingBaseSimple
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.normalize()

	return &configuration, nil
}

// normalize canonicalizes aliases and fills defaults that do not require
// validation decisions.
func (conf *Configuration) normalize() {
	for i, p := range conf.Analysis.Perspectives {
		if p == "medicaid" {
			conf.Analysis.Perspectives[i] = constants.PerspectivePayer
		}
	}
	if len(conf.Analysis.Perspectives) == 0 {
		conf.Analysis.Perspectives = []string{constants.PerspectivePayer}
	}
	if conf.Output.WorkbookFile == "" {
		conf.Output.WorkbookFile = constants.DefaultWorkbookFile
	}
}
