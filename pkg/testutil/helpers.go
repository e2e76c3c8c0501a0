// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/khardy/pad-screen-model/internal/config"
	"github.com/khardy/pad-screen-model/pkg/constants"
)

// SimpleConfig returns a valid parameter set for the simple four-event
// variant, using the reference screening scenario (100k cohort, ages 50-68,
// $200 screening visit).
func SimpleConfig() *config.Configuration {
	return &config.Configuration{
		Model:  config.ModelConfig{Variant: constants.VariantSimple},
		Cohort: config.Cohort{Size: 100000, BaseAge: 50, RetirementAge: 68},
		Strategies: map[string]config.Strategy{
			constants.StrategyScreen: {Probabilities: map[string]float64{
				constants.EventDeath:      0.028,
				constants.EventMACE:       0.025,
				constants.EventAmputation: 0.012,
				constants.EventRevasc:     0.035,
			}},
			constants.StrategyNoScreen: {Probabilities: map[string]float64{
				constants.EventDeath:      0.040,
				constants.EventMACE:       0.034,
				constants.EventAmputation: 0.020,
				constants.EventRevasc:     0.028,
			}},
		},
		Costs: config.Costs{
			Screening:             200,
			PreventiveCarePerYear: 150,
			ProductivityPerYear:   42000,
			WelfarePerYear:        9000,
			Events: map[string]config.EventCost{
				constants.EventDeath:      {Payer: 18000, Societal: 22000},
				constants.EventMACE:       {Payer: 24500, Societal: 31000},
				constants.EventAmputation: {Payer: 52000, Societal: 68000},
				constants.EventRevasc:     {Payer: 31000},
			},
		},
		Utilities: config.Utilities{
			Baseline: 1.0,
			Weights: map[string]float64{
				constants.EventMACE:       0.73,
				constants.EventAmputation: 0.61,
				constants.EventRevasc:     0.84,
			},
		},
		Analysis: config.Analysis{
			Horizons:     []int{15},
			Perspectives: []string{constants.PerspectivePayer, constants.PerspectiveSocietal},
			Seed:         42,
		},
	}
}

// StagedConfig returns a valid parameter set for the staged PAD progression
// variant.
func StagedConfig() *config.Configuration {
	return &config.Configuration{
		Model:  config.ModelConfig{Variant: constants.VariantStaged},
		Cohort: config.Cohort{Size: 100000, BaseAge: 50, RetirementAge: 68},
		Strategies: map[string]config.Strategy{
			constants.StrategyScreen: {Probabilities: map[string]float64{
				constants.EventDeath:      0.020,
				constants.EventNoPADToAsx: 0.030,
				constants.EventAsxToSx:    0.040,
				constants.EventSxToCLI:    0.015,
				constants.EventCLIToAmp:   0.060,
				constants.EventMACE:       0.022,
				constants.EventESRD:       0.006,
			}},
			constants.StrategyNoScreen: {Probabilities: map[string]float64{
				constants.EventDeath:      0.031,
				constants.EventNoPADToAsx: 0.030,
				constants.EventAsxToSx:    0.065,
				constants.EventSxToCLI:    0.028,
				constants.EventCLIToAmp:   0.110,
				constants.EventMACE:       0.031,
				constants.EventESRD:       0.011,
			}},
		},
		Costs: config.Costs{
			Screening:           200,
			MedicationPerYear:   480,
			ProductivityPerYear: 42000,
			WelfarePerYear:      9000,
			Events: map[string]config.EventCost{
				constants.EventDeath:      {Payer: 18000, Societal: 22000},
				constants.EventNoPADToAsx: {Payer: 900},
				constants.EventAsxToSx:    {Payer: 4200},
				constants.EventSxToCLI:    {Payer: 26000, Societal: 33000},
				constants.EventCLIToAmp:   {Payer: 52000, Societal: 68000},
				constants.EventMACE:       {Payer: 24500, Societal: 31000},
				constants.EventESRD:       {Payer: 91000, Societal: 104000},
			},
		},
		Utilities: config.Utilities{
			Baseline: 1.0,
			Weights: map[string]float64{
				constants.EventNoPADToAsx: 0.95,
				constants.EventAsxToSx:    0.87,
				constants.EventSxToCLI:    0.64,
				constants.EventCLIToAmp:   0.61,
				constants.EventMACE:       0.73,
				constants.EventESRD:       0.55,
			},
		},
		Analysis: config.Analysis{
			Horizons:         []int{10},
			Perspectives:     []string{constants.PerspectivePayer},
			Seed:             42,
			WillingnessToPay: 100000,
			PadPrevalence:    0.18,
		},
	}
}

// ZeroProbabilities sets every transition probability of both strategies to
// zero, for full-survival edge-case tests.
func ZeroProbabilities(conf *config.Configuration) {
	for _, arm := range conf.Strategies {
		for kind := range arm.Probabilities {
			arm.Probabilities[kind] = 0
		}
	}
}
