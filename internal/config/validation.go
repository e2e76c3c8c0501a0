package config

import (
	"fmt"

	"github.com/khardy/pad-screen-model/pkg/constants"
)

// Validate checks the full parameter set and returns a *ConfigurationError on
// the first fatal problem. It must pass before any simulation runs.
func (conf *Configuration) Validate() error {
	switch conf.Model.Variant {
	case constants.VariantSimple, constants.VariantStaged:
	default:
		return &ConfigurationError{
			Field:  "model.variant",
			Reason: fmt.Sprintf("unknown variant %q, expected %s or %s", conf.Model.Variant, constants.VariantSimple, constants.VariantStaged),
		}
	}

	if conf.Cohort.Size <= 0 {
		return &ConfigurationError{Field: "cohort.size", Reason: fmt.Sprintf("must be positive, got %d", conf.Cohort.Size)}
	}
	if conf.Cohort.RetirementAge <= conf.Cohort.BaseAge {
		return &ConfigurationError{
			Field:  "cohort.retirementAge",
			Reason: fmt.Sprintf("must exceed baseAge (%d <= %d)", conf.Cohort.RetirementAge, conf.Cohort.BaseAge),
		}
	}

	for _, strategy := range []string{constants.StrategyScreen, constants.StrategyNoScreen} {
		arm, ok := conf.Strategies[strategy]
		if !ok {
			return &ConfigurationError{Field: "strategies", Reason: fmt.Sprintf("missing strategy %q", strategy)}
		}
		for _, kind := range conf.EventKinds() {
			p, ok := arm.Probabilities[kind]
			if !ok {
				return &ConfigurationError{
					Field:  fmt.Sprintf("strategies.%s.probabilities", strategy),
					Reason: fmt.Sprintf("missing probability for event %q", kind),
				}
			}
			if p < 0 || p > 1 {
				return &ConfigurationError{
					Field:  fmt.Sprintf("strategies.%s.probabilities.%s", strategy, kind),
					Reason: fmt.Sprintf("probability %v outside [0,1]", p),
				}
			}
		}
	}

	for _, kind := range conf.DrawOrder() {
		if _, ok := conf.Costs.Events[kind]; !ok {
			return &ConfigurationError{Field: "costs.events", Reason: fmt.Sprintf("missing unit cost for event %q", kind)}
		}
		w, ok := conf.Utilities.Weights[kind]
		if !ok {
			return &ConfigurationError{Field: "utilities.weights", Reason: fmt.Sprintf("missing utility weight for event %q", kind)}
		}
		if w < 0 || w > 1 {
			return &ConfigurationError{
				Field:  fmt.Sprintf("utilities.weights.%s", kind),
				Reason: fmt.Sprintf("weight %v outside [0,1]", w),
			}
		}
		if w > conf.Utilities.Baseline {
			return &ConfigurationError{
				Field:  fmt.Sprintf("utilities.weights.%s", kind),
				Reason: fmt.Sprintf("weight %v exceeds baseline %v", w, conf.Utilities.Baseline),
			}
		}
	}
	if _, ok := conf.Costs.Events[constants.EventDeath]; !ok {
		return &ConfigurationError{Field: "costs.events", Reason: "missing unit cost for event \"death\""}
	}
	if conf.Utilities.Baseline <= 0 || conf.Utilities.Baseline > 1 {
		return &ConfigurationError{
			Field:  "utilities.baseline",
			Reason: fmt.Sprintf("baseline %v outside (0,1]", conf.Utilities.Baseline),
		}
	}

	if len(conf.Analysis.Horizons) == 0 {
		return &ConfigurationError{Field: "analysis.horizons", Reason: "at least one horizon required"}
	}
	for _, h := range conf.Analysis.Horizons {
		if h < 1 {
			return &ConfigurationError{Field: "analysis.horizons", Reason: fmt.Sprintf("horizon %d must be >= 1", h)}
		}
	}
	for _, p := range conf.Analysis.Perspectives {
		if p != constants.PerspectivePayer && p != constants.PerspectiveSocietal {
			return &ConfigurationError{Field: "analysis.perspectives", Reason: fmt.Sprintf("unknown perspective %q", p)}
		}
	}

	if conf.Model.Variant == constants.VariantStaged {
		if conf.Analysis.WillingnessToPay <= 0 {
			return &ConfigurationError{Field: "analysis.willingnessToPay", Reason: "must be positive for the staged variant"}
		}
		if conf.Analysis.PadPrevalence < 0 || conf.Analysis.PadPrevalence > 1 {
			return &ConfigurationError{
				Field:  "analysis.padPrevalence",
				Reason: fmt.Sprintf("prevalence %v outside [0,1]", conf.Analysis.PadPrevalence),
			}
		}
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for conditions that are legal but probably unintended.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	maxYears := conf.Cohort.RetirementAge - conf.Cohort.BaseAge
	for _, h := range conf.Analysis.Horizons {
		if h > maxYears {
			warnings = append(warnings, fmt.Sprintf(
				"Horizon %d exceeds simulable years %d (retirementAge - baseAge); run will stop at year %d",
				h, maxYears, maxYears))
		}
	}

	screen, okScreen := conf.Strategies[constants.StrategyScreen]
	control, okControl := conf.Strategies[constants.StrategyNoScreen]
	if okScreen && okControl {
		for _, kind := range conf.EventKinds() {
			// Revascularization counts are expected to rise under screening;
			// more detected PAD means more procedures.
			if kind == constants.EventRevasc {
				continue
			}
			if screen.Probabilities[kind] > control.Probabilities[kind] {
				warnings = append(warnings, fmt.Sprintf(
					"Screening probability for %q (%v) exceeds no-screen (%v); screening is not protective for this event",
					kind, screen.Probabilities[kind], control.Probabilities[kind]))
			}
		}
	}

	return warnings
}
