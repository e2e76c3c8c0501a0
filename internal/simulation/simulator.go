// Package simulation advances a fixed cohort through annual steps under one
// screening strategy, producing cumulative clinical event counts and the
// surviving population. Only pool counts are tracked, never individuals: a
// binomial draw over the at-risk pool is equivalent in aggregate to sampling
// and removing members from a set.
package simulation

import (
	"fmt"

	"github.com/khardy/pad-screen-model/internal/config"
	"github.com/khardy/pad-screen-model/pkg/constants"
)

// SimulationError indicates an invariant violation during a run, such as
// draws exceeding the at-risk pool. The run aborts rather than clamping,
// since clamping would corrupt derived cost and QALY figures without
// signaling that the probabilities are misconfigured.
type SimulationError struct {
	Strategy string
	Year     int
	Reason   string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation invariant violated (strategy=%s year=%d): %s", e.Strategy, e.Year, e.Reason)
}

// YearSnapshot is an immutable record of the cohort at the end of one
// simulated year. The simulator returns the snapshot of the last completed
// year, which may be earlier than the requested horizon when retirement age
// is reached first; callers must not assume Year equals the horizon.
type YearSnapshot struct {
	Year       int
	Strategy   string
	Age        int
	Living     int
	Cumulative map[string]int
}

// cohortState is the ephemeral working state of one run.
type cohortState struct {
	living     int
	age        int
	cumulative map[string]int
}

func (cs *cohortState) snapshot(year int, strategy string) YearSnapshot {
	counts := make(map[string]int, len(cs.cumulative))
	for kind, n := range cs.cumulative {
		counts[kind] = n
	}
	return YearSnapshot{
		Year:       year,
		Strategy:   strategy,
		Age:        cs.age,
		Living:     cs.living,
		Cumulative: counts,
	}
}

// Simulate runs one strategy to the given horizon and returns the final
// YearSnapshot. The source is consumed one binomial draw per event kind per
// year, in a fixed order.
func Simulate(strategy string, horizon int, conf *config.Configuration, src BinomialSource) (*YearSnapshot, error) {
	history, err := SimulateHistory(strategy, horizon, conf, src)
	if err != nil {
		return nil, err
	}
	final := history[len(history)-1]
	return &final, nil
}

// SimulateHistory runs one strategy to the given horizon and returns the
// snapshot of every completed year, last entry being the run's result.
//
// Each year the at-risk pool starts at the living count and shrinks by every
// count already drawn that year: deaths first (simple variant), then the
// variant's fixed event sequence. The order is part of the model and must not
// change; it is what keeps one cohort member from being counted under two
// mutually exclusive events in the same year.
func SimulateHistory(strategy string, horizon int, conf *config.Configuration, src BinomialSource) ([]YearSnapshot, error) {
	arm, ok := conf.Strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be >= 1, got %d", horizon)
	}

	annualDeaths := conf.Model.Variant == constants.VariantSimple

	state := &cohortState{
		living:     conf.Cohort.Size,
		age:        conf.Cohort.BaseAge,
		cumulative: make(map[string]int),
	}
	var history []YearSnapshot

	for year := 1; state.age < conf.Cohort.RetirementAge && year <= horizon; year++ {
		atRisk := state.living
		pool := atRisk
		drawn := 0

		if annualDeaths {
			deaths := src.Binomial(pool, arm.Probabilities[constants.EventDeath])
			state.cumulative[constants.EventDeath] += deaths
			state.living -= deaths
			pool -= deaths
			drawn += deaths
		}

		for _, kind := range conf.DrawOrder() {
			if pool < 0 {
				return nil, &SimulationError{Strategy: strategy, Year: year, Reason: "at-risk pool went negative"}
			}
			n := src.Binomial(pool, arm.Probabilities[kind])
			state.cumulative[kind] += n
			pool -= n
			drawn += n
			if state.cumulative[kind] > conf.Cohort.Size {
				return nil, &SimulationError{
					Strategy: strategy,
					Year:     year,
					Reason:   fmt.Sprintf("cumulative %s count %d exceeds cohort size %d", kind, state.cumulative[kind], conf.Cohort.Size),
				}
			}
		}

		if drawn > atRisk {
			return nil, &SimulationError{
				Strategy: strategy,
				Year:     year,
				Reason:   fmt.Sprintf("drew %d events from an at-risk pool of %d", drawn, atRisk),
			}
		}

		state.age++
		history = append(history, state.snapshot(year, strategy))
	}

	if conf.Model.Variant == constants.VariantStaged {
		if err := applyScaledDeaths(strategy, arm, conf, src, state, &history); err != nil {
			return nil, err
		}
	}

	return history, nil
}

// applyScaledDeaths implements the staged variant's death figure: a single
// draw at probability p_death scaled linearly by the elapsed years, applied
// to the final snapshot. The linear scaling is a documented approximation
// specific to this variant and is deliberately not unified with the
// annual-stepped death draw of the simple variant.
func applyScaledDeaths(strategy string, arm config.Strategy, conf *config.Configuration, src BinomialSource, state *cohortState, history *[]YearSnapshot) error {
	elapsed := len(*history)
	scaled := arm.Probabilities[constants.EventDeath] * float64(elapsed)
	if scaled > 1 {
		return &SimulationError{
			Strategy: strategy,
			Year:     elapsed,
			Reason:   fmt.Sprintf("scaled death probability %v exceeds 1 over %d years", scaled, elapsed),
		}
	}

	deaths := src.Binomial(conf.Cohort.Size, scaled)
	state.cumulative[constants.EventDeath] = deaths
	state.living = conf.Cohort.Size - deaths
	(*history)[elapsed-1] = state.snapshot(elapsed, strategy)
	return nil
}
