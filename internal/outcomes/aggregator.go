// Package outcomes converts a run's cumulative event counts into cost and
// QALY metrics under a given accounting perspective. Everything here is a
// deterministic function of the snapshot and the parameter set; no
// randomness is consumed.
package outcomes

import (
	"fmt"

	"github.com/khardy/pad-screen-model/internal/config"
	"github.com/khardy/pad-screen-model/internal/simulation"
	"github.com/khardy/pad-screen-model/pkg/constants"
	"github.com/khardy/pad-screen-model/pkg/mathutil"
)

// ScenarioResult holds the derived economics for one (strategy, horizon,
// perspective) combination. It has no independent identity: recomputed from
// its snapshot, never mutated in place.
type ScenarioResult struct {
	Strategy    string
	Horizon     int
	Perspective string

	TreatmentCost float64
	EventCost     float64
	TotalCost     float64

	QALY             float64
	MonetizedQALY    float64
	ProductivityGain float64
	WelfareGain      float64
	NetBenefit       float64

	Snapshot *simulation.YearSnapshot
}

// Aggregate derives the ScenarioResult for one snapshot. The horizon is the
// requested one; the elapsed years come from the snapshot, which may have
// stopped earlier at retirement age.
func Aggregate(snap *simulation.YearSnapshot, horizon int, perspective string, conf *config.Configuration) (*ScenarioResult, error) {
	if perspective != constants.PerspectivePayer && perspective != constants.PerspectiveSocietal {
		return nil, fmt.Errorf("unknown perspective %q", perspective)
	}
	if snap == nil {
		return nil, fmt.Errorf("nil snapshot")
	}

	elapsed := float64(snap.Year)
	size := float64(conf.Cohort.Size)
	deaths := float64(snap.Cumulative[constants.EventDeath])
	living := float64(snap.Living)
	staged := conf.Model.Variant == constants.VariantStaged

	result := &ScenarioResult{
		Strategy:    snap.Strategy,
		Horizon:     horizon,
		Perspective: perspective,
		Snapshot:    snap,
	}

	if snap.Strategy == constants.StrategyScreen {
		result.TreatmentCost = conf.Costs.Screening * size
		if staged {
			result.TreatmentCost += conf.Costs.MedicationPerYear * conf.Analysis.PadPrevalence * size * elapsed
		}
	}

	for _, kind := range conf.EventKinds() {
		count := float64(snap.Cumulative[kind])
		result.EventCost += count * conf.Costs.Events[kind].UnitCost(perspective)
	}

	result.TotalCost = result.TreatmentCost + result.EventCost
	if !staged && snap.Strategy == constants.StrategyScreen {
		// Preventive care is what a positive ABI screen initiates.
		result.TotalCost += conf.Costs.PreventiveCarePerYear * size * elapsed
	}

	remaining := mathutil.RemainingYears(conf.Cohort.RetirementAge, snap.Age)
	if perspective == constants.PerspectiveSocietal {
		result.TotalCost += deaths * (conf.Costs.ProductivityPerYear + conf.Costs.WelfarePerYear) * remaining
	}

	// Deaths contribute zero QALY for the remaining simulated period, modeled
	// as a flat subtraction rather than an age-weighted one.
	result.QALY = living * conf.Utilities.Baseline
	for _, kind := range conf.DrawOrder() {
		result.QALY -= float64(snap.Cumulative[kind]) * conf.Utilities.Decrement(kind)
	}
	result.QALY -= deaths * conf.Utilities.Baseline

	if staged {
		result.MonetizedQALY = result.QALY * conf.Analysis.WillingnessToPay
		result.ProductivityGain = living * conf.Costs.ProductivityPerYear * remaining
		result.WelfareGain = living * conf.Costs.WelfarePerYear * remaining
		result.NetBenefit = result.MonetizedQALY - result.TotalCost + result.ProductivityGain + result.WelfareGain
	}

	return result, nil
}
