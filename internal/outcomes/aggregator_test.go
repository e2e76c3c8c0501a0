package outcomes

import (
	"testing"

	"github.com/khardy/pad-screen-model/internal/simulation"
	"github.com/khardy/pad-screen-model/pkg/constants"
	"github.com/khardy/pad-screen-model/pkg/mathutil"
	"github.com/khardy/pad-screen-model/pkg/testutil"
)

func TestAggregateUnknownPerspective(t *testing.T) {
	conf := testutil.SimpleConfig()
	snap := &simulation.YearSnapshot{
		Year:       1,
		Strategy:   constants.StrategyScreen,
		Age:        51,
		Living:     conf.Cohort.Size,
		Cumulative: map[string]int{},
	}

	_, err := Aggregate(snap, 1, "insurer", conf)
	if err == nil {
		t.Error("Aggregate() expected error for unknown perspective")
	}
}

func TestAggregateNilSnapshot(t *testing.T) {
	conf := testutil.SimpleConfig()
	_, err := Aggregate(nil, 1, constants.PerspectivePayer, conf)
	if err == nil {
		t.Error("Aggregate() expected error for nil snapshot")
	}
}

func TestAggregateScreeningTreatmentCost(t *testing.T) {
	// Reference scenario: 100k cohort at $200 per screening visit.
	conf := testutil.SimpleConfig()
	snap := &simulation.YearSnapshot{
		Year:       15,
		Strategy:   constants.StrategyScreen,
		Age:        65,
		Living:     conf.Cohort.Size,
		Cumulative: map[string]int{},
	}

	result, err := Aggregate(snap, 15, constants.PerspectivePayer, conf)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if result.TreatmentCost != 20000000 {
		t.Errorf("TreatmentCost = %.2f, expected 20000000 (200 x 100000)", result.TreatmentCost)
	}
}

func TestAggregateZeroEvents(t *testing.T) {
	conf := testutil.SimpleConfig()
	snap := &simulation.YearSnapshot{
		Year:       10,
		Strategy:   constants.StrategyScreen,
		Age:        60,
		Living:     conf.Cohort.Size,
		Cumulative: map[string]int{},
	}

	result, err := Aggregate(snap, 10, constants.PerspectivePayer, conf)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if result.EventCost != 0 {
		t.Errorf("EventCost = %.2f, expected 0 with no events", result.EventCost)
	}

	// Total is treatment plus the ongoing preventive care that a positive
	// screen initiates; nothing else.
	expectedTotal := result.TreatmentCost + conf.Costs.PreventiveCarePerYear*100000*10
	if !mathutil.WithinTolerance(result.TotalCost, expectedTotal, constants.CurrencyTolerance) {
		t.Errorf("TotalCost = %.2f, expected %.2f", result.TotalCost, expectedTotal)
	}

	expectedQALY := float64(conf.Cohort.Size) * conf.Utilities.Baseline
	if !mathutil.WithinTolerance(result.QALY, expectedQALY, 1e-9) {
		t.Errorf("QALY = %.4f, expected %.4f", result.QALY, expectedQALY)
	}
}

func TestAggregatePerspectives(t *testing.T) {
	conf := testutil.SimpleConfig()
	snap := &simulation.YearSnapshot{
		Year:     15,
		Strategy: constants.StrategyNoScreen,
		Age:      65,
		Living:   94000,
		Cumulative: map[string]int{
			constants.EventDeath: 6000,
			constants.EventMACE:  3000,
		},
	}

	tests := []struct {
		name              string
		perspective       string
		expectedEventCost float64
		expectedTotalCost float64
	}{
		{
			name:              "Payer counts medical costs only",
			perspective:       constants.PerspectivePayer,
			expectedEventCost: 6000*18000 + 3000*24500,
			expectedTotalCost: 6000*18000 + 3000*24500,
		},
		{
			name:              "Societal adds productivity and welfare for deaths",
			perspective:       constants.PerspectiveSocietal,
			expectedEventCost: 6000*22000 + 3000*31000,
			// Three productive years remain at age 65 against retirement at 68.
			expectedTotalCost: 6000*22000 + 3000*31000 + 6000*(42000+9000)*3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Aggregate(snap, 15, tt.perspective, conf)
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}

			if result.TreatmentCost != 0 {
				t.Errorf("TreatmentCost = %.2f, expected 0 for no-screen arm", result.TreatmentCost)
			}
			if !mathutil.WithinTolerance(result.EventCost, tt.expectedEventCost, constants.CurrencyTolerance) {
				t.Errorf("EventCost = %.2f, expected %.2f", result.EventCost, tt.expectedEventCost)
			}
			if !mathutil.WithinTolerance(result.TotalCost, tt.expectedTotalCost, constants.CurrencyTolerance) {
				t.Errorf("TotalCost = %.2f, expected %.2f", result.TotalCost, tt.expectedTotalCost)
			}

			// 94000 x 1.0 - 3000 x 0.27 - 6000 x 1.0
			if !mathutil.WithinTolerance(result.QALY, 87190, 1e-6) {
				t.Errorf("QALY = %.4f, expected 87190", result.QALY)
			}
		})
	}
}

func TestAggregateStaged(t *testing.T) {
	conf := testutil.StagedConfig()
	snap := &simulation.YearSnapshot{
		Year:     10,
		Strategy: constants.StrategyScreen,
		Age:      60,
		Living:   80000,
		Cumulative: map[string]int{
			constants.EventDeath:    20000,
			constants.EventCLIToAmp: 1000,
		},
	}

	result, err := Aggregate(snap, 10, constants.PerspectivePayer, conf)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// Screening visit plus ten years of medication for the prevalent fraction.
	expectedTreatment := 200.0*100000 + 480*0.18*100000*10
	if !mathutil.WithinTolerance(result.TreatmentCost, expectedTreatment, constants.CurrencyTolerance) {
		t.Errorf("TreatmentCost = %.2f, expected %.2f", result.TreatmentCost, expectedTreatment)
	}

	expectedEvent := 20000.0*18000 + 1000*52000
	if !mathutil.WithinTolerance(result.EventCost, expectedEvent, constants.CurrencyTolerance) {
		t.Errorf("EventCost = %.2f, expected %.2f", result.EventCost, expectedEvent)
	}

	// 80000 - 1000 x (1 - 0.61) - 20000
	if !mathutil.WithinTolerance(result.QALY, 59610, 1e-6) {
		t.Errorf("QALY = %.4f, expected 59610", result.QALY)
	}
	if !mathutil.WithinTolerance(result.MonetizedQALY, 59610*100000, 1) {
		t.Errorf("MonetizedQALY = %.2f, expected %.2f", result.MonetizedQALY, 59610.0*100000)
	}

	remaining := 8.0
	expectedProductivity := 80000 * 42000 * remaining
	expectedWelfare := 80000 * 9000 * remaining
	if !mathutil.WithinTolerance(result.ProductivityGain, expectedProductivity, 1) {
		t.Errorf("ProductivityGain = %.2f, expected %.2f", result.ProductivityGain, expectedProductivity)
	}
	if !mathutil.WithinTolerance(result.WelfareGain, expectedWelfare, 1) {
		t.Errorf("WelfareGain = %.2f, expected %.2f", result.WelfareGain, expectedWelfare)
	}

	expectedNet := result.MonetizedQALY - result.TotalCost + expectedProductivity + expectedWelfare
	if !mathutil.WithinTolerance(result.NetBenefit, expectedNet, 1) {
		t.Errorf("NetBenefit = %.2f, expected %.2f", result.NetBenefit, expectedNet)
	}
}

func TestAggregateSimpleHasNoMonetization(t *testing.T) {
	conf := testutil.SimpleConfig()
	snap := &simulation.YearSnapshot{
		Year:       5,
		Strategy:   constants.StrategyNoScreen,
		Age:        55,
		Living:     99000,
		Cumulative: map[string]int{constants.EventDeath: 1000},
	}

	result, err := Aggregate(snap, 5, constants.PerspectivePayer, conf)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if result.MonetizedQALY != 0 || result.NetBenefit != 0 || result.ProductivityGain != 0 || result.WelfareGain != 0 {
		t.Errorf("simple variant must not monetize: %+v", result)
	}
}
