// Package export persists comparison results to an xlsx workbook with a
// "Parameters" sheet (flattened parameter dump) and a "Results" sheet.
package export

import (
	"fmt"
	"strings"

	"github.com/khardy/pad-screen-model/internal/analysis"
	"github.com/khardy/pad-screen-model/internal/config"
	"github.com/khardy/pad-screen-model/pkg/constants"
	"github.com/xuri/excelize/v2"
)

const (
	parametersSheet = "Parameters"
	resultsSheet    = "Results"
)

// WriteWorkbook writes the parameter dump and comparison rows to path.
func WriteWorkbook(path string, conf *config.Configuration, rows []analysis.ComparisonRow) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := writeParameters(f, conf); err != nil {
		return err
	}
	if err := writeResults(f, conf, rows); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on Parameters.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(parametersSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeParameters(f *excelize.File, conf *config.Configuration) error {
	if _, err := f.NewSheet(parametersSheet); err != nil {
		return err
	}
	if err := setRow(f, parametersSheet, 1, []interface{}{"parameter", "value"}); err != nil {
		return err
	}

	row := 2
	for _, kv := range flattenParameters(conf) {
		if err := setRow(f, parametersSheet, row, []interface{}{kv.key, kv.value}); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeResults(f *excelize.File, conf *config.Configuration, rows []analysis.ComparisonRow) error {
	if _, err := f.NewSheet(resultsSheet); err != nil {
		return err
	}

	kinds := conf.EventKinds()
	headers := []interface{}{"horizon", "perspective"}
	for _, kind := range kinds {
		headers = append(headers, kind+"_averted")
	}
	headers = append(headers, "cost_savings", "qaly_gain", "net_benefit_gain")
	if err := setRow(f, resultsSheet, 1, headers); err != nil {
		return err
	}

	for i, row := range rows {
		values := []interface{}{row.Horizon, row.Perspective}
		for _, kind := range kinds {
			values = append(values, row.Averted[kind])
		}
		values = append(values, row.CostSavings, row.QALYGain, row.NetBenefitGain)
		if err := setRow(f, resultsSheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

type keyValue struct {
	key   string
	value interface{}
}

// flattenParameters dumps the parameter set as ordered key/value pairs. The
// order is fixed so repeated exports of the same configuration diff cleanly.
func flattenParameters(conf *config.Configuration) []keyValue {
	kvs := []keyValue{
		{"model.variant", conf.Model.Variant},
		{"cohort.size", conf.Cohort.Size},
		{"cohort.baseAge", conf.Cohort.BaseAge},
		{"cohort.retirementAge", conf.Cohort.RetirementAge},
	}

	for _, strategy := range []string{constants.StrategyScreen, constants.StrategyNoScreen} {
		arm := conf.Strategies[strategy]
		for _, kind := range conf.EventKinds() {
			kvs = append(kvs, keyValue{
				key:   fmt.Sprintf("strategies.%s.probabilities.%s", strategy, kind),
				value: arm.Probabilities[kind],
			})
		}
	}

	kvs = append(kvs,
		keyValue{"costs.screening", conf.Costs.Screening},
		keyValue{"costs.medicationPerYear", conf.Costs.MedicationPerYear},
		keyValue{"costs.preventiveCarePerYear", conf.Costs.PreventiveCarePerYear},
		keyValue{"costs.productivityPerYear", conf.Costs.ProductivityPerYear},
		keyValue{"costs.welfarePerYear", conf.Costs.WelfarePerYear},
	)
	for _, kind := range conf.EventKinds() {
		cost := conf.Costs.Events[kind]
		kvs = append(kvs,
			keyValue{fmt.Sprintf("costs.events.%s.payer", kind), cost.Payer},
			keyValue{fmt.Sprintf("costs.events.%s.societal", kind), cost.UnitCost(constants.PerspectiveSocietal)},
		)
	}

	kvs = append(kvs, keyValue{"utilities.baseline", conf.Utilities.Baseline})
	for _, kind := range conf.DrawOrder() {
		kvs = append(kvs, keyValue{fmt.Sprintf("utilities.weights.%s", kind), conf.Utilities.Weights[kind]})
	}

	horizons := make([]string, len(conf.Analysis.Horizons))
	for i, h := range conf.Analysis.Horizons {
		horizons[i] = fmt.Sprintf("%d", h)
	}
	kvs = append(kvs,
		keyValue{"analysis.horizons", strings.Join(horizons, ",")},
		keyValue{"analysis.perspectives", strings.Join(conf.Analysis.Perspectives, ",")},
		keyValue{"analysis.seed", conf.Analysis.Seed},
	)
	if conf.Model.Variant == constants.VariantStaged {
		kvs = append(kvs,
			keyValue{"analysis.willingnessToPay", conf.Analysis.WillingnessToPay},
			keyValue{"analysis.padPrevalence", conf.Analysis.PadPrevalence},
		)
	}

	return kvs
}
