// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"fmt"
	"strings"

	"github.com/khardy/pad-screen-model/internal/analysis"
	"github.com/khardy/pad-screen-model/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(rows []analysis.ComparisonRow, conf *config.Configuration) {
	p := message.NewPrinter(language.English)
	base := "per 1000"
	if conf.ReportingBase() == 1 {
		base = "per person"
	}

	for _, row := range rows {
		fmt.Printf("--- Screening vs. no screening, %d-year horizon, %s perspective (%s) ---\n",
			row.Horizon, row.Perspective, base)
		for _, kind := range conf.EventKinds() {
			_, _ = p.Printf("%-24s | %.3f\n", kind+" averted", row.Averted[kind])
		}
		_, _ = p.Printf("%-24s | $%.2f\n", "cost savings", row.CostSavings)
		_, _ = p.Printf("%-24s | %.3f\n", "QALY gain", row.QALYGain)
		if row.NetBenefitGain != 0 {
			_, _ = p.Printf("%-24s | $%.2f\n", "net benefit gain", row.NetBenefitGain)
		}
		fmt.Printf("\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(rows []analysis.ComparisonRow, conf *config.Configuration) {
	kinds := conf.EventKinds()

	headers := []string{`"horizon"`, `"perspective"`}
	for _, kind := range kinds {
		headers = append(headers, fmt.Sprintf(`"%s_averted"`, kind))
	}
	headers = append(headers, `"cost_savings"`, `"qaly_gain"`, `"net_benefit_gain"`)
	fmt.Println(strings.Join(headers, ","))

	for _, row := range rows {
		fields := []string{
			fmt.Sprintf(`"%d"`, row.Horizon),
			fmt.Sprintf(`"%s"`, row.Perspective),
		}
		for _, kind := range kinds {
			fields = append(fields, fmt.Sprintf(`"%.4f"`, row.Averted[kind]))
		}
		fields = append(fields,
			fmt.Sprintf(`"%.2f"`, row.CostSavings),
			fmt.Sprintf(`"%.4f"`, row.QALYGain),
			fmt.Sprintf(`"%.2f"`, row.NetBenefitGain),
		)
		fmt.Println(strings.Join(fields, ","))
	}
}
