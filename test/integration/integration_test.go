package integration

import (
	"path/filepath"
	"testing"

	"github.com/khardy/pad-screen-model/internal/analysis"
	"github.com/khardy/pad-screen-model/internal/config"
	"github.com/khardy/pad-screen-model/internal/simulation"
	"github.com/khardy/pad-screen-model/pkg/constants"
	"github.com/khardy/pad-screen-model/pkg/export"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// TestFullPipelineSimple exercises the whole path the CLI takes: load the
// shipped example config, validate it, run the comparison, and persist the
// workbook.
func TestFullPipelineSimple(t *testing.T) {
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if err := conf.Validate(); err != nil {
		t.Fatalf("example config failed validation: %v", err)
	}

	logger := zap.NewNop()
	rows, err := analysis.Compare(conf, simulation.NewSource(conf.Analysis.Seed), logger)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	expected := len(conf.Analysis.Horizons) * len(conf.Analysis.Perspectives)
	if len(rows) != expected {
		t.Fatalf("Compare returned %d rows, expected %d", len(rows), expected)
	}

	for _, row := range rows {
		if row.Screen == nil || row.NoScreen == nil {
			t.Fatalf("row %d/%s missing scenario results", row.Horizon, row.Perspective)
		}
		if row.Screen.Snapshot.Living < 0 || row.NoScreen.Snapshot.Living < 0 {
			t.Errorf("negative living count at horizon %d", row.Horizon)
		}
	}

	path := filepath.Join(t.TempDir(), "results.xlsx")
	if err := export.WriteWorkbook(path, conf, rows); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	results, err := f.GetRows("Results")
	if err != nil {
		t.Fatalf("failed to read Results sheet: %v", err)
	}
	if len(results) != expected+1 {
		t.Errorf("Results sheet has %d rows, expected %d (header + rows)", len(results), expected+1)
	}
}

// TestFullPipelineStaged runs the staged example end to end.
func TestFullPipelineStaged(t *testing.T) {
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", "config-staged.yaml.example"))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if err := conf.Validate(); err != nil {
		t.Fatalf("staged example config failed validation: %v", err)
	}

	rows, err := analysis.Compare(conf, simulation.NewSource(conf.Analysis.Seed), zap.NewNop())
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	for _, row := range rows {
		if row.Screen.MonetizedQALY == 0 {
			t.Errorf("staged variant should monetize QALYs at horizon %d", row.Horizon)
		}
	}
}
