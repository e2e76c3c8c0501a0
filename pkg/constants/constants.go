// Package constants provides shared constants for the pad-screen-model application.
package constants

// Strategy names
const (
	// StrategyScreen is the ABI screening arm
	StrategyScreen = "screen"

	// StrategyNoScreen is the usual-care control arm
	StrategyNoScreen = "no_screen"
)

// Perspective names
const (
	// PerspectivePayer is the payer (medicaid) accounting perspective
	PerspectivePayer = "payer"

	// PerspectiveSocietal includes productivity and welfare costs
	PerspectiveSocietal = "societal"
)

// Model variant names
const (
	// VariantSimple is the four-event annual model
	VariantSimple = "simple"

	// VariantStaged is the PAD stage-progression model with MACE and ESRD
	VariantStaged = "staged"
)

// Event kinds
const (
	EventDeath      = "death"
	EventMACE       = "mace"
	EventAmputation = "amputation"
	EventRevasc     = "revasc"
	EventNoPADToAsx = "no_pad_to_asx"
	EventAsxToSx    = "asx_to_sx"
	EventSxToCLI    = "sx_to_cli"
	EventCLIToAmp   = "cli_to_amp"
	EventESRD       = "esrd"
)

// Reporting bases for strategy-differenced, cohort-normalized metrics
const (
	// ReportingBaseSimple reports averted events per 1000 cohort members
	ReportingBaseSimple = 1000.0

	// ReportingBaseStaged reports per-person figures
	ReportingBaseStaged = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX persists a results workbook
	OutputFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultWorkbookFile is the default workbook output path
	DefaultWorkbookFile = "results.xlsx"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)
