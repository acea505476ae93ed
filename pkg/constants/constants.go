// Package constants provides shared constants for the propcost application.
package constants

// Fiscal constants for a property purchase. These model the fixed fee
// schedule the calculator applies; jurisdiction-specific variants would
// swap these values.
const (
	// CommissionVATRate is the VAT rate applied on top of the brokerage commission.
	CommissionVATRate = 0.21

	// TransferTaxRate is the ITP (property transfer tax) rate over the property price.
	TransferTaxRate = 0.054

	// FixedClosingCosts covers appraisal plus notary, in currency units.
	FixedClosingCosts = 2500.0

	// IncomeRatioCeiling is the maximum share of monthly income the
	// mortgage payment should take.
	IncomeRatioCeiling = 0.35
)

// FinancingTiers are the mortgage percentages used for financing scenarios,
// in the display order consumers rely on.
var FinancingTiers = []float64{95, 90, 85, 80}

// Risk banding thresholds for the mortgage percentage over property price.
const (
	// MortgageHighRiskThreshold is the percentage above which most lenders
	// will not grant a mortgage.
	MortgageHighRiskThreshold = 80.0

	// MortgageCautionThreshold is the percentage above which lenders may
	// require additional conditions.
	MortgageCautionThreshold = 70.0
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Input range guidance mirrored from the interactive calculator. Values
// outside these ranges produce validation warnings, not errors.
const (
	MinInterestRate = 0.0
	MaxInterestRate = 15.0
	MinLoanYears    = 5.0
	MaxLoanYears    = 40.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Default purchase parameters used when the configuration omits them.
const (
	DefaultPropertyPrice        = 200000.0
	DefaultCommissionPercentage = 3.5
	DefaultDownPayment          = 42000.0
	DefaultAnnualRatePercent    = 2.5
	DefaultLoanYears            = 30.0
)
