// Package constants provides shared constants for the mortgage-schedule application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CurrencyPlaces is the number of decimal places money is rounded to
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100

	// MaxLoanTermMonths is the longest term (50 years) accepted without a warning
	MaxLoanTermMonths = 600

	// HighInterestRatePercent is the annual rate above which a warning is raised
	HighInterestRatePercent = 50.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Schedule kinds accepted in configuration and requests.
const (
	// ScheduleAnnuity selects the constant total payment schedule
	ScheduleAnnuity = "annuity"

	// ScheduleDifferentiated selects the constant principal schedule
	ScheduleDifferentiated = "differentiated"

	// DefaultSchedule is used when no schedule kind is configured
	DefaultSchedule = ScheduleAnnuity
)

// Mortgage type labels exposed by the facade.
const (
	AnnuityLabel        = "Annuity Payment"
	DifferentiatedLabel = "Differentiated Payment"
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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024

	// MaxRequestLoanTermMonths is the longest term (100 years) the server will
	// schedule; longer terms are rejected rather than allocated
	MaxRequestLoanTermMonths = 1200
)
