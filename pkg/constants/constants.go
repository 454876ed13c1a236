// Package constants provides shared constants for the fleet-forecast application.
package constants

// DateTimeLayout is the format expected for fleet start dates and is also the
// output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MaxEngineTermPeriods bounds the loan term the engine accepts (100 years)
	// so schedule allocation stays proportionate.
	MaxEngineTermPeriods = 1200

	// MaxRatePercent is the largest per-period depreciation rate; beyond it
	// asset values would turn negative.
	MaxRatePercent = 100.0

	// TrailingPeriods is the number of periods simulated after the loan term
	// so depreciation stays observable once the loan is retired.
	TrailingPeriods = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Heavy-use depreciation bands. A period up to and including the band limit
// uses the band multiplier; later periods use a multiplier of 1.
const (
	HeavyUseLaunchLimit      = 6
	HeavyUseLaunchMultiplier = 2.0

	HeavyUseFirstYearLimit      = 12
	HeavyUseFirstYearMultiplier = 1.5

	HeavyUseSecondYearLimit      = 24
	HeavyUseSecondYearMultiplier = 1.2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "fleet.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "fleet.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultEnvFile is the optional dotenv file read before configuration
	DefaultEnvFile = ".env"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultServiceName identifies the process in traces and logs
	DefaultServiceName = "fleet-forecast"
)

// Cache defaults
const (
	// CacheBackendMemory keeps computed schedules in process memory
	CacheBackendMemory = "memory"

	// CacheBackendRedis keeps computed schedules in redis
	CacheBackendRedis = "redis"

	// CacheBackendNone disables memoization
	CacheBackendNone = "none"

	// DefaultCacheEntries bounds the in-memory cache
	DefaultCacheEntries = 1024

	// DefaultCacheKeyPrefix namespaces redis keys
	DefaultCacheKeyPrefix = "fleet-forecast:schedule:"
)

// Presentation ranges. These only produce configuration warnings; the engine
// accepts any value in its own domain.
const (
	MinUnitCount = 1
	MaxUnitCount = 200

	MinUnitValue = 45000.0
	MaxUnitValue = 100000.0

	MinTermPeriods = 36
	MaxTermPeriods = 60

	MinAnnualInterestRate = 5.0
	MaxAnnualInterestRate = 8.0

	MaxMonthlyDepreciationRate  = 3.0
	MaxAnnualDepreciationRate   = 30.0
	MaxHeavyUseDepreciationRate = 3.0
)
