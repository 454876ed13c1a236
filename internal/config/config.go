// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
	"github.com/iwvelando/fleet-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// EnvPrefix namespaces environment overrides, e.g. FLEET_CACHE_REDIS_PASSWORD.
const EnvPrefix = "FLEET"

// Configuration holds all configuration for fleet-forecast.
type Configuration struct {
	Fleets  []Fleet       `yaml:"fleets"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// CacheConfig selects where computed schedules are memoized.
type CacheConfig struct {
	Backend    string      `yaml:"backend,omitempty"` // memory, redis, none
	MaxEntries int         `yaml:"maxEntries,omitempty"`
	TTL        string      `yaml:"ttl,omitempty"` // Go duration, e.g. 15m
	KeyPrefix  string      `yaml:"keyPrefix,omitempty"`
	Redis      RedisConfig `yaml:"redis,omitempty"`
}

// RedisConfig holds the connection details for the redis cache backend.
type RedisConfig struct {
	Address  string `yaml:"address,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// Fleet is one group of identical vehicles financed together.
type Fleet struct {
	Name                      string  `yaml:"name"`
	Active                    bool    `yaml:"active"`
	StartDate                 string  `yaml:"startDate,omitempty"`
	UnitCount                 int     `yaml:"unitCount"`
	UnitValue                 float64 `yaml:"unitValue"`
	AnnualInterestRatePercent float64 `yaml:"annualInterestRatePercent"`
	TermPeriods               int     `yaml:"termPeriods"`
	DepreciationModel         string  `yaml:"depreciationModel"`
	DepreciationRatePercent   float64 `yaml:"depreciationRatePercent"`
}

// envKeys are bound explicitly so they can be supplied from the environment
// even when the file omits them.
var envKeys = []string{
	"logging.level",
	"logging.format",
	"output.format",
	"cache.backend",
	"cache.ttl",
	"cache.redis.address",
	"cache.redis.password",
	"cache.redis.db",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// newViper returns an isolated viper instance so concurrent loads never share
// state.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key)
	}
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ActiveFleets returns the fleets marked active, in file order.
func (c *Configuration) ActiveFleets() []Fleet {
	var active []Fleet
	for _, fleet := range c.Fleets {
		if fleet.Active {
			active = append(active, fleet)
		}
	}
	return active
}

// WithDefaults fills unset cache fields.
func (c CacheConfig) WithDefaults() CacheConfig {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = constants.CacheBackendMemory
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = constants.DefaultCacheEntries
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = constants.DefaultCacheKeyPrefix
	}
	return c
}

// TTLDuration parses the TTL. An empty TTL means entries never expire.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if strings.TrimSpace(c.TTL) == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(strings.TrimSpace(c.TTL))
	if err != nil {
		return 0, fmt.Errorf("invalid cache ttl %q: %w", c.TTL, err)
	}
	if ttl < 0 {
		return 0, fmt.Errorf("invalid cache ttl %q: must not be negative", c.TTL)
	}
	return ttl, nil
}

// Validate reports a cache configuration that cannot be used.
func (c CacheConfig) Validate() error {
	switch c.WithDefaults().Backend {
	case constants.CacheBackendMemory, constants.CacheBackendNone:
	case constants.CacheBackendRedis:
		if strings.TrimSpace(c.Redis.Address) == "" {
			return fmt.Errorf("cache backend %s requires redis.address", constants.CacheBackendRedis)
		}
	default:
		return fmt.Errorf("expected cache backend of %s, %s or %s, got %s",
			constants.CacheBackendMemory, constants.CacheBackendRedis, constants.CacheBackendNone, c.Backend)
	}
	_, err := c.TTLDuration()
	return err
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	fleets := make([]validation.FleetConfig, 0, len(c.Fleets))
	var warnings []string

	for _, fleet := range c.Fleets {
		model, err := depreciation.ParseModel(fleet.DepreciationModel)
		if err != nil && fleet.Active {
			warnings = append(warnings, fmt.Sprintf("Fleet '%s': %v", fleet.Name, err))
		}
		fleets = append(fleets, validation.FleetConfig{
			Name:                      fleet.Name,
			Active:                    fleet.Active,
			StartDate:                 fleet.StartDate,
			UnitCount:                 fleet.UnitCount,
			UnitValue:                 fleet.UnitValue,
			AnnualInterestRatePercent: fleet.AnnualInterestRatePercent,
			TermPeriods:               fleet.TermPeriods,
			DepreciationModel:         model,
			DepreciationRatePercent:   fleet.DepreciationRatePercent,
		})
	}

	validator := validation.ConfigValidator{Fleets: fleets}
	warnings = append(warnings, validator.ValidateAll()...)

	if err := c.Cache.Validate(); err != nil {
		warnings = append(warnings, fmt.Sprintf("Cache disabled: %v", err))
	}

	return warnings
}
