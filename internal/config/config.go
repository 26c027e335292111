// Package config provides Viper-based configuration loading for the simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SimulationConfig selects the dice and how they are rolled.
type SimulationConfig struct {
	// Rolls is the number of times every die is rolled in a session.
	Rolls int `mapstructure:"rolls"`
	// Source is the randomness provider: "crypto" or "seeded".
	Source string `mapstructure:"source"`
	// Seed feeds the seeded source; ignored for crypto.
	Seed uint64 `mapstructure:"seed"`
	// DiceFile is the path to a dice-set YAML file.
	DiceFile string `mapstructure:"dice_file"`
}

// ReportConfig controls how a session is presented.
type ReportConfig struct {
	// Form is the results layout printed: "wide" or "narrow".
	Form string `mapstructure:"form"`
	// MaxRows caps the result rows printed to the terminal; 0 prints none.
	MaxRows int `mapstructure:"max_rows"`
	// XLSXPath, when set, is where the workbook export is written.
	XLSXPath string `mapstructure:"xlsx_path"`
	// Locale is the BCP 47 tag used to format numbers, e.g. "en-US".
	Locale string `mapstructure:"locale"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Report     ReportConfig     `mapstructure:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Rolls < 0 {
		errs = append(errs, fmt.Sprintf("simulation.rolls must be >= 0, got %d", s.Rolls))
	}
	validSources := map[string]bool{"crypto": true, "seeded": true}
	if !validSources[s.Source] {
		errs = append(errs, fmt.Sprintf("simulation.source must be one of [crypto, seeded], got %q", s.Source))
	}
	if s.DiceFile == "" {
		errs = append(errs, "simulation.dice_file must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateReport(r ReportConfig) error {
	var errs []string
	validForms := map[string]bool{"wide": true, "narrow": true}
	if !validForms[r.Form] {
		errs = append(errs, fmt.Sprintf("report.form must be one of [wide, narrow], got %q", r.Form))
	}
	if r.MaxRows < 0 {
		errs = append(errs, fmt.Sprintf("report.max_rows must be >= 0, got %d", r.MaxRows))
	}
	if r.XLSXPath != "" && !strings.HasSuffix(r.XLSXPath, ".xlsx") {
		errs = append(errs, fmt.Sprintf("report.xlsx_path must end in .xlsx, got %q", r.XLSXPath))
	}
	if r.Locale == "" {
		errs = append(errs, "report.locale must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// New returns a Viper instance with defaults and MONTECARLO_ environment
// overrides registered, ready for flags or a config file to be layered on.
func New() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with MONTECARLO_ prefix
	v.SetEnvPrefix("MONTECARLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.rolls", 1000)
	v.SetDefault("simulation.source", "crypto")
	v.SetDefault("simulation.seed", 1)
	v.SetDefault("simulation.dice_file", "content/dice/fair_d6.yaml")

	v.SetDefault("report.form", "wide")
	v.SetDefault("report.max_rows", 10)
	v.SetDefault("report.xlsx_path", "")
	v.SetDefault("report.locale", "en-US")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
