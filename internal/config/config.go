// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/iwvelando/mortgage-schedule/pkg/schedule"
	"github.com/iwvelando/mortgage-schedule/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-schedule.
type Configuration struct {
	Mortgage MortgageConfig `yaml:"mortgage"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// MortgageConfig holds the loan being scheduled.
type MortgageConfig struct {
	LoanTerm     int     `yaml:"loanTerm"`     // months
	LoanAmount   float64 `yaml:"loanAmount"`   // principal
	InterestRate float64 `yaml:"interestRate"` // annual, percent
	Schedule     string  `yaml:"schedule,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
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

// newViper returns a viper instance that lets MORTGAGE_LOANAMOUNT and
// friends override the matching mortgage.* keys.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys must be known to viper for environment overrides to apply.
	v.SetDefault("mortgage.loanTerm", 0)
	v.SetDefault("mortgage.loanAmount", 0)
	v.SetDefault("mortgage.interestRate", 0)
	v.SetDefault("mortgage.schedule", constants.DefaultSchedule)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Parameters converts the configured loan into validated schedule parameters.
func (m MortgageConfig) Parameters() (schedule.Parameters, error) {
	return schedule.NewParameters(m.LoanTerm,
		decimal.NewFromFloat(m.LoanAmount),
		decimal.NewFromFloat(m.InterestRate))
}

// Kind returns the configured schedule kind.
func (m MortgageConfig) Kind() (schedule.Kind, error) {
	return schedule.ParseKind(m.Schedule)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	warnings = append(warnings, validation.ValidateMortgage(validation.MortgageConfig{
		LoanTerm:     c.Mortgage.LoanTerm,
		LoanAmount:   c.Mortgage.LoanAmount,
		InterestRate: c.Mortgage.InterestRate,
		Schedule:     c.Mortgage.Schedule,
	})...)

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return warnings
}
