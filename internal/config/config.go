// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/happyhipo/propcost/pkg/constants"
)

// Configuration holds all configuration for propcost.
type Configuration struct {
	Purchase PurchaseConfig `yaml:"purchase"`
	Loan     LoanConfig     `yaml:"loan"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// PurchaseConfig holds the property purchase parameters.
type PurchaseConfig struct {
	PropertyPrice        float64 `yaml:"propertyPrice"`
	CommissionPercentage float64 `yaml:"commissionPercentage"`
	DownPayment          float64 `yaml:"downPayment"`
}

// LoanConfig holds the mortgage terms used for the amortization summary.
type LoanConfig struct {
	AnnualRatePercent float64 `yaml:"annualRatePercent"`
	TermYears         float64 `yaml:"termYears"`
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

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("purchase.propertyPrice", constants.DefaultPropertyPrice)
	v.SetDefault("purchase.commissionPercentage", constants.DefaultCommissionPercentage)
	v.SetDefault("purchase.downPayment", constants.DefaultDownPayment)
	v.SetDefault("loan.annualRatePercent", constants.DefaultAnnualRatePercent)
	v.SetDefault("loan.termYears", constants.DefaultLoanYears)

	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader. Used by the HTTP layer for request-supplied configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input violations surface as errors at computation
// time; warnings cover values the interactive calculator would not accept.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Purchase.PropertyPrice <= 0 {
		warnings = append(warnings,
			fmt.Sprintf("property price %.2f is not positive; the cost breakdown cannot be computed",
				c.Purchase.PropertyPrice))
	}

	if c.Loan.AnnualRatePercent < constants.MinInterestRate || c.Loan.AnnualRatePercent > constants.MaxInterestRate {
		warnings = append(warnings,
			fmt.Sprintf("annual rate %.2f%% outside the expected range [%.0f, %.0f]",
				c.Loan.AnnualRatePercent, constants.MinInterestRate, constants.MaxInterestRate))
	}

	if c.Loan.TermYears != 0 && (c.Loan.TermYears < constants.MinLoanYears || c.Loan.TermYears > constants.MaxLoanYears) {
		warnings = append(warnings,
			fmt.Sprintf("loan term %.0f years outside the expected range [%.0f, %.0f]",
				c.Loan.TermYears, constants.MinLoanYears, constants.MaxLoanYears))
	}

	return warnings
}
