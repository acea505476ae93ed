package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/happyhipo/propcost/internal/config"
	"github.com/happyhipo/propcost/internal/logging"
	"github.com/happyhipo/propcost/internal/purchase"
	"github.com/happyhipo/propcost/pkg/constants"
	"github.com/happyhipo/propcost/pkg/output"
	"github.com/happyhipo/propcost/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// The calculator requires a positive price; reject before computing.
	if conf.Purchase.PropertyPrice <= 0 {
		logger.Fatal("property price must be greater than zero",
			zap.String("op", "main"),
			zap.Float64("propertyPrice", conf.Purchase.PropertyPrice),
		)
	}

	quote, err := purchase.ComputeQuote(purchase.Input{
		PropertyPrice:        conf.Purchase.PropertyPrice,
		CommissionPercentage: conf.Purchase.CommissionPercentage,
		DownPayment:          conf.Purchase.DownPayment,
	}, conf.Loan.AnnualRatePercent, conf.Loan.TermYears)
	if err != nil {
		logger.Fatal("failed to compute purchase quote",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(quote)
	case constants.OutputFormatCSV:
		output.CsvFormat(quote)
	}
}
