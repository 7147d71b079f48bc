package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/mortgage-schedule/internal/config"
	"github.com/iwvelando/mortgage-schedule/internal/logging"
	"github.com/iwvelando/mortgage-schedule/internal/mortgage"
	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/iwvelando/mortgage-schedule/pkg/output"
	"github.com/iwvelando/mortgage-schedule/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine; MORTGAGE_* variables may come from the shell.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"mortgage-schedule failed\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("mortgage-schedule", flag.ContinueOnError)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	scheduleFlag := flags.String("schedule", "", "schedule kind override: annuity, differentiated")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", *configLocation, err)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *scheduleFlag != "" {
		conf.Mortgage.Schedule = *scheduleFlag
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	m, err := mortgage.NewFromConfig(logger, conf.Mortgage)
	if err != nil {
		logger.Error("failed to compute repayment schedule",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(stdout, m)
	case constants.OutputFormatCSV:
		output.CsvFormat(stdout, m)
	}
	return nil
}
