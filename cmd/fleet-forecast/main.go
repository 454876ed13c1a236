package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/fleet-forecast/internal/cache"
	"github.com/iwvelando/fleet-forecast/internal/config"
	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/logger"
	"github.com/iwvelando/fleet-forecast/pkg/output"
	"github.com/iwvelando/fleet-forecast/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	envFile := flag.String("env", constants.DefaultEnvFile, "optional dotenv file with FLEET_* overrides")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load env file %s\", \"error\": \"%v\"}\n", *envFile, err)
		os.Exit(1)
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	log, err := logger.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		log.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		log.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	fleets, err := conf.ForecastFleets()
	if err != nil {
		log.Fatal("failed to read fleets",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	computer, closeCache, err := cache.NewFromConfig(conf.Cache, logger.Named(log, "cache"))
	if err != nil {
		log.Warn("schedule cache disabled",
			zap.String("op", "main"),
			zap.Error(err),
		)
		computer, closeCache = cache.New(nil, cache.WithLogger(log)), func() error { return nil }
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn("failed to close schedule cache", zap.String("op", "main"), zap.Error(err))
		}
	}()

	results, err := forecast.GetForecast(context.Background(), logger.Named(log, "forecast"), computer, fleets)
	if err != nil {
		log.Fatal("failed to compute forecast",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := output.Write(os.Stdout, outputFormat, results); err != nil {
		log.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
