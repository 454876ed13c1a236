package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/fleet-forecast/internal/cache"
	"github.com/iwvelando/fleet-forecast/internal/config"
	"github.com/iwvelando/fleet-forecast/internal/server"
	"github.com/iwvelando/fleet-forecast/internal/tracing"
	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/logger"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	envFile := flag.String("env", constants.DefaultEnvFile, "optional dotenv file")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load env file %s\", \"error\": \"%v\"}\n", *envFile, err)
		os.Exit(1)
	}

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}
	if redisPassword := os.Getenv("FLEET_CACHE_REDIS_PASSWORD"); redisPassword != "" {
		cfg.Cache.Redis.Password = redisPassword
	}

	log, err := logger.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, version)
	if err != nil {
		log.Fatal("failed to initialize tracing",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("failed to flush traces", zap.String("op", "main"), zap.Error(err))
		}
	}()

	computer, closeCache, err := cache.NewFromConfig(cfg.Cache, logger.Named(log, "cache"))
	if err != nil {
		log.Fatal("failed to initialize schedule cache",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn("failed to close schedule cache", zap.String("op", "main"), zap.Error(err))
		}
	}()

	handler := server.NewHandler(logger.Named(log, "server"), computer, cfg.UploadSizeBytes(), version)
	if err := server.Serve(ctx, log, cfg.Address, handler); err != nil {
		log.Error("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
