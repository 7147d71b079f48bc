package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/mortgage-schedule/internal/logging"
	"github.com/iwvelando/mortgage-schedule/internal/server"
	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	addressFlag := flag.String("address", "", "listen address override, e.g. :8080")
	maxBodyFlag := flag.String("max-body-size", "", "request body limit override, e.g. 512K")
	maxLoanTermFlag := flag.Int("max-loan-term", 0, "longest loan term in months a request may schedule")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}
	if *maxBodyFlag != "" {
		size, err := server.ParseSize(*maxBodyFlag)
		if err != nil {
			logger.Fatal("invalid max body size",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		cfg.SetBodySizeBytes(size)
	}
	if *maxLoanTermFlag > 0 {
		if *maxLoanTermFlag > constants.MaxRequestLoanTermMonths {
			logger.Fatal("max loan term exceeds the hard limit",
				zap.String("op", "main"),
				zap.Int("maxLoanTerm", *maxLoanTermFlag),
				zap.Int("limit", constants.MaxRequestLoanTermMonths),
			)
		}
		cfg.MaxLoanTerm = *maxLoanTermFlag
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg.Options(version)),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting mortgage schedule server",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.Int64("maxBodySize", cfg.BodySizeBytes()),
			zap.Int("maxLoanTerm", cfg.MaxLoanTerm),
			zap.String("defaultSchedule", string(cfg.Kind())),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return
	}
	logger.Info("server stopped", zap.String("op", "main"))
}
