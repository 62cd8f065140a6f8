// Package main is the entry point for the interactive rock viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/rockgen/internal/config"
	"github.com/Faultbox/rockgen/internal/logger"
	"github.com/Faultbox/rockgen/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== rockgen viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}

	runErr := v.Run()
	if err := v.Close(); err != nil {
		logger.Warn("viewer cleanup", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("viewer error", zap.Error(runErr))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
