package main

import (
	"github.com/osse101/GearRepair_Go/internal/config"
	"github.com/osse101/GearRepair_Go/internal/logger"
)

// initLogger initializes the logger from the app configuration and reports
// configuration warnings through it.
func initLogger(cfg *config.Config) {
	logger.InitLogger(cfg.LoggerConfig())

	for _, warning := range config.Warnings(cfg) {
		logger.Warn(warning)
	}
}
