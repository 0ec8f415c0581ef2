package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/osse101/Clicker_Go/internal/config"
	"github.com/osse101/Clicker_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the application config
// and records the startup banner.
func SetupLogger(cfg *config.Config) {
	env := strings.ToLower(cfg.Environment)
	addSource := env == logger.EnvironmentDev || env == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_path", cfg.CatalogPath,
		"price_cache_size", cfg.PriceCacheSize,
		"sell_price_ratio", cfg.SellPriceRatio,
		"admin_enabled", cfg.AdminEnabled())
}

// LogConfigWarnings reports non-fatal configuration issues
func LogConfigWarnings(warnings []string) {
	for _, w := range warnings {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
