package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Clicker_Go/internal/bootstrap"
	"github.com/osse101/Clicker_Go/internal/config"
	"github.com/osse101/Clicker_Go/internal/economy"
	"github.com/osse101/Clicker_Go/internal/handler"
	"github.com/osse101/Clicker_Go/internal/server"
	"github.com/osse101/Clicker_Go/internal/world"
)

const shutdownTimeout = 10 * time.Second

// @title Clicker Economy API
// @version 1.0
// @description Item levels, prices and wallet for an incremental game economy.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	bootstrap.LogConfigWarnings(warnings)

	if handler.Version == "dev" {
		handler.Version = cfg.Version
	}

	ctx := context.Background()

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	w := world.New()
	catalogState := &bootstrap.CatalogState{}
	if _, err := bootstrap.LoadCatalog(ctx, cfg.CatalogPath, w, bus, catalogState); err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	economyService, err := economy.NewService(w, economy.NewWallet(cfg.StartingBalance), bus, economy.Config{
		SellPriceRatio: cfg.SellPriceRatio,
		QuoteCacheSize: cfg.PriceCacheSize,
	})
	if err != nil {
		slog.Error("Failed to create economy service", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Ready:          catalogState,
	}, economyService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv})
}
