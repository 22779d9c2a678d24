package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/GearRepair_Go/internal/concurrency"
	"github.com/osse101/GearRepair_Go/internal/config"
	"github.com/osse101/GearRepair_Go/internal/database"
	"github.com/osse101/GearRepair_Go/internal/database/postgres"
	"github.com/osse101/GearRepair_Go/internal/material"
	"github.com/osse101/GearRepair_Go/internal/repairkit"
	"github.com/osse101/GearRepair_Go/internal/server"
)

// @title Gear Repair API
// @version 1.0
// @description Repair kits that store crafting materials and spend them to repair damaged gear.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
		database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
		pool.Close()
		return err
	}

	catalog, err := material.LoadCatalog(ctx, cfg.MaterialsConfigPath)
	if err != nil {
		pool.Close()
		return err
	}

	repairSvc := repairkit.NewService(
		postgres.NewRepairKitRepository(pool),
		catalog,
		concurrency.NewLockManager(),
		repairkit.Settings{
			KitTiers:          cfg.KitTiers,
			RepairFactorQuick: cfg.RepairFactorQuick,
			RepairFactorAnvil: cfg.RepairFactorAnvil,
		},
	)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, pool, repairSvc, catalog)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	for {
		select {
		case err, ok := <-serverErr:
			if ok {
				pool.Close()
				return err
			}
			return nil
		case sig := <-signals:
			if sig == syscall.SIGHUP {
				reloadCatalog(ctx, catalog, cfg.MaterialsConfigPath)
				continue
			}
			slog.Info("Shutdown signal received", "signal", sig.String())

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			err := srv.Stop(shutdownCtx)
			cancel()
			return err
		}
	}
}

// reloadCatalog re-reads the material file. A file that fails validation
// leaves the current catalog in place.
func reloadCatalog(ctx context.Context, catalog *material.Catalog, path string) {
	loader, err := material.NewLoader()
	if err != nil {
		slog.Error("Failed to create material loader", "error", err)
		return
	}
	materials, err := loader.Load(path)
	if err != nil {
		slog.Error("Material reload rejected", "path", path, "error", err)
		return
	}
	catalog.Reload(ctx, materials)
}
