package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/carcare/internal/buildinfo"
	"github.com/dmitrijs2005/carcare/internal/cli"
	"github.com/dmitrijs2005/carcare/internal/config"
	"github.com/dmitrijs2005/carcare/internal/kv"
	"github.com/dmitrijs2005/carcare/internal/logging"
	"github.com/dmitrijs2005/carcare/internal/services"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to open store", "error", err, "storage", cfg.Storage)
		return err
	}
	defer store.Close()

	svc := services.NewLogService(store,
		services.WithLogger(logger),
		services.WithReminderWindow(cfg.ReminderWindow),
	)

	logger.Info(ctx, "started", "storage", cfg.Storage, "db", cfg.DBPath)
	return cli.NewApp(cfg, svc, logger).Run(ctx)
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return kv.NewMemoryStore(), nil
	case config.StorageSQLite:
		s, err := kv.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", config.ErrInvalidStorage, cfg.Storage)
}
