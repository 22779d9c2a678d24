package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/GearRepair_Go/internal/logger"
)

// Migrate applies every pending goose migration in dir
func Migrate(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect(MigrationsDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetDBVersion, err)
	}

	logger.FromContext(ctx).Info(LogMsgMigrationsApplied, "dir", dir, "version", version)
	return nil
}
