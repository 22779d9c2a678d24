package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GearRepair_Go/internal/logger"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", config.MaxConns)
	return pool, nil
}
