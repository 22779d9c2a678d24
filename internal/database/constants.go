package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
)

// MigrationsDialect is the goose dialect for PostgreSQL
const MigrationsDialect = "postgres"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToGetDBVersion    = "failed to get schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
