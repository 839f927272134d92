package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unifin/finapi/internal/config"
	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver it was opened
// with, so repositories can classify driver-specific errors and report
// queries in driver-appropriate dialect.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Driver returns the configured driver name (config.DriverPostgres or
// config.DriverSQLite).
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations for the active driver.
func (db *DB) Migrate() error {
	dialect := "pgx"
	if db.driver == config.DriverSQLite {
		dialect = "sqlite3"
	}
	return migrations.Migrate(db.DB, dialect)
}

// WithinTx runs fn inside a database transaction, committing when fn returns
// nil and rolling back otherwise. The rollback error (if any) is joined onto
// fn's error.
func (db *DB) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

// NewConnect opens a database connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}
