package db

import (
	"context"
	"fmt"
	"log/slog"

	"ctchen222/student-tracker/internal/config"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens the connection pool for the configured driver and verifies
// it with a ping. The returned handle is shared by every repository for the
// lifetime of the process.
func Connect(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	pool, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database connection: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite allows a single writer; an in-memory database also lives
		// only as long as its one connection.
		pool.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
		pool.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	slog.InfoContext(ctx, "connected to database", "driver", cfg.Driver)
	return pool, nil
}

// InitializeDB creates the tables if they do not exist yet.
func InitializeDB(ctx context.Context, db *sqlx.DB) error {
	statements, err := schemaFor(db.DriverName())
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	slog.InfoContext(ctx, "DB connection initialized and schema verified.")
	return nil
}
