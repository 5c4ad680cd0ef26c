package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	_ "modernc.org/sqlite"             // database/sql driver "sqlite"
)

type Config struct {
	Driver          string // "sqlite" | "postgres"
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
}

// DB wraps database/sql with the dialect needed for placeholder rebinding.
type DB struct {
	*sql.DB
	driver string
}

// Open connects using the configured driver and verifies the connection.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var driverName string
	switch cfg.Driver {
	case "sqlite":
		driverName = "sqlite"
	case "postgres":
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	logger.Info("connecting to database", "driver", cfg.Driver, "dsn", cfg.DSN)
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database ping failed", "error", err)
		_ = db.Close()
		return nil, err
	}

	logger.Info("successfully connected to database")
	return &DB{DB: db, driver: cfg.Driver}, nil
}

// Rebind rewrites ?-placeholders into the dialect's form ($1, $2, ... for
// postgres; unchanged for sqlite).
func (d *DB) Rebind(query string) string {
	if d.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Migrate creates the receipt tables if they do not exist. The DDL sticks to
// types both dialects accept.
func Migrate(ctx context.Context, db *DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS receipts (
			id             TEXT PRIMARY KEY,
			merchant_name  TEXT,
			receipt_number TEXT,
			tx_date        TEXT,
			subtotal       TEXT,
			tax            TEXT,
			total          TEXT,
			currency_code  TEXT NOT NULL,
			confidence     REAL NOT NULL,
			status         TEXT NOT NULL,
			source_path    TEXT NOT NULL,
			extracted_json TEXT,
			created_at     TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS receipt_items (
			receipt_id TEXT NOT NULL,
			position   INTEGER NOT NULL,
			name       TEXT NOT NULL,
			price      TEXT NOT NULL,
			quantity   TEXT NOT NULL,
			PRIMARY KEY (receipt_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_receipts_tx_date ON receipts (tx_date)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// HealthCheck pings the database to catch DSN issues early.
func HealthCheck(ctx context.Context, db *DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}
