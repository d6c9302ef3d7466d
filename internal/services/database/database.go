// Package database provides the file-backed customer record store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"aircon-subsidy-engine/internal/config"
)

// schema creates the customers table on first use. No migrations beyond
// create-if-absent.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	model_number     TEXT,
	manufacture_year INTEGER,
	zip_code         TEXT,
	address          TEXT,
	name             TEXT,
	phone_number     TEXT,
	email            TEXT,
	customer_number  TEXT
);`

// DB wraps the SQLite handle.
type DB struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database file and ensures the
// schema exists.
func New(cfg *config.Config) (*DB, error) {
	return NewFromPath(cfg.DBPath)
}

// NewFromPath opens the database at an explicit file path.
func NewFromPath(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database handle.
func (d *DB) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}
}

// HealthCheck verifies database connectivity.
func (d *DB) HealthCheck(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// withConn runs fn on a dedicated connection acquired for this one
// operation. The connection is returned to the pool on every exit path,
// including when fn fails.
func (d *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
