package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL the Postgres backend expects.
const Schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// PostgresBackend stores collections in a single kv table. It exists for
// setups that want user state to outlive the local filesystem, e.g. one
// wardrobe shared across machines. The Backend contract is synchronous, so
// queries run under a background context.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend connects to databaseURL and ensures the kv table
// exists.
func NewPostgresBackend(ctx context.Context, databaseURL string) (*PostgresBackend, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := pool.Exec(ctx, Schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &PostgresBackend{pool: pool}, nil
}

// Close closes the connection pool.
func (b *PostgresBackend) Close() {
	b.pool.Close()
}

// Get returns the value stored under key.
func (b *PostgresBackend) Get(key string) (string, bool, error) {
	var value string
	err := b.pool.QueryRow(context.Background(),
		`SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (b *PostgresBackend) Set(key, value string) error {
	_, err := b.pool.Exec(context.Background(), `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}
