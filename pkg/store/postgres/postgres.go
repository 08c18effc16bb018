// Package postgres is the KV driver for deployments that already run a
// Postgres instance; selected when DATABASE_URL is set.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jain881/AIFolio/pkg/store"
)

type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pgx connection pool, performs a Ping to ensure
// connectivity and ensures the kv schema.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	// Reasonable defaults
	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS kv (
	bucket TEXT NOT NULL,
	key TEXT NOT NULL,
	value BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (bucket, key)
);
`)
	return err
}

func (s *Store) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv WHERE bucket = $1 AND key = $2`, bucket, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, bucket, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO kv (bucket, key, value, updated_at) VALUES ($1, $2, $3, $4)
ON CONFLICT (bucket, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`, bucket, key, value, time.Now().UTC())
	return err
}

func (s *Store) Update(ctx context.Context, bucket, key string, fn func(current []byte) ([]byte, error)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current []byte
	err = tx.QueryRow(ctx,
		`SELECT value FROM kv WHERE bucket = $1 AND key = $2 FOR UPDATE`, bucket, key,
	).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}
	if next == nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM kv WHERE bucket = $1 AND key = $2`, bucket, key); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}
	if _, err := tx.Exec(ctx, `
INSERT INTO kv (bucket, key, value, updated_at) VALUES ($1, $2, $3, $4)
ON CONFLICT (bucket, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`, bucket, key, next, time.Now().UTC()); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM kv WHERE bucket = $1 AND key = $2`, bucket, key)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

func (s *Store) Close() { s.pool.Close() }
