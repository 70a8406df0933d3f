package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Postgres is a Collection stored as a single JSONB document per collection
// name. Keeping the whole collection in one row preserves the get/replace
// full-collection semantics (and the last-writer-wins behavior) of the file
// store while allowing deployments that already run Postgres.
type Postgres[T any] struct {
	pool   *pgxpool.Pool
	name   string
	logger *zap.Logger
}

// EnsureSchema creates the collections table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL DEFAULT '[]'::jsonb,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func NewPostgres[T any](pool *pgxpool.Pool, name string, logger *zap.Logger) *Postgres[T] {
	return &Postgres[T]{pool: pool, name: name, logger: logger}
}

func (p *Postgres[T]) Get(ctx context.Context) []T {
	var data []byte
	err := p.pool.QueryRow(ctx,
		"SELECT data FROM collections WHERE name = $1", p.name,
	).Scan(&data)
	if err != nil {
		// Missing row means the collection was never written; that is not
		// an error worth logging on every read.
		if !errors.Is(err, pgx.ErrNoRows) {
			p.logger.Error("read collection", zap.String("collection", p.name), zap.Error(err))
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		p.logger.Error("decode collection", zap.String("collection", p.name), zap.Error(err))
		return nil
	}
	return items
}

func (p *Postgres[T]) Replace(ctx context.Context, items []T) bool {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		p.logger.Error("encode collection", zap.String("collection", p.name), zap.Error(err))
		return false
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, p.name, data)
	if err != nil {
		p.logger.Error("write collection", zap.String("collection", p.name), zap.Error(err))
		return false
	}
	return true
}
