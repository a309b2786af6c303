package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each slot as a jsonb row in the slots table
// (created by cmd/migrate). Slot semantics are identical to the file
// backing: whole-array load and save, one row per slot.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Load(ctx context.Context, kind string, out any) error {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM slots WHERE name = $1`, kind).Scan(&data)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, kind string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", kind, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO slots (name, data) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`, kind, data)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", kind, err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
