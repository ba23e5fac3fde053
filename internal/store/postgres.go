package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// PostgresStore is a PipelineStore backed by PostgreSQL. Records are stored
// whole as JSONB; Update takes a row lock so the per-candidate serialization
// the memory store provides via mutexes is provided here by the database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the pipeline table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS hiring_pipelines (
		     candidate_id TEXT PRIMARY KEY,
		     record       JSONB NOT NULL,
		     updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		 )`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Update loads the record inside a transaction with a row lock, applies fn,
// and writes the record back. Unlike the memory store, a failing fn rolls
// the whole transaction back, including a lazily created record.
func (s *PostgresStore) Update(ctx context.Context, candidateID string, create func() *types.PipelineRecord, fn func(*types.PipelineRecord) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var recordJSON []byte
	err = tx.QueryRow(ctx,
		`SELECT record FROM hiring_pipelines WHERE candidate_id = $1 FOR UPDATE`,
		candidateID,
	).Scan(&recordJSON)

	var rec *types.PipelineRecord
	switch {
	case err == pgx.ErrNoRows:
		rec = create()
	case err != nil:
		return fmt.Errorf("failed to load pipeline record: %w", err)
	default:
		rec = &types.PipelineRecord{}
		if err := json.Unmarshal(recordJSON, rec); err != nil {
			return fmt.Errorf("failed to decode pipeline record: %w", err)
		}
	}

	if err := fn(rec); err != nil {
		return err
	}

	updated, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode pipeline record: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO hiring_pipelines (candidate_id, record, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (candidate_id) DO UPDATE SET record = $2, updated_at = NOW()`,
		candidateID, updated,
	)
	if err != nil {
		return fmt.Errorf("failed to save pipeline record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pipeline update: %w", err)
	}
	return nil
}

// Get returns the candidate's record, or nil when unknown.
func (s *PostgresStore) Get(ctx context.Context, candidateID string) (*types.PipelineRecord, error) {
	var recordJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM hiring_pipelines WHERE candidate_id = $1`,
		candidateID,
	).Scan(&recordJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pipeline record: %w", err)
	}

	rec := &types.PipelineRecord{}
	if err := json.Unmarshal(recordJSON, rec); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline record: %w", err)
	}
	return rec, nil
}

// List returns all pipeline records.
func (s *PostgresStore) List(ctx context.Context) ([]*types.PipelineRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT record FROM hiring_pipelines`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline records: %w", err)
	}
	defer rows.Close()

	var out []*types.PipelineRecord
	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline record: %w", err)
		}
		rec := &types.PipelineRecord{}
		if err := json.Unmarshal(recordJSON, rec); err != nil {
			return nil, fmt.Errorf("failed to decode pipeline record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pipeline records: %w", err)
	}
	return out, nil
}

var _ PipelineStore = (*PostgresStore)(nil)
