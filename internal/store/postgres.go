package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound marks operations that referenced a draft ID with no stored
// row. Callers match it with errors.Is.
var ErrNotFound = errors.New("draft not found")

// DraftStore persists server-side drafts in PostgreSQL. Each draft is one
// wizard snapshot keyed by a generated UUID.
type DraftStore struct {
	pool *pgxpool.Pool
}

// ConnectDrafts establishes a connection pool to the drafts database.
func ConnectDrafts(ctx context.Context, databaseURL string) (*DraftStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DraftStore{pool: pool}, nil
}

// Close closes the connection pool.
func (ds *DraftStore) Close() {
	if ds.pool != nil {
		ds.pool.Close()
	}
}

// CreateDraft stores a snapshot and returns its generated ID.
func (ds *DraftStore) CreateDraft(ctx context.Context, ps *PersistedState) (uuid.UUID, error) {
	content, err := json.Marshal(ps)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal draft: %w", err)
	}

	var id uuid.UUID
	err = ds.pool.QueryRow(ctx,
		`INSERT INTO drafts (content)
		 VALUES ($1)
		 RETURNING id`,
		content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return id, nil
}

// UpdateDraft replaces the snapshot stored under an existing draft ID.
func (ds *DraftStore) UpdateDraft(ctx context.Context, draftID uuid.UUID, ps *PersistedState) error {
	content, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	result, err := ds.pool.Exec(ctx,
		`UPDATE drafts SET content = $1, updated_at = NOW() WHERE id = $2`,
		content, draftID,
	)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, draftID)
	}
	return nil
}

// GetDraft retrieves a draft by ID. Returns (nil, nil) when no draft exists.
func (ds *DraftStore) GetDraft(ctx context.Context, draftID uuid.UUID) (*PersistedState, error) {
	var content []byte
	err := ds.pool.QueryRow(ctx,
		`SELECT content FROM drafts WHERE id = $1`,
		draftID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return Decode(content), nil
}

// DeleteDraft removes a draft by ID.
func (ds *DraftStore) DeleteDraft(ctx context.Context, draftID uuid.UUID) error {
	result, err := ds.pool.Exec(ctx, `DELETE FROM drafts WHERE id = $1`, draftID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, draftID)
	}
	return nil
}
