package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
)

type ContentStore struct {
	db *pgxpool.Pool
}

func NewContentStore(pool *ConnectionPool) *ContentStore {
	return &ContentStore{db: pool.conn}
}

func (s *ContentStore) GetSection(ctx context.Context, section string) (*domain.ContentSection, error) {
	query := `
		SELECT id, section, title, content, created_at, updated_at
		FROM portfolio_content
		WHERE section = $1
	`
	var cs domain.ContentSection
	var contentJSON []byte
	err := s.db.QueryRow(ctx, query, section).Scan(
		&cs.ID, &cs.Section, &cs.Title, &contentJSON, &cs.CreatedAt, &cs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("content section")
		}
		return nil, fmt.Errorf("failed to get content section: %w", err)
	}

	if err := json.Unmarshal(contentJSON, &cs.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal section content: %w", err)
	}

	return &cs, nil
}

func (s *ContentStore) UpsertSection(ctx context.Context, content domain.ContentSection) (*domain.ContentSection, error) {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	now := time.Now()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	content.UpdatedAt = now

	contentJSON, err := json.Marshal(content.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal section content: %w", err)
	}

	cmd := `
		INSERT INTO portfolio_content (id, section, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (section) DO UPDATE
		SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err = s.db.QueryRow(ctx, cmd,
		content.ID, content.Section, content.Title, contentJSON, content.CreatedAt, content.UpdatedAt,
	).Scan(&content.ID, &content.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert content section: %w", err)
	}

	return &content, nil
}

var _ storage.ContentStore = (*ContentStore)(nil)
