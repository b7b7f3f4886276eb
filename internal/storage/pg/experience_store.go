package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
)

type ExperienceStore struct {
	db *pgxpool.Pool
}

func NewExperienceStore(pool *ConnectionPool) *ExperienceStore {
	return &ExperienceStore{db: pool.conn}
}

func (s *ExperienceStore) List(ctx context.Context) ([]domain.Experience, error) {
	query := `
		SELECT id, title, company, location, year, description, skills, display_order, created_at, updated_at
		FROM professional_experience
		ORDER BY display_order, created_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	var entries []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Company, &e.Location, &e.Year,
			&e.Description, &e.Skills, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *ExperienceStore) Create(ctx context.Context, experience domain.Experience) (*domain.Experience, error) {
	if experience.ID == uuid.Nil {
		experience.ID = uuid.New()
	}
	now := time.Now()
	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = now
	}
	experience.UpdatedAt = now

	cmd := `
		INSERT INTO professional_experience (id, title, company, location, year, description, skills, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.Exec(ctx, cmd,
		experience.ID, experience.Title, experience.Company, experience.Location, experience.Year,
		experience.Description, experience.Skills, experience.DisplayOrder,
		experience.CreatedAt, experience.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert experience: %w", err)
	}

	return &experience, nil
}

func (s *ExperienceStore) Update(ctx context.Context, experience domain.Experience) error {
	cmd := `
		UPDATE professional_experience
		SET title = $2, company = $3, location = $4, year = $5, description = $6,
		    skills = $7, display_order = $8, updated_at = now()
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		experience.ID, experience.Title, experience.Company, experience.Location,
		experience.Year, experience.Description, experience.Skills, experience.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("experience entry")
	}
	return nil
}

func (s *ExperienceStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM professional_experience WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("experience entry")
	}
	return nil
}

var _ storage.ExperienceStore = (*ExperienceStore)(nil)
