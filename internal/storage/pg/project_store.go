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

type ProjectStore struct {
	db *pgxpool.Pool
}

func NewProjectStore(pool *ConnectionPool) *ProjectStore {
	return &ProjectStore{db: pool.conn}
}

func (s *ProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, title, description, tech_stack, github_url, live_url, image_url, featured, display_order, created_at
		FROM projects
		ORDER BY display_order, created_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.TechStack,
			&p.GithubURL, &p.LiveURL, &p.ImageURL, &p.Featured, &p.DisplayOrder, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *ProjectStore) Create(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}

	cmd := `
		INSERT INTO projects (id, title, description, tech_stack, github_url, live_url, image_url, featured, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.Exec(ctx, cmd,
		project.ID, project.Title, project.Description, project.TechStack,
		project.GithubURL, project.LiveURL, project.ImageURL, project.Featured,
		project.DisplayOrder, project.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return &project, nil
}

func (s *ProjectStore) Update(ctx context.Context, project domain.Project) error {
	cmd := `
		UPDATE projects
		SET title = $2, description = $3, tech_stack = $4, github_url = $5,
		    live_url = $6, image_url = $7, featured = $8, display_order = $9
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		project.ID, project.Title, project.Description, project.TechStack,
		project.GithubURL, project.LiveURL, project.ImageURL, project.Featured, project.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("project")
	}
	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("project")
	}
	return nil
}

var _ storage.ProjectStore = (*ProjectStore)(nil)
