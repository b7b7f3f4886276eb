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

type SkillStore struct {
	db *pgxpool.Pool
}

func NewSkillStore(pool *ConnectionPool) *SkillStore {
	return &SkillStore{db: pool.conn}
}

func (s *SkillStore) List(ctx context.Context) ([]domain.Skill, error) {
	query := `
		SELECT id, name, category, icon, proficiency, years_experience, display_order, created_at
		FROM skills
		ORDER BY display_order, name
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Category,
			&skill.Icon,
			&skill.Proficiency,
			&skill.YearsExperience,
			&skill.DisplayOrder,
			&skill.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

func (s *SkillStore) ListForTopics(ctx context.Context, limit int) ([]domain.Skill, error) {
	query := `SELECT name, category FROM skills LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list topic skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.Name, &skill.Category); err != nil {
			return nil, fmt.Errorf("failed to scan topic skill: %w", err)
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

func (s *SkillStore) Create(ctx context.Context, skill domain.Skill) (*domain.Skill, error) {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now()
	}

	cmd := `
		INSERT INTO skills (id, name, category, icon, proficiency, years_experience, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.Exec(ctx, cmd,
		skill.ID, skill.Name, skill.Category, skill.Icon,
		skill.Proficiency, skill.YearsExperience, skill.DisplayOrder, skill.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert skill: %w", err)
	}

	return &skill, nil
}

func (s *SkillStore) Update(ctx context.Context, skill domain.Skill) error {
	cmd := `
		UPDATE skills
		SET name = $2, category = $3, icon = $4, proficiency = $5, years_experience = $6, display_order = $7
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		skill.ID, skill.Name, skill.Category, skill.Icon,
		skill.Proficiency, skill.YearsExperience, skill.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("skill")
	}
	return nil
}

func (s *SkillStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("skill")
	}
	return nil
}

var _ storage.SkillStore = (*SkillStore)(nil)
