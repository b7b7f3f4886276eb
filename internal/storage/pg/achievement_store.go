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

type AchievementStore struct {
	db *pgxpool.Pool
}

func NewAchievementStore(pool *ConnectionPool) *AchievementStore {
	return &AchievementStore{db: pool.conn}
}

func (s *AchievementStore) List(ctx context.Context) ([]domain.Achievement, error) {
	query := `
		SELECT id, title, description, category, icon, date_achieved, display_order, created_at
		FROM achievements
		ORDER BY display_order, date_achieved DESC NULLS LAST
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Category, &a.Icon,
			&a.DateAchieved, &a.DisplayOrder, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func (s *AchievementStore) Create(ctx context.Context, achievement domain.Achievement) (*domain.Achievement, error) {
	if achievement.ID == uuid.Nil {
		achievement.ID = uuid.New()
	}
	if achievement.CreatedAt.IsZero() {
		achievement.CreatedAt = time.Now()
	}

	cmd := `
		INSERT INTO achievements (id, title, description, category, icon, date_achieved, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.Exec(ctx, cmd,
		achievement.ID, achievement.Title, achievement.Description, achievement.Category,
		achievement.Icon, achievement.DateAchieved, achievement.DisplayOrder, achievement.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert achievement: %w", err)
	}

	return &achievement, nil
}

func (s *AchievementStore) Update(ctx context.Context, achievement domain.Achievement) error {
	cmd := `
		UPDATE achievements
		SET title = $2, description = $3, category = $4, icon = $5, date_achieved = $6, display_order = $7
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		achievement.ID, achievement.Title, achievement.Description, achievement.Category,
		achievement.Icon, achievement.DateAchieved, achievement.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update achievement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("achievement")
	}
	return nil
}

func (s *AchievementStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("achievement")
	}
	return nil
}

var _ storage.AchievementStore = (*AchievementStore)(nil)
