package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
)

type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(pool *ConnectionPool) *ProfileStore {
	return &ProfileStore{db: pool.conn}
}

func (s *ProfileStore) GetOwner(ctx context.Context) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, email, full_name, role, created_at, updated_at
		FROM profiles
		WHERE role = $1
		ORDER BY created_at
		LIMIT 1
	`
	var p domain.Profile
	err := s.db.QueryRow(ctx, query, domain.RoleAdmin).Scan(
		&p.ID, &p.UserID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("profile")
		}
		return nil, fmt.Errorf("failed to get owner profile: %w", err)
	}

	return &p, nil
}

func (s *ProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, email, full_name, role, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var p domain.Profile
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("profile")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (s *ProfileStore) Upsert(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	cmd := `
		INSERT INTO profiles (id, user_id, email, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email, full_name = EXCLUDED.full_name, role = EXCLUDED.role, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := s.db.QueryRow(ctx, cmd,
		profile.ID, profile.UserID, profile.Email, profile.FullName, profile.Role,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return &profile, nil
}

var _ storage.ProfileStore = (*ProfileStore)(nil)
