package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/mpavlovic/devfolio/internal/domain"
)

// BlogFilter narrows a published-post listing. Zero value lists everything.
type BlogFilter struct {
	Tag   string
	Query string
}

type SkillStore interface {
	List(ctx context.Context) ([]domain.Skill, error)
	// ListForTopics returns up to limit skills in store-defined order,
	// carrying just enough fields to seed blog generation.
	ListForTopics(ctx context.Context, limit int) ([]domain.Skill, error)
	Create(ctx context.Context, skill domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, skill domain.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlogStore interface {
	ListPublished(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, error)
	ListAll(ctx context.Context) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, post domain.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, project domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AchievementStore interface {
	List(ctx context.Context) ([]domain.Achievement, error)
	Create(ctx context.Context, achievement domain.Achievement) (*domain.Achievement, error)
	Update(ctx context.Context, achievement domain.Achievement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExperienceStore interface {
	List(ctx context.Context) ([]domain.Experience, error)
	Create(ctx context.Context, experience domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, experience domain.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageStore interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentStore interface {
	GetSection(ctx context.Context, section string) (*domain.ContentSection, error)
	// UpsertSection creates or replaces the content blob keyed by section name.
	UpsertSection(ctx context.Context, content domain.ContentSection) (*domain.ContentSection, error)
}

type ProfileStore interface {
	// GetOwner returns the site owner's profile, the one shown on the
	// public about section.
	GetOwner(ctx context.Context) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
}
