// Package inmem provides mutex-guarded in-memory stores. They back unit
// tests and local development without a database.
package inmem

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpavlovic/devfolio/internal/apperr"
	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
)

type SkillStore struct {
	mu     sync.RWMutex
	skills map[uuid.UUID]domain.Skill
}

func NewSkillStore(seed ...domain.Skill) *SkillStore {
	s := &SkillStore{skills: make(map[uuid.UUID]domain.Skill)}
	for _, skill := range seed {
		if skill.ID == uuid.Nil {
			skill.ID = uuid.New()
		}
		s.skills[skill.ID] = skill
	}
	return s
}

func (s *SkillStore) List(ctx context.Context) ([]domain.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skills := make([]domain.Skill, 0, len(s.skills))
	for _, skill := range s.skills {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].DisplayOrder != skills[j].DisplayOrder {
			return skills[i].DisplayOrder < skills[j].DisplayOrder
		}
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

func (s *SkillStore) ListForTopics(ctx context.Context, limit int) ([]domain.Skill, error) {
	skills, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills, nil
}

func (s *SkillStore) Create(ctx context.Context, skill domain.Skill) (*domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now()
	}
	s.skills[skill.ID] = skill
	return &skill, nil
}

func (s *SkillStore) Update(ctx context.Context, skill domain.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[skill.ID]; !ok {
		return apperr.NewNotFound("skill")
	}
	s.skills[skill.ID] = skill
	return nil
}

func (s *SkillStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return apperr.NewNotFound("skill")
	}
	delete(s.skills, id)
	return nil
}

var _ storage.SkillStore = (*SkillStore)(nil)

type BlogStore struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]domain.BlogPost
}

func NewBlogStore(seed ...domain.BlogPost) *BlogStore {
	s := &BlogStore{posts: make(map[uuid.UUID]domain.BlogPost)}
	for _, post := range seed {
		if post.ID == uuid.Nil {
			post.ID = uuid.New()
		}
		s.posts[post.ID] = post
	}
	return s
}

func (s *BlogStore) ListPublished(ctx context.Context, filter storage.BlogFilter) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []domain.BlogPost
	for _, post := range s.posts {
		if !post.Published {
			continue
		}
		if filter.Tag != "" && !hasTag(post.Tags, filter.Tag) {
			continue
		}
		if filter.Query != "" && !matchesQuery(post, filter.Query) {
			continue
		}
		posts = append(posts, post)
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (s *BlogStore) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]domain.BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (s *BlogStore) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.Slug == slug {
			return &post, nil
		}
	}
	return nil, apperr.NewNotFound("blog post")
}

func (s *BlogStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *BlogStore) Create(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	post.UpdatedAt = time.Now()
	s.posts[post.ID] = post
	return &post, nil
}

func (s *BlogStore) Update(ctx context.Context, post domain.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return apperr.NewNotFound("blog post")
	}
	post.UpdatedAt = time.Now()
	s.posts[post.ID] = post
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return apperr.NewNotFound("blog post")
	}
	delete(s.posts, id)
	return nil
}

var _ storage.BlogStore = (*BlogStore)(nil)

type MessageStore struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]domain.ContactMessage
}

func NewMessageStore() *MessageStore {
	return &MessageStore{messages: make(map[uuid.UUID]domain.ContactMessage)}
}

func (s *MessageStore) List(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]domain.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		messages = append(messages, m)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *MessageStore) Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.messages[msg.ID] = msg
	return &msg, nil
}

func (s *MessageStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return apperr.NewNotFound("message")
	}
	msg.Read = true
	s.messages[id] = msg
	return nil
}

func (s *MessageStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return apperr.NewNotFound("message")
	}
	delete(s.messages, id)
	return nil
}

var _ storage.MessageStore = (*MessageStore)(nil)

type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]domain.Profile
}

func NewProfileStore(seed ...domain.Profile) *ProfileStore {
	s := &ProfileStore{profiles: make(map[uuid.UUID]domain.Profile)}
	for _, profile := range seed {
		if profile.ID == uuid.Nil {
			profile.ID = uuid.New()
		}
		s.profiles[profile.ID] = profile
	}
	return s
}

func (s *ProfileStore) GetOwner(ctx context.Context) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owner *domain.Profile
	for _, p := range s.profiles {
		if !p.IsAdmin() {
			continue
		}
		if owner == nil || p.CreatedAt.Before(owner.CreatedAt) {
			p := p
			owner = &p
		}
	}
	if owner == nil {
		return nil, apperr.NewNotFound("profile")
	}
	return owner, nil
}

func (s *ProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, apperr.NewNotFound("profile")
}

func (s *ProfileStore) Upsert(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.profiles {
		if existing.UserID == profile.UserID {
			profile.ID = id
			profile.CreatedAt = existing.CreatedAt
			profile.UpdatedAt = time.Now()
			s.profiles[id] = profile
			return &profile, nil
		}
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	s.profiles[profile.ID] = profile
	return &profile, nil
}

var _ storage.ProfileStore = (*ProfileStore)(nil)

// matchesQuery is a naive stand-in for the Postgres full-text search.
func matchesQuery(post domain.BlogPost, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(post.Title), q) ||
		strings.Contains(strings.ToLower(post.Content), q)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sortNewestFirst(posts []domain.BlogPost) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
