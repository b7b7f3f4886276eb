// Package bloggen implements the blog-generation pipeline: pick a skill,
// ask the language model for an article, derive a unique slug and persist
// exactly one new post per run.
package bloggen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/mpavlovic/devfolio/internal/completion"
	"github.com/mpavlovic/devfolio/internal/domain"
)

const (
	noTopicsMessage = "No skills found to generate blog about"
	successMessage  = "Blog post generated successfully"
	slugDateLayout  = "20060102"
)

// SkillSource provides candidate topics.
type SkillSource interface {
	ListForTopics(ctx context.Context, limit int) ([]domain.Skill, error)
}

// BlogSink persists generated posts and answers slug-collision lookups.
type BlogSink interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error)
}

// Trigger is the invocation payload. Manual distinguishes operator-triggered
// runs from scheduled ones; it is passthrough metadata only.
type Trigger struct {
	Manual bool `json:"manual"`
}

type BlogSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
	Skill string    `json:"skill"`
}

// Outcome is a successful run result. Blog is nil for the no-op case where
// the skill store was empty.
type Outcome struct {
	Message string       `json:"message"`
	Blog    *BlogSummary `json:"blog,omitempty"`
}

type Generator struct {
	skills   SkillSource
	blogs    BlogSink
	llm      completion.Completer
	settings Settings

	now  func() time.Time
	pick func(n int) int
}

type Option func(*Generator)

// WithClock overrides the time source for the slug date suffix.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithPicker overrides the random topic selection.
func WithPicker(pick func(n int) int) Option {
	return func(g *Generator) {
		g.pick = pick
	}
}

func New(skills SkillSource, blogs BlogSink, llm completion.Completer, settings Settings, opts ...Option) *Generator {
	g := &Generator{
		skills:   skills,
		blogs:    blogs,
		llm:      llm,
		settings: settings,
		now:      time.Now,
		pick:     rand.IntN,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run executes the pipeline once. Every external call is attempted exactly
// once; any failure short-circuits the rest and nothing is written before the
// final insert. Run is not idempotent: each success creates a new post.
func (g *Generator) Run(ctx context.Context, trigger Trigger) (*Outcome, error) {
	slog.Info("Starting blog generation", "manual", trigger.Manual)

	skills, err := g.skills.ListForTopics(ctx, g.settings.TopicLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}

	if len(skills) == 0 {
		slog.Info("No skills found, nothing to generate")
		return &Outcome{Message: noTopicsMessage}, nil
	}

	skill := skills[g.pick(len(skills))]
	slog.Info("Selected skill for blog", "skill", skill.Name, "category", skill.Category)

	raw, err := g.llm.Complete(ctx, completion.Request{
		System:      systemPrompt,
		Prompt:      BuildPrompt(skill),
		Model:       g.settings.Model,
		MaxTokens:   g.settings.MaxTokens,
		Temperature: g.settings.Temperature,
	})
	if err != nil {
		return nil, err
	}

	article := ParseArticle(raw, skill)
	if article.Source == SourceFallback {
		slog.Warn("Model output was not valid JSON, reconstructed fields from raw text", "title", article.Title)
	}

	slug, err := g.resolveSlug(ctx, article.Title)
	if err != nil {
		return nil, err
	}

	created, err := g.blogs.Create(ctx, domain.BlogPost{
		Title:       article.Title,
		Slug:        slug,
		Content:     article.Content,
		Excerpt:     article.Excerpt,
		Published:   true,
		AIGenerated: true,
		Tags:        []string{skill.Name, skill.Category, "development", "tutorial"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save blog post: %w", err)
	}

	slog.Info("Blog post created", "id", created.ID, "slug", created.Slug)

	return &Outcome{
		Message: successMessage,
		Blog: &BlogSummary{
			ID:    created.ID,
			Title: created.Title,
			Slug:  created.Slug,
			Skill: skill.Name,
		},
	}, nil
}

// resolveSlug derives the slug from the title and disambiguates an existing
// slug with a UTC date suffix. Two runs producing the same base title on the
// same UTC day still collide.
func (g *Generator) resolveSlug(ctx context.Context, title string) (string, error) {
	slug := Slugify(title)

	exists, err := g.blogs.SlugExists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("failed to check existing slug: %w", err)
	}

	if exists {
		slug = slug + "-" + g.now().UTC().Format(slugDateLayout)
	}

	return slug, nil
}
