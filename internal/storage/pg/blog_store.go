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

const blogColumns = `id, title, slug, content, excerpt, featured_image, published, ai_generated, tags, created_at, updated_at`

type BlogStore struct {
	db *pgxpool.Pool
}

func NewBlogStore(pool *ConnectionPool) *BlogStore {
	return &BlogStore{db: pool.conn}
}

// ListPublished returns published posts, newest first. An optional tag filter
// and a full-text query over title and content narrow the result.
func (s *BlogStore) ListPublished(ctx context.Context, filter storage.BlogFilter) ([]domain.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE published
		  AND ($1 = '' OR $1 = ANY(tags))
		  AND ($2 = '' OR to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', $2))
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(ctx, query, filter.Tag, filter.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (s *BlogStore) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (s *BlogStore) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`

	post, err := scanPost(s.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("blog post")
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return post, nil
}

func (s *BlogStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (s *BlogStore) Create(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	cmd := `
		INSERT INTO blog_posts (id, title, slug, content, excerpt, featured_image, published, ai_generated, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.Exec(ctx, cmd,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
		post.Published, post.AIGenerated, post.Tags, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &post, nil
}

func (s *BlogStore) Update(ctx context.Context, post domain.BlogPost) error {
	cmd := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, featured_image = $6,
		    published = $7, tags = $8, updated_at = now()
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
		post.Published, post.Tags,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("blog post")
	}
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("blog post")
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.FeaturedImage,
		&post.Published,
		&post.AIGenerated,
		&post.Tags,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func scanPosts(rows pgx.Rows) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

var _ storage.BlogStore = (*BlogStore)(nil)
