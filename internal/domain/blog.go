package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a published or draft article. Slug is unique across all posts
// and drives public routing.
type BlogPost struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt,omitempty"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Published     bool      `json:"published"`
	AIGenerated   bool      `json:"aiGenerated"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
