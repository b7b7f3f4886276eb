package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	TechStack    []string  `json:"techStack"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Achievement struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category,omitempty"`
	Icon         string     `json:"icon,omitempty"`
	DateAchieved *time.Time `json:"dateAchieved,omitempty"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Experience is a professional experience entry. Year is free-form text
// ("2021 - 2023", "Summer 2020") rather than a date.
type Experience struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Year         string    `json:"year"`
	Description  string    `json:"description,omitempty"`
	Skills       []string  `json:"skills"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ContentSection is a free-form content blob for a named page section
// (hero, about, ...). Content is arbitrary JSON edited from the admin console.
type ContentSection struct {
	ID        uuid.UUID      `json:"id"`
	Section   string         `json:"section"`
	Title     string         `json:"title,omitempty"`
	Content   map[string]any `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
