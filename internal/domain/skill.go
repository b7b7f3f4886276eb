package domain

import (
	"time"

	"github.com/google/uuid"
)

// Skill is an admin-curated technology or competency. Besides public display
// it doubles as topic inspiration for generated blog posts.
type Skill struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Icon            string    `json:"icon,omitempty"`
	Proficiency     int       `json:"proficiency,omitempty"`
	YearsExperience int       `json:"yearsExperience,omitempty"`
	DisplayOrder    int       `json:"displayOrder"`
	CreatedAt       time.Time `json:"createdAt"`
}
