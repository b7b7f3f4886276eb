package domain

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// Profile supplements an auth user with display data and a role.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
