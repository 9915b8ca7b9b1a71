package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a directory entry. FullName is the display name mentions resolve against.
type Profile struct {
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`
	FullName       string     `json:"full_name" db:"full_name"`
	AvatarURL      *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	JobTitle       *string    `json:"job_title,omitempty" db:"job_title"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" db:"organization_id"`
	Role           string     `json:"role" db:"role"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

// HasRole reports whether the profile holds role. Admins satisfy every role.
func (p *Profile) HasRole(role UserRole) bool {
	switch UserRole(p.Role) {
	case RoleAdmin:
		return true
	case RoleMember:
		return role == RoleMember
	default:
		return false
	}
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == string(RoleAdmin)
}

type Organization struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	LogoURL *string   `json:"logo_url,omitempty" db:"logo_url"`
}
