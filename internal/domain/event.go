package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OrganizerID uuid.UUID  `json:"organizer_id" db:"organizer_id"`
	OrgID       *uuid.UUID `json:"org_id,omitempty" db:"org_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	StartsAt    *time.Time `json:"starts_at,omitempty" db:"starts_at"`
	Location    *string    `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}

type CreateEventInput struct {
	Title         string      `json:"title" validate:"required,max=200"`
	Description   *string     `json:"description"`
	StartsAt      *time.Time  `json:"starts_at"`
	Location      *string     `json:"location" validate:"omitempty,max=200"`
	InviteeOrgIDs []uuid.UUID `json:"invitee_org_ids"`
	InviteMessage *string     `json:"invite_message" validate:"omitempty,max=500"`
}

type Project struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	AuthorID    uuid.UUID  `json:"author_id" db:"author_id"`
	OrgID       *uuid.UUID `json:"org_id,omitempty" db:"org_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}

type CreateProjectInput struct {
	Title         string      `json:"title" validate:"required,max=200"`
	Description   *string     `json:"description"`
	InviteeOrgIDs []uuid.UUID `json:"invitee_org_ids"`
	InviteMessage *string     `json:"invite_message" validate:"omitempty,max=500"`
}

// CreateResourceResult is returned by event and project creation; invitations are best-effort.
type CreateResourceResult[T any] struct {
	Resource    *T                        `json:"resource"`
	Invitations []CollaborationInvitation `json:"invitations,omitempty"`
	Enrichment  Enrichment                `json:"enrichment"`
}
