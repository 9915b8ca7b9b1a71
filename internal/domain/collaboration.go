package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResourceKind string

const (
	ResourceEvent   ResourceKind = "event"
	ResourceProject ResourceKind = "project"
)

func (k ResourceKind) IsValid() bool {
	return k == ResourceEvent || k == ResourceProject
}

func (k ResourceKind) ReferenceType() ReferenceType {
	if k == ResourceEvent {
		return RefEvent
	}
	return RefProject
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// IsResponse reports whether s is a status an invitee may answer with.
func (s InvitationStatus) IsResponse() bool {
	return s == InvitationAccepted || s == InvitationDeclined
}

type CollaborationInvitation struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	ResourceType  ResourceKind     `json:"resource_type" db:"resource_type"`
	ResourceID    uuid.UUID        `json:"resource_id" db:"resource_id"`
	InviterOrgID  uuid.UUID        `json:"inviter_org_id" db:"inviter_org_id"`
	InviterUserID uuid.UUID        `json:"inviter_user_id" db:"inviter_user_id"`
	InviteeOrgID  uuid.UUID        `json:"invitee_org_id" db:"invitee_org_id"`
	Status        InvitationStatus `json:"status" db:"status"`
	Message       *string          `json:"message,omitempty" db:"message"`
	RespondedBy   *uuid.UUID       `json:"responded_by,omitempty" db:"responded_by"`
	RespondedAt   *time.Time       `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`

	InviterOrg *Organization `json:"inviter_org,omitempty" db:"-"`
}

// Resource is the owner-and-title view shared by events and projects.
type Resource struct {
	Kind    ResourceKind `json:"kind" db:"kind"`
	ID      uuid.UUID    `json:"id" db:"id"`
	OwnerID uuid.UUID    `json:"owner_id" db:"owner_id"`
	OrgID   *uuid.UUID   `json:"org_id,omitempty" db:"org_id"`
	Title   string       `json:"title" db:"title"`
}

type Collaborator struct {
	ResourceType ResourceKind `json:"resource_type" db:"resource_type"`
	ResourceID   uuid.UUID    `json:"resource_id" db:"resource_id"`
	OrgID        uuid.UUID    `json:"org_id" db:"org_id"`
	OrgName      string       `json:"org_name" db:"org_name"`
	InvitationID *uuid.UUID   `json:"invitation_id,omitempty" db:"invitation_id"`
	AddedAt      time.Time    `json:"added_at" db:"added_at"`
}

type CreateInvitationsInput struct {
	ResourceType  ResourceKind `json:"resource_type" validate:"required,oneof=event project"`
	ResourceID    uuid.UUID    `json:"resource_id" validate:"required"`
	InviterOrgID  uuid.UUID    `json:"inviter_org_id"`
	InviterUserID uuid.UUID    `json:"-"`
	InviteeOrgIDs []uuid.UUID  `json:"invitee_org_ids" validate:"required,min=1,dive,required"`
	Message       *string      `json:"message,omitempty" validate:"omitempty,max=500"`
}

type RespondInvitationInput struct {
	Status InvitationStatus `json:"status" validate:"required,oneof=accepted declined"`
}

type RespondInvitationResult struct {
	Invitation *CollaborationInvitation `json:"invitation"`
	Enrichment Enrichment               `json:"enrichment"`
}

type ExpressInterestInput struct {
	ResourceType ResourceKind `json:"resource_type" validate:"required,oneof=event project"`
	ResourceID   uuid.UUID    `json:"resource_id" validate:"required"`
	OrgID        uuid.UUID    `json:"org_id"`
	UserID       uuid.UUID    `json:"-"`
	Message      *string      `json:"message,omitempty" validate:"omitempty,max=1000"`
}

// CollaborationRequest is a one-way expression of interest relayed to a resource owner.
type CollaborationRequest struct {
	ResourceType ResourceKind
	ResourceID   uuid.UUID
	OwnerID      uuid.UUID
	OrgID        uuid.UUID
	OrgName      string
	UserID       uuid.UUID
	Message      *string
}

type CreateInvitationsResult struct {
	Invitations []CollaborationInvitation `json:"invitations"`
	Enrichment  Enrichment                `json:"enrichment"`
}
