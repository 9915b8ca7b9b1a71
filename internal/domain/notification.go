package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	UserID        uuid.UUID        `json:"user_id" db:"user_id"`
	ActorID       *uuid.UUID       `json:"actor_id,omitempty" db:"actor_id"`
	Type          NotificationType `json:"type" db:"type"`
	Title         string           `json:"title" db:"title"`
	ReferenceType ReferenceType    `json:"reference_type" db:"reference_type"`
	ReferenceID   uuid.UUID        `json:"reference_id" db:"reference_id"`
	Link          string           `json:"link" db:"link"`
	ActionData    json.RawMessage  `json:"action_data,omitempty" db:"action_data"`
	IsRead        bool             `json:"read" db:"read"`
	ReadAt        *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifReaction                NotificationType = "reaction"
	NotifComment                 NotificationType = "comment"
	NotifReply                   NotificationType = "reply"
	NotifMention                 NotificationType = "mention"
	NotifRSVP                    NotificationType = "rsvp"
	NotifProjectInterest         NotificationType = "project_interest"
	NotifCollaborationRequest    NotificationType = "collaboration_request"
	NotifCollaborationInvitation NotificationType = "collaboration_invitation"
	NotifInvitationAccepted      NotificationType = "invitation_accepted"
	NotifInvitationDeclined      NotificationType = "invitation_declined"
)

type ReferenceType string

const (
	RefPost    ReferenceType = "post"
	RefEvent   ReferenceType = "event"
	RefProject ReferenceType = "project"
)

// LinkTo builds the in-app path a notification navigates to.
func LinkTo(ref ReferenceType, id uuid.UUID) string {
	return fmt.Sprintf("/%ss/%s", ref, id)
}

// ActorFallbackName stands in for an actor whose profile could not be loaded.
const ActorFallbackName = "Someone"

// OrgFallbackName stands in for an organization whose name could not be loaded.
const OrgFallbackName = "An organization"
