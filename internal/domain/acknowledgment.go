package domain

import (
	"time"

	"github.com/google/uuid"
)

type Acknowledgment struct {
	PostID         uuid.UUID `json:"post_id" db:"post_id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	AcknowledgedAt time.Time `json:"acknowledged_at" db:"acknowledged_at"`
}

type Acknowledger struct {
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	FullName       string    `json:"full_name" db:"full_name"`
	AvatarURL      *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	AcknowledgedAt time.Time `json:"acknowledged_at" db:"acknowledged_at"`
}

type AcknowledgmentStats struct {
	PostID        uuid.UUID      `json:"post_id"`
	Count         int64          `json:"count"`
	Acknowledgers []Acknowledger `json:"acknowledgers"`
}

type AcknowledgmentState struct {
	PostID       uuid.UUID `json:"post_id"`
	UserID       uuid.UUID `json:"user_id"`
	Acknowledged bool      `json:"acknowledged"`
}
