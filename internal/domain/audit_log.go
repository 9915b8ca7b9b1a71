package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	UserName   *string         `json:"user_name,omitempty" db:"user_name"`
	Action     string          `json:"action" db:"action"`
	EntityType string          `json:"entity_type" db:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id" db:"entity_id"`
	OldValue   json.RawMessage `json:"old_value,omitempty" db:"old_value"`
	NewValue   json.RawMessage `json:"new_value,omitempty" db:"new_value"`
	IPAddress  *string         `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  *string         `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

type CreateAuditLogInput struct {
	UserID     uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	OldValue   interface{}
	NewValue   interface{}
	IPAddress  *string
	UserAgent  *string
}

const (
	AuditPinPost            = "PIN_POST"
	AuditUnpinPost          = "UNPIN_POST"
	AuditInviteCollaborator = "INVITE_COLLABORATORS"
	AuditRespondInvitation  = "RESPOND_INVITATION"
)

// RequestMeta carries the caller's network details into audited operations.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

func (m *RequestMeta) ptrs() (*string, *string) {
	if m == nil {
		return nil, nil
	}
	var ip, ua *string
	if m.IPAddress != "" {
		ip = &m.IPAddress
	}
	if m.UserAgent != "" {
		ua = &m.UserAgent
	}
	return ip, ua
}

// AuditInput builds a CreateAuditLogInput stamped with the request metadata.
func (m *RequestMeta) AuditInput(userID uuid.UUID, action, entityType string, entityID uuid.UUID, oldValue, newValue interface{}) CreateAuditLogInput {
	ip, ua := m.ptrs()
	return CreateAuditLogInput{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   oldValue,
		NewValue:   newValue,
		IPAddress:  ip,
		UserAgent:  ua,
	}
}
