package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrForbidden            = errors.New("insufficient permissions for this operation")
	ErrPinLimitReached      = errors.New("maximum of 3 pinned posts reached, unpin another post first")
	ErrInvitationNotPending = errors.New("invitation has already been responded to")
	ErrInvalidStatus        = errors.New("status must be accepted or declined")
	ErrInvalidResourceKind  = errors.New("resource type must be event or project")
	ErrParentMismatch       = errors.New("parent comment belongs to a different post")
	ErrNoInvitees           = errors.New("at least one invitee organization is required")

	// ErrDuplicateKey is returned by repositories when an insert hits a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)
