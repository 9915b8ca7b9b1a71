package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Profile        ProfileRepository
	Organization   OrganizationRepository
	Post           PostRepository
	Comment        CommentRepository
	Reaction       ReactionRepository
	Event          EventRepository
	Project        ProjectRepository
	Notification   NotificationRepository
	Collaboration  CollaborationRepository
	Acknowledgment AcknowledgmentRepository
	AuditLog       AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Profile:        NewProfileRepository(db),
		Organization:   NewOrganizationRepository(db),
		Post:           NewPostRepository(db),
		Comment:        NewCommentRepository(db),
		Reaction:       NewReactionRepository(db),
		Event:          NewEventRepository(db),
		Project:        NewProjectRepository(db),
		Notification:   NewNotificationRepository(db),
		Collaboration:  NewCollaborationRepository(db),
		Acknowledgment: NewAcknowledgmentRepository(db),
		AuditLog:       NewAuditLogRepository(db),
	}
}
