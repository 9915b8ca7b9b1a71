package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyReaction(ctx context.Context, postID, actorID uuid.UUID) error {
	args := m.Called(ctx, postID, actorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyComment(ctx context.Context, postID, commentID, actorID uuid.UUID) error {
	args := m.Called(ctx, postID, commentID, actorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyReply(ctx context.Context, postID, parentCommentID, actorID uuid.UUID) error {
	args := m.Called(ctx, postID, parentCommentID, actorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyMentions(ctx context.Context, postID, authorID uuid.UUID, mentioned []uuid.UUID) error {
	args := m.Called(ctx, postID, authorID, mentioned)
	return args.Error(0)
}

func (m *NotificationService) NotifyRSVP(ctx context.Context, eventID, actorID uuid.UUID) error {
	args := m.Called(ctx, eventID, actorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyProjectInterest(ctx context.Context, projectID, actorID uuid.UUID) error {
	args := m.Called(ctx, projectID, actorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyCollaborationRequest(ctx context.Context, req domain.CollaborationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *NotificationService) NotifyInvitationSent(ctx context.Context, inv *domain.CollaborationInvitation, inviterOrgName, resourceTitle string) error {
	args := m.Called(ctx, inv, inviterOrgName, resourceTitle)
	return args.Error(0)
}

func (m *NotificationService) NotifyInvitationResponse(ctx context.Context, inv *domain.CollaborationInvitation, responderID uuid.UUID) error {
	args := m.Called(ctx, inv, responderID)
	return args.Error(0)
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
