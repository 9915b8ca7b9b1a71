package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type CollaborationRepository struct {
	mock.Mock
}

func (m *CollaborationRepository) GetResource(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (*domain.Resource, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *CollaborationRepository) CreateInvitations(ctx context.Context, invitations []domain.CollaborationInvitation) ([]domain.CollaborationInvitation, error) {
	args := m.Called(ctx, invitations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollaborationInvitation), args.Error(1)
}

func (m *CollaborationRepository) GetInvitation(ctx context.Context, id uuid.UUID) (*domain.CollaborationInvitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaborationInvitation), args.Error(1)
}

func (m *CollaborationRepository) Respond(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, responderID uuid.UUID) (*domain.CollaborationInvitation, error) {
	args := m.Called(ctx, id, status, responderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaborationInvitation), args.Error(1)
}

func (m *CollaborationRepository) ListPending(ctx context.Context, inviteeOrgID uuid.UUID) ([]domain.CollaborationInvitation, error) {
	args := m.Called(ctx, inviteeOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollaborationInvitation), args.Error(1)
}

func (m *CollaborationRepository) ListCollaborators(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) ([]domain.Collaborator, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collaborator), args.Error(1)
}
