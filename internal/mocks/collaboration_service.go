package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type CollaborationService struct {
	mock.Mock
}

func (m *CollaborationService) CreateInvitations(ctx context.Context, caller *domain.Profile, input domain.CreateInvitationsInput, meta *domain.RequestMeta) (*domain.CreateInvitationsResult, error) {
	args := m.Called(ctx, caller, input, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreateInvitationsResult), args.Error(1)
}

func (m *CollaborationService) RespondToInvitation(ctx context.Context, caller *domain.Profile, invitationID uuid.UUID, status domain.InvitationStatus, meta *domain.RequestMeta) (*domain.RespondInvitationResult, error) {
	args := m.Called(ctx, caller, invitationID, status, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RespondInvitationResult), args.Error(1)
}

func (m *CollaborationService) ListPending(ctx context.Context, orgID uuid.UUID) ([]domain.CollaborationInvitation, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollaborationInvitation), args.Error(1)
}

func (m *CollaborationService) ListCollaborators(ctx context.Context, kind domain.ResourceKind, resourceID uuid.UUID) ([]domain.Collaborator, error) {
	args := m.Called(ctx, kind, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collaborator), args.Error(1)
}

func (m *CollaborationService) ExpressInterest(ctx context.Context, caller *domain.Profile, input domain.ExpressInterestInput) error {
	args := m.Called(ctx, caller, input)
	return args.Error(0)
}
