package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

// Directory mocks the profile and organization lookups the notification and
// collaboration services depend on.
type Directory struct {
	mock.Mock
}

func (m *Directory) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *Directory) FindByNames(ctx context.Context, names []string) ([]domain.Profile, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *Directory) DisplayName(ctx context.Context, userID uuid.UUID) string {
	args := m.Called(ctx, userID)
	return args.String(0)
}

func (m *Directory) OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error) {
	args := m.Called(ctx, orgID)
	return args.String(0), args.Error(1)
}

func (m *Directory) OrgContact(ctx context.Context, orgID uuid.UUID) (*uuid.UUID, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uuid.UUID), args.Error(1)
}

func (m *Directory) AvatarURL(ctx context.Context, stored *string) *string {
	args := m.Called(ctx, stored)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*string)
}

type MentionResolver struct {
	mock.Mock
}

func (m *MentionResolver) Resolve(ctx context.Context, names []string) ([]domain.ResolvedMention, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResolvedMention), args.Error(1)
}
