package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostRepository) CreateMentions(ctx context.Context, postID uuid.UUID, userIDs []uuid.UUID) error {
	args := m.Called(ctx, postID, userIDs)
	return args.Error(0)
}

func (m *PostRepository) ListMentions(ctx context.Context, postID uuid.UUID) ([]domain.PostMention, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostMention), args.Error(1)
}

func (m *PostRepository) ListByMentionedUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.MentionedPost, int64, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.MentionedPost), args.Get(1).(int64), args.Error(2)
}

func (m *PostRepository) Pin(ctx context.Context, postID, pinnedBy uuid.UUID, limit int) (bool, error) {
	args := m.Called(ctx, postID, pinnedBy, limit)
	return args.Bool(0), args.Error(1)
}

func (m *PostRepository) Unpin(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *PostRepository) ListPinned(ctx context.Context) ([]domain.PinnedPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PinnedPost), args.Error(1)
}
