package acknowledgment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/mocks"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/acknowledgment"
)

func setup() (*mocks.AcknowledgmentRepository, *mocks.PostRepository, *mocks.Directory, acknowledgment.Service) {
	ackRepo := new(mocks.AcknowledgmentRepository)
	postRepo := new(mocks.PostRepository)
	directory := new(mocks.Directory)
	return ackRepo, postRepo, directory, acknowledgment.NewService(ackRepo, postRepo, directory, nil, time.Minute)
}

func TestAcknowledge(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	t.Run("first acknowledgment", func(t *testing.T) {
		ackRepo, postRepo, _, svc := setup()
		postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID}, nil)
		ackRepo.On("Create", ctx, &domain.Acknowledgment{PostID: postID, UserID: userID}).Return(nil).Once()

		state, err := svc.Acknowledge(ctx, postID, userID)

		require.NoError(t, err)
		assert.True(t, state.Acknowledged)
		ackRepo.AssertExpectations(t)
	})

	t.Run("repeat acknowledgment still succeeds", func(t *testing.T) {
		ackRepo, postRepo, _, svc := setup()
		postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID}, nil)
		ackRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateKey)

		state, err := svc.Acknowledge(ctx, postID, userID)

		require.NoError(t, err)
		assert.True(t, state.Acknowledged)
	})

	t.Run("storage failure", func(t *testing.T) {
		ackRepo, postRepo, _, svc := setup()
		postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID}, nil)
		ackRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

		_, err := svc.Acknowledge(ctx, postID, userID)

		assert.Error(t, err)
	})

	t.Run("missing post", func(t *testing.T) {
		ackRepo, postRepo, _, svc := setup()
		postRepo.On("GetByID", ctx, postID).Return(nil, nil)

		_, err := svc.Acknowledge(ctx, postID, userID)

		assert.ErrorIs(t, err, domain.ErrPostNotFound)
		ackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHasAcknowledged(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()
	ackRepo, _, _, svc := setup()
	ackRepo.On("Exists", ctx, postID, userID).Return(false, nil)

	state, err := svc.HasAcknowledged(ctx, postID, userID)

	require.NoError(t, err)
	assert.False(t, state.Acknowledged)
	assert.Equal(t, userID, state.UserID)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	key := "avatars/u1.png"
	signed := "https://media.example.org/avatars/u1.png?sig=abc"

	ackRepo, postRepo, directory, svc := setup()
	postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID}, nil)
	ackRepo.On("ListAcknowledgers", ctx, postID).Return([]domain.Acknowledger{
		{UserID: uuid.New(), FullName: "Newest", AvatarURL: &key},
		{UserID: uuid.New(), FullName: "Oldest"},
	}, nil)
	directory.On("AvatarURL", ctx, &key).Return(&signed)
	directory.On("AvatarURL", ctx, (*string)(nil)).Return(nil)

	stats, err := svc.Stats(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Count)
	require.Len(t, stats.Acknowledgers, 2)
	assert.Equal(t, "Newest", stats.Acknowledgers[0].FullName)
	assert.Equal(t, signed, *stats.Acknowledgers[0].AvatarURL)
	assert.Nil(t, stats.Acknowledgers[1].AvatarURL)
}

func TestStats_CountMatchesListedAcknowledgers(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	ackRepo, postRepo, directory, svc := setup()
	postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID}, nil)
	ackRepo.On("ListAcknowledgers", ctx, postID).Return([]domain.Acknowledger{
		{UserID: uuid.New(), FullName: "A"},
		{UserID: uuid.New(), FullName: "B"},
		{UserID: uuid.New(), FullName: "C"},
	}, nil)
	directory.On("AvatarURL", ctx, (*string)(nil)).Return(nil)

	stats, err := svc.Stats(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, int64(len(stats.Acknowledgers)), stats.Count)
	assert.Equal(t, int64(3), stats.Count)
	ackRepo.AssertExpectations(t)
}
