package post_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/mocks"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/post"
)

type fixture struct {
	postRepo  *mocks.PostRepository
	resolver  *mocks.MentionResolver
	directory *mocks.Directory
	notifSvc  *mocks.NotificationService
	svc       post.Service
}

func newFixture() *fixture {
	f := &fixture{
		postRepo:  new(mocks.PostRepository),
		resolver:  new(mocks.MentionResolver),
		directory: new(mocks.Directory),
		notifSvc:  new(mocks.NotificationService),
	}
	f.svc = post.NewService(f.postRepo, f.resolver, f.directory, f.notifSvc)
	return f
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	author := &domain.Profile{UserID: uuid.New(), FullName: "Ann", OrganizationID: &orgID}
	alice := uuid.New()
	bob := uuid.New()

	t.Run("extracted mentions are resolved and notified", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return p.AuthorID == author.UserID && p.Category == domain.CategoryGeneral && *p.OrgID == orgID
		})).Return(nil)
		f.resolver.On("Resolve", ctx, []string{"Alice Smith", "bob"}).Return([]domain.ResolvedMention{
			{UserID: alice, Name: "Alice Smith"},
			{UserID: bob, Name: "Bob"},
		}, nil)
		f.postRepo.On("CreateMentions", ctx, mock.Anything, []uuid.UUID{alice, bob}).Return(nil).Once()
		f.notifSvc.On("NotifyMentions", ctx, mock.Anything, author.UserID, []uuid.UUID{alice, bob}).Return(nil).Once()

		result, err := f.svc.Create(ctx, author, domain.CreatePostInput{Content: "Thanks @[Alice Smith] and @bob!"})

		require.NoError(t, err)
		assert.Len(t, result.Mentions, 2)
		assert.Equal(t, "Alice Smith", result.Mentions[0].Name)
		assert.False(t, result.Enrichment.Degraded())
		f.postRepo.AssertExpectations(t)
		f.notifSvc.AssertExpectations(t)
	})

	t.Run("explicit ids skip extraction", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("Create", ctx, mock.Anything).Return(nil)
		f.postRepo.On("CreateMentions", ctx, mock.Anything, []uuid.UUID{alice}).Return(nil)
		f.notifSvc.On("NotifyMentions", ctx, mock.Anything, author.UserID, []uuid.UUID{alice}).Return(nil)

		result, err := f.svc.Create(ctx, author, domain.CreatePostInput{
			Content:          "Hello @bob",
			Category:         domain.CategoryWins,
			MentionedUserIDs: []uuid.UUID{alice, alice},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.CategoryWins, result.Post.Category)
		require.Len(t, result.Mentions, 1)
		f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("no mentions", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("Create", ctx, mock.Anything).Return(nil)

		result, err := f.svc.Create(ctx, author, domain.CreatePostInput{Content: "plain update"})

		require.NoError(t, err)
		assert.Empty(t, result.Mentions)
		f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		f.postRepo.AssertNotCalled(t, "CreateMentions", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed mention save skips notification", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("Create", ctx, mock.Anything).Return(nil)
		f.postRepo.On("CreateMentions", ctx, mock.Anything, []uuid.UUID{alice}).Return(errors.New("constraint"))

		result, err := f.svc.Create(ctx, author, domain.CreatePostInput{Content: "hi", MentionedUserIDs: []uuid.UUID{alice}})

		require.NoError(t, err)
		require.True(t, result.Enrichment.Degraded())
		assert.Equal(t, "save_mentions", result.Enrichment.Failures[0].Step)
		f.notifSvc.AssertNotCalled(t, "NotifyMentions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notification failure keeps the post", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("Create", ctx, mock.Anything).Return(nil)
		f.postRepo.On("CreateMentions", ctx, mock.Anything, []uuid.UUID{alice}).Return(nil)
		f.notifSvc.On("NotifyMentions", ctx, mock.Anything, author.UserID, []uuid.UUID{alice}).Return(errors.New("down"))

		result, err := f.svc.Create(ctx, author, domain.CreatePostInput{Content: "hi", MentionedUserIDs: []uuid.UUID{alice}})

		require.NoError(t, err)
		assert.NotNil(t, result.Post)
		assert.Equal(t, "notify_mentions", result.Enrichment.Failures[0].Step)
	})

	t.Run("insert failure", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := f.svc.Create(ctx, author, domain.CreatePostInput{Content: "hi @bob"})

		assert.Error(t, err)
		f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})
}

func TestListMentions(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	key := "avatars/a.png"
	signed := "https://cdn.example.org/a.png"

	f := newFixture()
	f.postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID}, nil)
	f.postRepo.On("ListMentions", ctx, postID).Return([]domain.PostMention{
		{PostID: postID, MentionedUserID: uuid.New(), FullName: "Alice", AvatarURL: &key},
	}, nil)
	f.directory.On("AvatarURL", ctx, &key).Return(&signed)

	mentions, err := f.svc.ListMentions(ctx, postID)

	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, signed, *mentions[0].AvatarURL)
}

func TestMentionsOf(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("pages and presigns author avatars", func(t *testing.T) {
		key := "avatars/author.png"
		signed := "https://cdn.example.org/author.png"
		f := newFixture()
		f.postRepo.On("ListByMentionedUser", ctx, userID, domain.PaginationParams{Page: 2, PageSize: 1}).
			Return([]domain.MentionedPost{{PostID: uuid.New(), AuthorName: "Bob", AuthorAvatarURL: &key}}, int64(3), nil)
		f.directory.On("AvatarURL", ctx, &key).Return(&signed)

		page, err := f.svc.MentionsOf(ctx, userID, domain.PaginationParams{Page: 2, PageSize: 1})

		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, signed, *page.Data[0].AuthorAvatarURL)
		assert.Equal(t, 3, page.TotalPages)
		assert.True(t, page.HasNext)
	})

	t.Run("storage error", func(t *testing.T) {
		boom := errors.New("boom")
		f := newFixture()
		f.postRepo.On("ListByMentionedUser", ctx, userID, domain.DefaultPagination()).Return(nil, int64(0), boom)

		_, err := f.svc.MentionsOf(ctx, userID, domain.PaginationParams{})

		assert.ErrorIs(t, err, boom)
	})
}
