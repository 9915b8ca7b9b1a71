package notification_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/config"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/mocks"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/notification"
)

type fixture struct {
	notifRepo   *mocks.NotificationRepository
	postRepo    *mocks.PostRepository
	commentRepo *mocks.CommentRepository
	eventRepo   *mocks.EventRepository
	projectRepo *mocks.ProjectRepository
	directory   *mocks.Directory
	svc         notification.Service
}

func newFixture() *fixture {
	f := &fixture{
		notifRepo:   new(mocks.NotificationRepository),
		postRepo:    new(mocks.PostRepository),
		commentRepo: new(mocks.CommentRepository),
		eventRepo:   new(mocks.EventRepository),
		projectRepo: new(mocks.ProjectRepository),
		directory:   new(mocks.Directory),
	}
	f.svc = notification.NewService(f.notifRepo, f.postRepo, f.commentRepo, f.eventRepo, f.projectRepo,
		f.directory, nil, &config.Config{Locale: "en"})
	return f
}

func (f *fixture) captureCreate() *domain.Notification {
	var created domain.Notification
	f.notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			created = *args.Get(1).(*domain.Notification)
		}).Return(nil).Once()
	return &created
}

func TestNotifyReaction(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()
	actorID := uuid.New()

	t.Run("notifies the post author", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID, AuthorID: authorID}, nil)
		f.directory.On("DisplayName", ctx, actorID).Return("Alice Jones")
		created := f.captureCreate()

		err := f.svc.NotifyReaction(ctx, postID, actorID)

		require.NoError(t, err)
		assert.Equal(t, authorID, created.UserID)
		assert.Equal(t, actorID, *created.ActorID)
		assert.Equal(t, domain.NotifReaction, created.Type)
		assert.Equal(t, "Alice Jones liked your post", created.Title)
		assert.Equal(t, domain.RefPost, created.ReferenceType)
		assert.Equal(t, postID, created.ReferenceID)
		assert.Equal(t, "/posts/"+postID.String(), created.Link)
		f.notifRepo.AssertExpectations(t)
	})

	t.Run("self reaction is suppressed", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID, AuthorID: authorID}, nil)

		err := f.svc.NotifyReaction(ctx, postID, authorID)

		require.NoError(t, err)
		f.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.directory.AssertNotCalled(t, "DisplayName", mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("GetByID", ctx, postID).Return(nil, nil)

		err := f.svc.NotifyReaction(ctx, postID, actorID)

		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})
}

func TestNotifyCommentAndReply(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	commentID := uuid.New()
	parentID := uuid.New()
	postAuthor := uuid.New()
	parentAuthor := uuid.New()
	actorID := uuid.New()

	t.Run("comment references the post", func(t *testing.T) {
		f := newFixture()
		f.postRepo.On("GetByID", ctx, postID).Return(&domain.Post{ID: postID, AuthorID: postAuthor}, nil)
		f.directory.On("DisplayName", ctx, actorID).Return("Bob")
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyComment(ctx, postID, commentID, actorID))

		assert.Equal(t, "Bob commented on your post", created.Title)
		assert.Equal(t, postID, created.ReferenceID)
		assert.Contains(t, string(created.ActionData), commentID.String())
	})

	t.Run("reply goes to the parent comment author", func(t *testing.T) {
		f := newFixture()
		f.commentRepo.On("GetByID", ctx, parentID).Return(&domain.Comment{ID: parentID, PostID: postID, AuthorID: parentAuthor}, nil)
		f.directory.On("DisplayName", ctx, actorID).Return("Bob")
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyReply(ctx, postID, parentID, actorID))

		assert.Equal(t, parentAuthor, created.UserID)
		assert.Equal(t, domain.NotifReply, created.Type)
		assert.Equal(t, "Bob replied to your comment", created.Title)
		assert.Equal(t, "/posts/"+postID.String(), created.Link)
	})

	t.Run("reply to own comment is suppressed", func(t *testing.T) {
		f := newFixture()
		f.commentRepo.On("GetByID", ctx, parentID).Return(&domain.Comment{ID: parentID, AuthorID: actorID}, nil)

		require.NoError(t, f.svc.NotifyReply(ctx, postID, parentID, actorID))
		f.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestNotifyMentions(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()
	u1 := uuid.New()
	u2 := uuid.New()

	t.Run("author removed and duplicates collapsed", func(t *testing.T) {
		f := newFixture()
		f.directory.On("DisplayName", ctx, authorID).Return("Carol")

		var batch []domain.Notification
		f.notifRepo.On("CreateBatch", ctx, mock.Anything).Run(func(args mock.Arguments) {
			batch = args.Get(1).([]domain.Notification)
		}).Return(nil).Once()

		err := f.svc.NotifyMentions(ctx, postID, authorID, []uuid.UUID{u1, authorID, u2, u1})

		require.NoError(t, err)
		require.Len(t, batch, 2)
		assert.Equal(t, u1, batch[0].UserID)
		assert.Equal(t, u2, batch[1].UserID)
		for _, n := range batch {
			assert.Equal(t, "Carol mentioned you in a post", n.Title)
			assert.Equal(t, domain.NotifMention, n.Type)
			assert.Equal(t, authorID, *n.ActorID)
		}
	})

	t.Run("only the author mentioned is a no-op", func(t *testing.T) {
		f := newFixture()

		err := f.svc.NotifyMentions(ctx, postID, authorID, []uuid.UUID{authorID})

		require.NoError(t, err)
		f.notifRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.svc.NotifyMentions(ctx, postID, authorID, nil))
		f.notifRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("batch failure is returned", func(t *testing.T) {
		f := newFixture()
		f.directory.On("DisplayName", ctx, authorID).Return("Carol")
		f.notifRepo.On("CreateBatch", ctx, mock.Anything).Return(errors.New("db down"))

		err := f.svc.NotifyMentions(ctx, postID, authorID, []uuid.UUID{u1})
		assert.Error(t, err)
	})
}

func TestNotifyRSVPAndProjectInterest(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	projectID := uuid.New()
	ownerID := uuid.New()
	actorID := uuid.New()

	t.Run("rsvp", func(t *testing.T) {
		f := newFixture()
		f.eventRepo.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, OrganizerID: ownerID}, nil)
		f.directory.On("DisplayName", ctx, actorID).Return("Dan")
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyRSVP(ctx, eventID, actorID))
		assert.Equal(t, "Dan is attending your event", created.Title)
		assert.Equal(t, "/events/"+eventID.String(), created.Link)
	})

	t.Run("rsvp by organizer is suppressed", func(t *testing.T) {
		f := newFixture()
		f.eventRepo.On("GetByID", ctx, eventID).Return(&domain.Event{ID: eventID, OrganizerID: ownerID}, nil)

		require.NoError(t, f.svc.NotifyRSVP(ctx, eventID, ownerID))
		f.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("project interest", func(t *testing.T) {
		f := newFixture()
		f.projectRepo.On("GetByID", ctx, projectID).Return(&domain.Project{ID: projectID, AuthorID: ownerID}, nil)
		f.directory.On("DisplayName", ctx, actorID).Return("Dan")
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyProjectInterest(ctx, projectID, actorID))
		assert.Equal(t, "Dan is interested in your project", created.Title)
		assert.Equal(t, domain.RefProject, created.ReferenceType)
	})

	t.Run("missing project", func(t *testing.T) {
		f := newFixture()
		f.projectRepo.On("GetByID", ctx, projectID).Return(nil, nil)

		assert.ErrorIs(t, f.svc.NotifyProjectInterest(ctx, projectID, actorID), domain.ErrResourceNotFound)
	})
}

func TestNotifyCollaborationRequest(t *testing.T) {
	ctx := context.Background()
	req := domain.CollaborationRequest{
		ResourceType: domain.ResourceProject,
		ResourceID:   uuid.New(),
		OwnerID:      uuid.New(),
		OrgID:        uuid.New(),
		OrgName:      "Food Bank",
		UserID:       uuid.New(),
	}

	t.Run("without message", func(t *testing.T) {
		f := newFixture()
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyCollaborationRequest(ctx, req))
		assert.Equal(t, "Food Bank expressed interest in collaborating on your project", created.Title)
		assert.Equal(t, req.OwnerID, created.UserID)
		assert.Equal(t, "/projects/"+req.ResourceID.String(), created.Link)
	})

	t.Run("short message is quoted whole", func(t *testing.T) {
		f := newFixture()
		created := f.captureCreate()
		msg := "We can help with volunteers"
		r := req
		r.Message = &msg

		require.NoError(t, f.svc.NotifyCollaborationRequest(ctx, r))
		assert.Equal(t, `Food Bank expressed interest in collaborating: "We can help with volunteers"`, created.Title)
	})

	t.Run("long message is truncated to fifty characters", func(t *testing.T) {
		f := newFixture()
		created := f.captureCreate()
		msg := strings.Repeat("a", 60)
		r := req
		r.Message = &msg

		require.NoError(t, f.svc.NotifyCollaborationRequest(ctx, r))
		assert.Equal(t, `Food Bank expressed interest in collaborating: "`+strings.Repeat("a", 50)+`..."`, created.Title)
	})

	t.Run("repeated requests are all relayed", func(t *testing.T) {
		f := newFixture()
		f.notifRepo.On("Create", ctx, mock.Anything).Return(nil).Twice()

		require.NoError(t, f.svc.NotifyCollaborationRequest(ctx, req))
		require.NoError(t, f.svc.NotifyCollaborationRequest(ctx, req))
		f.notifRepo.AssertNumberOfCalls(t, "Create", 2)
	})
}

func TestNotifyInvitationSent(t *testing.T) {
	ctx := context.Background()
	inv := &domain.CollaborationInvitation{
		ID:            uuid.New(),
		ResourceType:  domain.ResourceEvent,
		ResourceID:    uuid.New(),
		InviterUserID: uuid.New(),
		InviteeOrgID:  uuid.New(),
		Status:        domain.InvitationPending,
	}
	contact := uuid.New()

	t.Run("notifies the org contact", func(t *testing.T) {
		f := newFixture()
		f.directory.On("OrgContact", ctx, inv.InviteeOrgID).Return(&contact, nil)
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyInvitationSent(ctx, inv, "Youth Club", "Summer Fair"))
		assert.Equal(t, contact, created.UserID)
		assert.Equal(t, "Youth Club invited your organization to collaborate on Summer Fair", created.Title)
		assert.Equal(t, domain.NotifCollaborationInvitation, created.Type)
	})

	t.Run("fallback names", func(t *testing.T) {
		f := newFixture()
		f.directory.On("OrgContact", ctx, inv.InviteeOrgID).Return(&contact, nil)
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyInvitationSent(ctx, inv, "", ""))
		assert.Equal(t, "An organization invited your organization to collaborate on this event", created.Title)
	})

	t.Run("org without members is skipped", func(t *testing.T) {
		f := newFixture()
		f.directory.On("OrgContact", ctx, inv.InviteeOrgID).Return(nil, nil)

		require.NoError(t, f.svc.NotifyInvitationSent(ctx, inv, "Youth Club", "Summer Fair"))
		f.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestNotifyInvitationResponse(t *testing.T) {
	ctx := context.Background()
	responder := uuid.New()

	newInv := func(status domain.InvitationStatus) *domain.CollaborationInvitation {
		return &domain.CollaborationInvitation{
			ID:            uuid.New(),
			ResourceType:  domain.ResourceProject,
			ResourceID:    uuid.New(),
			InviterUserID: uuid.New(),
			InviteeOrgID:  uuid.New(),
			Status:        status,
		}
	}

	t.Run("accepted", func(t *testing.T) {
		f := newFixture()
		inv := newInv(domain.InvitationAccepted)
		f.directory.On("OrganizationName", ctx, inv.InviteeOrgID).Return("Tenants Association", nil)
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyInvitationResponse(ctx, inv, responder))
		assert.Equal(t, inv.InviterUserID, created.UserID)
		assert.Equal(t, domain.NotifInvitationAccepted, created.Type)
		assert.Equal(t, "Tenants Association accepted your collaboration invitation", created.Title)
	})

	t.Run("declined with unknown org", func(t *testing.T) {
		f := newFixture()
		inv := newInv(domain.InvitationDeclined)
		f.directory.On("OrganizationName", ctx, inv.InviteeOrgID).Return("", domain.ErrOrganizationNotFound)
		created := f.captureCreate()

		require.NoError(t, f.svc.NotifyInvitationResponse(ctx, inv, responder))
		assert.Equal(t, "An organization declined your collaboration invitation", created.Title)
	})

	t.Run("pending is not a response", func(t *testing.T) {
		f := newFixture()
		err := f.svc.NotifyInvitationResponse(ctx, newInv(domain.InvitationPending), responder)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestInbox(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unread count without cache", func(t *testing.T) {
		f := newFixture()
		f.notifRepo.On("CountUnread", ctx, userID).Return(int64(4), nil)

		count, err := f.svc.UnreadCount(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("mark as read of a foreign notification", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.notifRepo.On("MarkAsRead", ctx, id, userID).Return(domain.ErrNotificationNotFound)

		assert.ErrorIs(t, f.svc.MarkAsRead(ctx, id, userID), domain.ErrNotificationNotFound)
	})

	t.Run("mark all as read", func(t *testing.T) {
		f := newFixture()
		f.notifRepo.On("MarkAllAsRead", ctx, userID).Return(int64(3), nil)

		updated, err := f.svc.MarkAllAsRead(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), updated)
	})

	t.Run("list paginates", func(t *testing.T) {
		f := newFixture()
		params := domain.DefaultPagination()
		items := []domain.Notification{{ID: uuid.New(), UserID: userID}}
		f.notifRepo.On("ListByUser", ctx, userID, true, params).Return(items, int64(1), nil)

		result, err := f.svc.List(ctx, userID, true, params)
		require.NoError(t, err)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, int64(1), result.TotalItems)
	})
}
