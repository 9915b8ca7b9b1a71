package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/mocks"
)

func newTestApp(user *domain.Profile) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserContextKey, user)
		c.Locals(middleware.UserIDContextKey, user.UserID)
		return c.Next()
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, domain.Response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)

	var resp domain.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	return res.StatusCode, resp
}

func TestCollaborationHandler_Respond(t *testing.T) {
	orgID := uuid.New()
	user := &domain.Profile{UserID: uuid.New(), OrganizationID: &orgID, Role: string(domain.RoleMember)}
	invID := uuid.New()

	t.Run("accepts", func(t *testing.T) {
		collabSvc := new(mocks.CollaborationService)
		h := NewCollaborationHandler(collabSvc)
		app := newTestApp(user)
		app.Post("/invitations/:invitationId/respond", h.Respond)

		collabSvc.On("RespondToInvitation", mock.Anything, user, invID, domain.InvitationAccepted, mock.Anything).
			Return(&domain.RespondInvitationResult{Invitation: &domain.CollaborationInvitation{ID: invID, Status: domain.InvitationAccepted}}, nil)

		status, resp := doJSON(t, app, "POST", "/invitations/"+invID.String()+"/respond", `{"status":"accepted"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, resp.Success)
		collabSvc.AssertExpectations(t)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		collabSvc := new(mocks.CollaborationService)
		h := NewCollaborationHandler(collabSvc)
		app := newTestApp(user)
		app.Post("/invitations/:invitationId/respond", h.Respond)

		status, resp := doJSON(t, app, "POST", "/invitations/"+invID.String()+"/respond", `{"status":"maybe"}`)

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_ERROR", resp.Code)
		collabSvc.AssertNotCalled(t, "RespondToInvitation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolved invitation", func(t *testing.T) {
		collabSvc := new(mocks.CollaborationService)
		h := NewCollaborationHandler(collabSvc)
		app := newTestApp(user)
		app.Post("/invitations/:invitationId/respond", h.Respond)

		collabSvc.On("RespondToInvitation", mock.Anything, user, invID, domain.InvitationDeclined, mock.Anything).
			Return(nil, domain.ErrInvitationNotPending)

		status, resp := doJSON(t, app, "POST", "/invitations/"+invID.String()+"/respond", `{"status":"declined"}`)

		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "INVALID_TRANSITION", resp.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewCollaborationHandler(new(mocks.CollaborationService))
		app := newTestApp(user)
		app.Post("/invitations/:invitationId/respond", h.Respond)

		status, _ := doJSON(t, app, "POST", "/invitations/nope/respond", `{"status":"declined"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestCollaborationHandler_ListCollaborators(t *testing.T) {
	user := &domain.Profile{UserID: uuid.New()}
	collabSvc := new(mocks.CollaborationService)
	h := NewCollaborationHandler(collabSvc)
	app := newTestApp(user)
	app.Get("/:kind/:resourceId/collaborators", h.ListCollaborators)

	status, resp := doJSON(t, app, "GET", "/post/"+uuid.NewString()+"/collaborators", "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_RESOURCE_TYPE", resp.Code)
}

func TestCollaborationHandler_ListPendingWithoutOrg(t *testing.T) {
	user := &domain.Profile{UserID: uuid.New()}
	collabSvc := new(mocks.CollaborationService)
	h := NewCollaborationHandler(collabSvc)
	app := newTestApp(user)
	app.Get("/pending", h.ListPending)

	status, resp := doJSON(t, app, "GET", "/pending", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{}, resp.Data)
	collabSvc.AssertNotCalled(t, "ListPending", mock.Anything, mock.Anything)
}

func TestNotificationHandler(t *testing.T) {
	user := &domain.Profile{UserID: uuid.New()}

	t.Run("list unread only", func(t *testing.T) {
		notifSvc := new(mocks.NotificationService)
		h := NewNotificationHandler(notifSvc)
		app := newTestApp(user)
		app.Get("/notifications", h.List)

		params := domain.PaginationParams{Page: 2, PageSize: 10}
		notifSvc.On("List", mock.Anything, user.UserID, true, params).
			Return(domain.NewPaginatedResponse([]domain.Notification{}, 2, 10, 0), nil)

		status, resp := doJSON(t, app, "GET", "/notifications?unread_only=true&page=2&page_size=10", "")

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, resp.Success)
		notifSvc.AssertExpectations(t)
	})

	t.Run("mark someone else's notification", func(t *testing.T) {
		notifSvc := new(mocks.NotificationService)
		h := NewNotificationHandler(notifSvc)
		app := newTestApp(user)
		app.Patch("/notifications/:id/read", h.MarkAsRead)

		id := uuid.New()
		notifSvc.On("MarkAsRead", mock.Anything, id, user.UserID).Return(domain.ErrNotificationNotFound)

		status, resp := doJSON(t, app, "PATCH", "/notifications/"+id.String()+"/read", "")

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", resp.Code)
	})

	t.Run("unread count", func(t *testing.T) {
		notifSvc := new(mocks.NotificationService)
		h := NewNotificationHandler(notifSvc)
		app := newTestApp(user)
		app.Get("/notifications/unread-count", h.GetUnreadCount)

		notifSvc.On("UnreadCount", mock.Anything, user.UserID).Return(int64(7), nil)

		status, resp := doJSON(t, app, "GET", "/notifications/unread-count", "")

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, map[string]any{"count": float64(7)}, resp.Data)
	})
}
