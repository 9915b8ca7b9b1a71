package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/auth"
)

func SetupRoutes(app *fiber.App, h *Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	protected := v1.Group("", middleware.AuthRequired(authService))

	posts := protected.Group("/posts")
	posts.Post("/", h.Post.Create)
	posts.Get("/pinned", h.Pin.Board)
	posts.Get("/:postId/mentions", h.Post.ListMentions)
	posts.Post("/:postId/comments", h.Comment.Create)
	posts.Post("/:postId/reactions", h.Post.ToggleReaction)
	posts.Post("/:postId/pin", middleware.RequireRole(domain.RoleAdmin), h.Pin.Pin)
	posts.Delete("/:postId/pin", middleware.RequireRole(domain.RoleAdmin), h.Pin.Unpin)
	posts.Post("/:postId/acknowledgments", h.Acknowledgment.Acknowledge)
	posts.Get("/:postId/acknowledgments", h.Acknowledgment.Stats)
	posts.Get("/:postId/acknowledgments/me", h.Acknowledgment.HasAcknowledged)

	users := protected.Group("/users")
	users.Get("/me/mentions", h.Post.ListMyMentions)

	events := protected.Group("/events")
	events.Post("/", h.Event.Create)
	events.Post("/:eventId/rsvp", h.Event.ToggleRSVP)

	projects := protected.Group("/projects")
	projects.Post("/", h.Project.Create)
	projects.Post("/:projectId/interest", h.Project.ToggleInterest)

	collaborations := protected.Group("/collaborations")
	collaborations.Post("/invitations", h.Collaboration.CreateInvitations)
	collaborations.Get("/invitations/pending", h.Collaboration.ListPending)
	collaborations.Post("/invitations/:invitationId/respond", h.Collaboration.Respond)
	collaborations.Post("/interest", h.Collaboration.ExpressInterest)
	collaborations.Get("/:kind/:resourceId/collaborators", h.Collaboration.ListCollaborators)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	audit := protected.Group("/audit", middleware.RequireRole(domain.RoleAdmin))
	audit.Get("/recent", h.Audit.GetRecentActivities)
	audit.Get("/:entityType/:entityId", h.Audit.ListByEntity)
}
