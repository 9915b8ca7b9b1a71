package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	unreadOnly := c.QueryBool("unread_only", false)

	result, err := h.notifService.List(c.UserContext(), middleware.GetUserID(c), unreadOnly, getPaginationParams(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.notifService.UnreadCount(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "notification")
	if err != nil {
		return err
	}

	if err := h.notifService.MarkAsRead(c.UserContext(), id, middleware.GetUserID(c)); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, fiber.Map{"id": id, "read": true})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	updated, err := h.notifService.MarkAllAsRead(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, fiber.Map{"updated": updated})
}
