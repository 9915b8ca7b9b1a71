package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/acknowledgment"
)

type AcknowledgmentHandler struct {
	ackService acknowledgment.Service
}

func NewAcknowledgmentHandler(ackService acknowledgment.Service) *AcknowledgmentHandler {
	return &AcknowledgmentHandler{ackService: ackService}
}

func (h *AcknowledgmentHandler) Acknowledge(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	state, err := h.ackService.Acknowledge(c.UserContext(), postID, middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, state)
}

func (h *AcknowledgmentHandler) Stats(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	stats, err := h.ackService.Stats(c.UserContext(), postID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, stats)
}

// HasAcknowledged checks the caller unless ?user_id= names someone else.
func (h *AcknowledgmentHandler) HasAcknowledged(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	userID := middleware.GetUserID(c)
	if raw := c.Query("user_id"); raw != "" {
		userID, err = uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid user ID")
		}
	}

	state, err := h.ackService.HasAcknowledged(c.UserContext(), postID, userID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, state)
}
