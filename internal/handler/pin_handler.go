package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/pin"
)

type PinHandler struct {
	pinService pin.Service
}

func NewPinHandler(pinService pin.Service) *PinHandler {
	return &PinHandler{pinService: pinService}
}

func (h *PinHandler) Pin(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	result, err := h.pinService.Pin(c.UserContext(), user, postID, middleware.RequestInfo(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}

func (h *PinHandler) Unpin(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	result, err := h.pinService.Unpin(c.UserContext(), user, postID, middleware.RequestInfo(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}

func (h *PinHandler) Board(c *fiber.Ctx) error {
	board, err := h.pinService.Board(c.UserContext())
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, board)
}
