package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/event"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/project"
)

type EventHandler struct {
	eventService event.Service
}

func NewEventHandler(eventService event.Service) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input domain.CreateEventInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.eventService.Create(c.UserContext(), user, input, middleware.RequestInfo(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result)
}

func (h *EventHandler) ToggleRSVP(c *fiber.Ctx) error {
	eventID, err := parseUUIDParam(c, "eventId", "event")
	if err != nil {
		return err
	}

	result, err := h.eventService.ToggleRSVP(c.UserContext(), eventID, middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input domain.CreateProjectInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.projectService.Create(c.UserContext(), user, input, middleware.RequestInfo(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result)
}

func (h *ProjectHandler) ToggleInterest(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "projectId", "project")
	if err != nil {
		return err
	}

	result, err := h.projectService.ToggleInterest(c.UserContext(), projectID, middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}
