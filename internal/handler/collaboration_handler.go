package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/collaboration"
)

type CollaborationHandler struct {
	collabService collaboration.Service
}

func NewCollaborationHandler(collabService collaboration.Service) *CollaborationHandler {
	return &CollaborationHandler{collabService: collabService}
}

func (h *CollaborationHandler) CreateInvitations(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input domain.CreateInvitationsInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.collabService.CreateInvitations(c.UserContext(), user, input, middleware.RequestInfo(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result)
}

func (h *CollaborationHandler) Respond(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	invitationID, err := parseUUIDParam(c, "invitationId", "invitation")
	if err != nil {
		return err
	}

	var input domain.RespondInvitationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.collabService.RespondToInvitation(c.UserContext(), user, invitationID, input.Status, middleware.RequestInfo(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}

// ListPending returns the invitations waiting on the caller's organization.
func (h *CollaborationHandler) ListPending(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if user.OrganizationID == nil {
		return respond(c, fiber.StatusOK, []domain.CollaborationInvitation{})
	}

	invitations, err := h.collabService.ListPending(c.UserContext(), *user.OrganizationID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, invitations)
}

func (h *CollaborationHandler) ListCollaborators(c *fiber.Ctx) error {
	kind := domain.ResourceKind(c.Params("kind"))
	if !kind.IsValid() {
		return domain.ErrInvalidResourceKind
	}

	resourceID, err := parseUUIDParam(c, "resourceId", "resource")
	if err != nil {
		return err
	}

	collaborators, err := h.collabService.ListCollaborators(c.UserContext(), kind, resourceID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, collaborators)
}

func (h *CollaborationHandler) ExpressInterest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input domain.ExpressInterestInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.collabService.ExpressInterest(c.UserContext(), user, input); err != nil {
		return err
	}

	return respond(c, fiber.StatusAccepted, fiber.Map{"sent": true})
}
