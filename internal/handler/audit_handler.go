package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) GetRecentActivities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	logs, err := h.auditService.GetRecentActivities(c.UserContext(), limit)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, logs)
}

// ListByEntity pages through the audit trail of a single post or invitation.
func (h *AuditHandler) ListByEntity(c *fiber.Ctx) error {
	entityID, err := parseUUIDParam(c, "entityId", "entity")
	if err != nil {
		return err
	}

	result, err := h.auditService.ListByEntity(c.UserContext(), c.Params("entityType"), entityID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}
