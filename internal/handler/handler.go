package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service"
)

type Handlers struct {
	Post           *PostHandler
	Comment        *CommentHandler
	Pin            *PinHandler
	Acknowledgment *AcknowledgmentHandler
	Event          *EventHandler
	Project        *ProjectHandler
	Collaboration  *CollaborationHandler
	Notification   *NotificationHandler
	Audit          *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Post:           NewPostHandler(services.Post, services.Reaction),
		Comment:        NewCommentHandler(services.Comment),
		Pin:            NewPinHandler(services.Pin),
		Acknowledgment: NewAcknowledgmentHandler(services.Acknowledgment),
		Event:          NewEventHandler(services.Event),
		Project:        NewProjectHandler(services.Project),
		Collaboration:  NewCollaborationHandler(services.Collaboration),
		Notification:   NewNotificationHandler(services.Notification),
		Audit:          NewAuditHandler(services.Audit),
	}
}

var validate = validator.New()

// bindAndValidate parses the JSON body into input and applies its validate tags.
func bindAndValidate(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
			return middleware.Unprocessable(strings.Join(fields, "; "))
		}
		return middleware.BadRequest(err.Error())
	}
	return nil
}

func parseUUIDParam(c *fiber.Ctx, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

func currentUser(c *fiber.Ctx) (*domain.Profile, error) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return nil, middleware.Unauthorized("User not found")
	}
	return user, nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}

func respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(domain.OK(data))
}
