package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create adds a comment to a post, or a reply when parent_id is set.
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	var input domain.CreateCommentInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.commentService.Create(c.UserContext(), postID, middleware.GetUserID(c), input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result)
}
