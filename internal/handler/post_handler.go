package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/post"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/reaction"
)

type PostHandler struct {
	postService     post.Service
	reactionService reaction.Service
}

func NewPostHandler(postService post.Service, reactionService reaction.Service) *PostHandler {
	return &PostHandler{postService: postService, reactionService: reactionService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input domain.CreatePostInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.postService.Create(c.UserContext(), user, input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result)
}

func (h *PostHandler) ListMentions(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	mentions, err := h.postService.ListMentions(c.UserContext(), postID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, mentions)
}

// ListMyMentions pages through the posts that mention the caller.
func (h *PostHandler) ListMyMentions(c *fiber.Ctx) error {
	result, err := h.postService.MentionsOf(c.UserContext(), middleware.GetUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}

func (h *PostHandler) ToggleReaction(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "postId", "post")
	if err != nil {
		return err
	}

	result, err := h.reactionService.Toggle(c.UserContext(), postID, middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result)
}
