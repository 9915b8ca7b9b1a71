package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, postID, authorID uuid.UUID, input domain.CreateCommentInput) (*domain.CreateCommentResult, error)
}

type service struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	notifSvc    notification.Service
}

func NewService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, notifSvc notification.Service) Service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		notifSvc:    notifSvc,
	}
}

// Create adds a comment, or a reply when input.ParentID is set, and notifies the
// post author or the parent comment's author.
func (s *service) Create(ctx context.Context, postID, authorID uuid.UUID, input domain.CreateCommentInput) (*domain.CreateCommentResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent comment: %w", err)
		}
		if parent == nil {
			return nil, domain.ErrCommentNotFound
		}
		if parent.PostID != postID {
			return nil, domain.ErrParentMismatch
		}
	}

	comment := &domain.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		ParentID: input.ParentID,
		Content:  input.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	result := &domain.CreateCommentResult{Comment: comment}

	if input.ParentID != nil {
		err = s.notifSvc.NotifyReply(ctx, postID, *input.ParentID, authorID)
	} else {
		err = s.notifSvc.NotifyComment(ctx, postID, comment.ID, authorID)
	}
	if err != nil {
		slog.WarnContext(ctx, "comment notification failed", "comment_id", comment.ID, "error", err)
		result.Enrichment.Fail("notify", err)
	}

	return result, nil
}
