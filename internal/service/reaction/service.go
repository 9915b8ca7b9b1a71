package reaction

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
	Toggle(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResult, error)
}

type service struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
	notifSvc     notification.Service
}

func NewService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository, notifSvc notification.Service) Service {
	return &service{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		notifSvc:     notifSvc,
	}
}

// Toggle likes or unlikes a post. Only a new like notifies the author.
func (s *service) Toggle(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	added, err := s.reactionRepo.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	result := &domain.ToggleResult{Active: added}
	if added {
		if err := s.notifSvc.NotifyReaction(ctx, postID, userID); err != nil {
			slog.WarnContext(ctx, "reaction notification failed", "post_id", postID, "error", err)
			result.Enrichment.Fail("notify", err)
		}
	}
	return result, nil
}
