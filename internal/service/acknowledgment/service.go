package acknowledgment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/pkg/cache"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/pin"
)

type Service interface {
	Acknowledge(ctx context.Context, postID, userID uuid.UUID) (*domain.AcknowledgmentState, error)
	HasAcknowledged(ctx context.Context, postID, userID uuid.UUID) (*domain.AcknowledgmentState, error)
	Stats(ctx context.Context, postID uuid.UUID) (*domain.AcknowledgmentStats, error)
}

type AvatarResolver interface {
	AvatarURL(ctx context.Context, stored *string) *string
}

type service struct {
	ackRepo  repository.AcknowledgmentRepository
	postRepo repository.PostRepository
	avatars  AvatarResolver
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewService(ackRepo repository.AcknowledgmentRepository, postRepo repository.PostRepository, avatars AvatarResolver, redis *redis.Client, cacheTTL time.Duration) Service {
	return &service{
		ackRepo:  ackRepo,
		postRepo: postRepo,
		avatars:  avatars,
		redis:    redis,
		cacheTTL: cacheTTL,
	}
}

func statsKey(postID uuid.UUID) string {
	return fmt.Sprintf("acks:%s", postID)
}

func (s *service) ensurePost(ctx context.Context, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	return nil
}

// Acknowledge records that userID has seen the post. Repeating it is a no-op that
// still reports success.
func (s *service) Acknowledge(ctx context.Context, postID, userID uuid.UUID) (*domain.AcknowledgmentState, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	ack := &domain.Acknowledgment{PostID: postID, UserID: userID}
	err := s.ackRepo.Create(ctx, ack)
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		// already acknowledged
	case err != nil:
		return nil, fmt.Errorf("failed to acknowledge post: %w", err)
	default:
		cache.Delete(ctx, s.redis, statsKey(postID), pin.BoardCacheKey)
	}

	return &domain.AcknowledgmentState{PostID: postID, UserID: userID, Acknowledged: true}, nil
}

func (s *service) HasAcknowledged(ctx context.Context, postID, userID uuid.UUID) (*domain.AcknowledgmentState, error) {
	exists, err := s.ackRepo.Exists(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check acknowledgment: %w", err)
	}
	return &domain.AcknowledgmentState{PostID: postID, UserID: userID, Acknowledged: exists}, nil
}

func (s *service) Stats(ctx context.Context, postID uuid.UUID) (*domain.AcknowledgmentStats, error) {
	key := statsKey(postID)

	var stats domain.AcknowledgmentStats
	if cache.GetJSON(ctx, s.redis, key, &stats) {
		return &stats, nil
	}

	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	acknowledgers, err := s.ackRepo.ListAcknowledgers(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list acknowledgers: %w", err)
	}
	for i := range acknowledgers {
		acknowledgers[i].AvatarURL = s.avatars.AvatarURL(ctx, acknowledgers[i].AvatarURL)
	}

	stats = domain.AcknowledgmentStats{
		PostID:        postID,
		Count:         int64(len(acknowledgers)),
		Acknowledgers: acknowledgers,
	}
	cache.SetJSON(ctx, s.redis, key, stats, s.cacheTTL)
	return &stats, nil
}
