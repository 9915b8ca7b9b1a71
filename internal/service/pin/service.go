package pin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/pkg/cache"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
)

// BoardCacheKey holds the cached pin board. Acknowledgments change its counts, so the
// acknowledgment service invalidates it too.
const BoardCacheKey = "posts:pinned:board"

type Service interface {
	Pin(ctx context.Context, caller *domain.Profile, postID uuid.UUID, meta *domain.RequestMeta) (*domain.PinResult, error)
	Unpin(ctx context.Context, caller *domain.Profile, postID uuid.UUID, meta *domain.RequestMeta) (*domain.PinResult, error)
	Board(ctx context.Context) (*domain.PinBoard, error)
}

type service struct {
	postRepo  repository.PostRepository
	auditRepo repository.AuditLogRepository
	redis     *redis.Client
	cacheTTL  time.Duration
}

func NewService(postRepo repository.PostRepository, auditRepo repository.AuditLogRepository, redis *redis.Client, cacheTTL time.Duration) Service {
	return &service{
		postRepo:  postRepo,
		auditRepo: auditRepo,
		redis:     redis,
		cacheTTL:  cacheTTL,
	}
}

func (s *service) livePost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// Pin adds a post to the board. Pinning an already pinned post succeeds without a
// change; a full board fails with domain.ErrPinLimitReached.
func (s *service) Pin(ctx context.Context, caller *domain.Profile, postID uuid.UUID, meta *domain.RequestMeta) (*domain.PinResult, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	post, err := s.livePost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsPinned {
		return &domain.PinResult{PostID: postID, Pinned: true}, nil
	}

	changed, err := s.postRepo.Pin(ctx, postID, caller.UserID, domain.MaxPinnedPosts)
	if err != nil {
		return nil, err
	}

	if changed {
		cache.Delete(ctx, s.redis, BoardCacheKey)
		s.audit(ctx, meta.AuditInput(caller.UserID, domain.AuditPinPost, "post", postID,
			map[string]any{"is_pinned": false}, map[string]any{"is_pinned": true}))
		slog.InfoContext(ctx, "post pinned", "post_id", postID, "by", caller.UserID)
	}

	return &domain.PinResult{PostID: postID, Pinned: true, Changed: changed}, nil
}

func (s *service) Unpin(ctx context.Context, caller *domain.Profile, postID uuid.UUID, meta *domain.RequestMeta) (*domain.PinResult, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	post, err := s.livePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Unpin(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to unpin post: %w", err)
	}

	cache.Delete(ctx, s.redis, BoardCacheKey)
	s.audit(ctx, meta.AuditInput(caller.UserID, domain.AuditUnpinPost, "post", postID,
		map[string]any{"is_pinned": post.IsPinned}, map[string]any{"is_pinned": false}))
	slog.InfoContext(ctx, "post unpinned", "post_id", postID, "by", caller.UserID)

	return &domain.PinResult{PostID: postID, Pinned: false, Changed: post.IsPinned}, nil
}

func (s *service) Board(ctx context.Context) (*domain.PinBoard, error) {
	var board domain.PinBoard
	if cache.GetJSON(ctx, s.redis, BoardCacheKey, &board) {
		return &board, nil
	}

	posts, err := s.postRepo.ListPinned(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pinned posts: %w", err)
	}

	remaining := domain.MaxPinnedPosts - len(posts)
	if remaining < 0 {
		remaining = 0
	}
	board = domain.PinBoard{
		Limit:     domain.MaxPinnedPosts,
		Remaining: remaining,
		Posts:     posts,
	}

	cache.SetJSON(ctx, s.redis, BoardCacheKey, board, s.cacheTTL)
	return &board, nil
}

func (s *service) audit(ctx context.Context, input domain.CreateAuditLogInput) {
	if err := repository.CreateAuditLog(s.auditRepo, ctx, input); err != nil {
		slog.WarnContext(ctx, "audit log failed", "action", input.Action, "entity_id", input.EntityID, "error", err)
	}
}
