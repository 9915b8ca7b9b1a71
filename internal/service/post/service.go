package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/mention"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, author *domain.Profile, input domain.CreatePostInput) (*domain.CreatePostResult, error)
	ListMentions(ctx context.Context, postID uuid.UUID) ([]domain.PostMention, error)
	MentionsOf(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.MentionedPost], error)
}

type MentionResolver interface {
	Resolve(ctx context.Context, names []string) ([]domain.ResolvedMention, error)
}

type AvatarResolver interface {
	AvatarURL(ctx context.Context, stored *string) *string
}

type service struct {
	postRepo repository.PostRepository
	resolver MentionResolver
	avatars  AvatarResolver
	notifSvc notification.Service
}

func NewService(postRepo repository.PostRepository, resolver MentionResolver, avatars AvatarResolver, notifSvc notification.Service) Service {
	return &service{
		postRepo: postRepo,
		resolver: resolver,
		avatars:  avatars,
		notifSvc: notifSvc,
	}
}

// Create stores the post, then records and notifies its mentions. Only the post
// insert can fail the call; mention steps are reported in the result's enrichment.
func (s *service) Create(ctx context.Context, author *domain.Profile, input domain.CreatePostInput) (*domain.CreatePostResult, error) {
	category := input.Category
	if category == "" {
		category = domain.CategoryGeneral
	}

	post := &domain.Post{
		ID:       uuid.New(),
		AuthorID: author.UserID,
		OrgID:    author.OrganizationID,
		Content:  input.Content,
		Category: category,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	result := &domain.CreatePostResult{Post: post, Mentions: []domain.ResolvedMention{}}

	userIDs := uniqueIDs(input.MentionedUserIDs)
	if len(userIDs) > 0 {
		for _, id := range userIDs {
			result.Mentions = append(result.Mentions, domain.ResolvedMention{UserID: id})
		}
	} else if names := mention.Extract(input.Content); len(names) > 0 {
		resolved, err := s.resolver.Resolve(ctx, names)
		if err != nil {
			slog.WarnContext(ctx, "mention resolution failed", "post_id", post.ID, "error", err)
			result.Enrichment.Fail("resolve_mentions", err)
		}
		for _, m := range resolved {
			userIDs = append(userIDs, m.UserID)
		}
		result.Mentions = append(result.Mentions, resolved...)
	}

	if len(userIDs) == 0 {
		return result, nil
	}

	if err := s.postRepo.CreateMentions(ctx, post.ID, userIDs); err != nil {
		slog.WarnContext(ctx, "saving mentions failed", "post_id", post.ID, "error", err)
		result.Enrichment.Fail("save_mentions", err)
		return result, nil
	}

	if err := s.notifSvc.NotifyMentions(ctx, post.ID, author.UserID, userIDs); err != nil {
		slog.WarnContext(ctx, "mention notifications failed", "post_id", post.ID, "error", err)
		result.Enrichment.Fail("notify_mentions", err)
	}

	return result, nil
}

func (s *service) ListMentions(ctx context.Context, postID uuid.UUID) ([]domain.PostMention, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	mentions, err := s.postRepo.ListMentions(ctx, postID)
	if err != nil {
		return nil, err
	}
	for i := range mentions {
		mentions[i].AvatarURL = s.avatars.AvatarURL(ctx, mentions[i].AvatarURL)
	}
	return mentions, nil
}

func (s *service) MentionsOf(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.MentionedPost], error) {
	params.Validate()

	posts, total, err := s.postRepo.ListByMentionedUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.MentionedPost]{}, fmt.Errorf("failed to list mentions: %w", err)
	}
	for i := range posts {
		posts[i].AuthorAvatarURL = s.avatars.AvatarURL(ctx, posts[i].AuthorAvatarURL)
	}
	return domain.NewPaginatedResponse(posts, params.Page, params.PageSize, total), nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
