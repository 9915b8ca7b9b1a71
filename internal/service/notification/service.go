package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/config"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/pkg/cache"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/pkg/i18n"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
)

const messagePreviewLen = 50

type Service interface {
	NotifyReaction(ctx context.Context, postID, actorID uuid.UUID) error
	NotifyComment(ctx context.Context, postID, commentID, actorID uuid.UUID) error
	NotifyReply(ctx context.Context, postID, parentCommentID, actorID uuid.UUID) error
	NotifyMentions(ctx context.Context, postID, authorID uuid.UUID, mentioned []uuid.UUID) error
	NotifyRSVP(ctx context.Context, eventID, actorID uuid.UUID) error
	NotifyProjectInterest(ctx context.Context, projectID, actorID uuid.UUID) error
	NotifyCollaborationRequest(ctx context.Context, req domain.CollaborationRequest) error
	NotifyInvitationSent(ctx context.Context, inv *domain.CollaborationInvitation, inviterOrgName, resourceTitle string) error
	NotifyInvitationResponse(ctx context.Context, inv *domain.CollaborationInvitation, responderID uuid.UUID) error

	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Directory is the slice of the directory service the fan-out needs.
type Directory interface {
	DisplayName(ctx context.Context, userID uuid.UUID) string
	OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error)
	OrgContact(ctx context.Context, orgID uuid.UUID) (*uuid.UUID, error)
}

type service struct {
	notifRepo   repository.NotificationRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	eventRepo   repository.EventRepository
	projectRepo repository.ProjectRepository
	directory   Directory
	redis       *redis.Client
	locale      string
	cacheTTL    time.Duration
}

func NewService(
	notifRepo repository.NotificationRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	eventRepo repository.EventRepository,
	projectRepo repository.ProjectRepository,
	directory Directory,
	redis *redis.Client,
	cfg *config.Config,
) Service {
	return &service{
		notifRepo:   notifRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		projectRepo: projectRepo,
		directory:   directory,
		redis:       redis,
		locale:      cfg.Locale,
		cacheTTL:    cfg.CacheTTL,
	}
}

func unreadKey(userID uuid.UUID) string {
	return fmt.Sprintf("notifications:unread:%s", userID)
}

func (s *service) title(kind string, vars map[string]string) string {
	return i18n.Render(s.locale, kind, vars)
}

func newNotification(recipientID, actorID uuid.UUID, kind domain.NotificationType, title string, ref domain.ReferenceType, refID uuid.UUID, actionData map[string]any) domain.Notification {
	notif := domain.Notification{
		ID:            uuid.New(),
		UserID:        recipientID,
		ActorID:       &actorID,
		Type:          kind,
		Title:         title,
		ReferenceType: ref,
		ReferenceID:   refID,
		Link:          domain.LinkTo(ref, refID),
	}
	if actionData != nil {
		data, _ := json.Marshal(actionData)
		notif.ActionData = json.RawMessage(data)
	}
	return notif
}

func (s *service) create(ctx context.Context, notif domain.Notification) error {
	if err := s.notifRepo.Create(ctx, &notif); err != nil {
		return fmt.Errorf("failed to create %s notification: %w", notif.Type, err)
	}
	cache.Delete(ctx, s.redis, unreadKey(notif.UserID))
	slog.DebugContext(ctx, "notification created", "type", notif.Type, "recipient", notif.UserID, "reference_id", notif.ReferenceID)
	return nil
}

// notifyOwner writes one actor-titled notification to recipientID unless the
// actor is the recipient.
func (s *service) notifyOwner(ctx context.Context, kind domain.NotificationType, recipientID, actorID uuid.UUID, ref domain.ReferenceType, refID uuid.UUID, actionData map[string]any) error {
	if recipientID == actorID {
		slog.DebugContext(ctx, "skipping self notification", "type", kind, "user_id", actorID)
		return nil
	}

	title := s.title(string(kind), map[string]string{"actor": s.directory.DisplayName(ctx, actorID)})
	return s.create(ctx, newNotification(recipientID, actorID, kind, title, ref, refID, actionData))
}

func (s *service) postAuthor(ctx context.Context, postID uuid.UUID) (uuid.UUID, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return uuid.Nil, domain.ErrPostNotFound
	}
	return post.AuthorID, nil
}

func (s *service) NotifyReaction(ctx context.Context, postID, actorID uuid.UUID) error {
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return err
	}
	return s.notifyOwner(ctx, domain.NotifReaction, authorID, actorID, domain.RefPost, postID, nil)
}

func (s *service) NotifyComment(ctx context.Context, postID, commentID, actorID uuid.UUID) error {
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return err
	}
	return s.notifyOwner(ctx, domain.NotifComment, authorID, actorID, domain.RefPost, postID,
		map[string]any{"comment_id": commentID.String()})
}

func (s *service) NotifyReply(ctx context.Context, postID, parentCommentID, actorID uuid.UUID) error {
	parent, err := s.commentRepo.GetByID(ctx, parentCommentID)
	if err != nil {
		return fmt.Errorf("failed to get parent comment: %w", err)
	}
	if parent == nil {
		return domain.ErrCommentNotFound
	}
	return s.notifyOwner(ctx, domain.NotifReply, parent.AuthorID, actorID, domain.RefPost, postID,
		map[string]any{"parent_comment_id": parentCommentID.String()})
}

// NotifyMentions writes one notification per distinct mentioned user other than the
// author, in a single batch.
func (s *service) NotifyMentions(ctx context.Context, postID, authorID uuid.UUID, mentioned []uuid.UUID) error {
	recipients := make([]uuid.UUID, 0, len(mentioned))
	seen := make(map[uuid.UUID]struct{}, len(mentioned))
	for _, id := range mentioned {
		if id == authorID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	if len(recipients) == 0 {
		slog.DebugContext(ctx, "no mention recipients", "post_id", postID)
		return nil
	}

	title := s.title(string(domain.NotifMention), map[string]string{"actor": s.directory.DisplayName(ctx, authorID)})
	notifs := make([]domain.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notifs = append(notifs, newNotification(userID, authorID, domain.NotifMention, title, domain.RefPost, postID, nil))
	}

	if err := s.notifRepo.CreateBatch(ctx, notifs); err != nil {
		return fmt.Errorf("failed to create mention notifications: %w", err)
	}

	keys := make([]string, 0, len(recipients))
	for _, userID := range recipients {
		keys = append(keys, unreadKey(userID))
	}
	cache.Delete(ctx, s.redis, keys...)

	slog.InfoContext(ctx, "mention notifications created", "post_id", postID, "count", len(notifs))
	return nil
}

func (s *service) NotifyRSVP(ctx context.Context, eventID, actorID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return domain.ErrResourceNotFound
	}
	return s.notifyOwner(ctx, domain.NotifRSVP, event.OrganizerID, actorID, domain.RefEvent, eventID, nil)
}

func (s *service) NotifyProjectInterest(ctx context.Context, projectID, actorID uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return domain.ErrResourceNotFound
	}
	return s.notifyOwner(ctx, domain.NotifProjectInterest, project.AuthorID, actorID, domain.RefProject, projectID, nil)
}

// NotifyCollaborationRequest is never de-duplicated; every expression of interest is relayed.
func (s *service) NotifyCollaborationRequest(ctx context.Context, req domain.CollaborationRequest) error {
	var title string
	if req.Message != nil && *req.Message != "" {
		title = s.title("collaboration_request_message", map[string]string{
			"org":     req.OrgName,
			"message": preview(*req.Message, messagePreviewLen),
		})
	} else {
		title = s.title(string(domain.NotifCollaborationRequest), map[string]string{
			"org":  req.OrgName,
			"kind": string(req.ResourceType),
		})
	}

	actionData := map[string]any{
		"interested_org_id":   req.OrgID.String(),
		"interested_org_name": req.OrgName,
		"interested_user_id":  req.UserID.String(),
		"message":             req.Message,
	}

	notif := newNotification(req.OwnerID, req.UserID, domain.NotifCollaborationRequest, title,
		req.ResourceType.ReferenceType(), req.ResourceID, actionData)
	return s.create(ctx, notif)
}

// NotifyInvitationSent notifies the invitee organization's admin, or any member when
// it has no admin. An organization without members is skipped.
func (s *service) NotifyInvitationSent(ctx context.Context, inv *domain.CollaborationInvitation, inviterOrgName, resourceTitle string) error {
	recipientID, err := s.directory.OrgContact(ctx, inv.InviteeOrgID)
	if err != nil {
		return fmt.Errorf("failed to find contact for org %s: %w", inv.InviteeOrgID, err)
	}
	if recipientID == nil {
		slog.WarnContext(ctx, "invitee organization has no members", "org_id", inv.InviteeOrgID, "invitation_id", inv.ID)
		return nil
	}

	if inviterOrgName == "" {
		inviterOrgName = domain.OrgFallbackName
	}
	if resourceTitle == "" {
		resourceTitle = "this " + string(inv.ResourceType)
	}

	title := s.title(string(domain.NotifCollaborationInvitation), map[string]string{
		"org":   inviterOrgName,
		"title": resourceTitle,
	})
	notif := newNotification(*recipientID, inv.InviterUserID, domain.NotifCollaborationInvitation, title,
		inv.ResourceType.ReferenceType(), inv.ResourceID, map[string]any{"invitation_id": inv.ID.String()})
	return s.create(ctx, notif)
}

func (s *service) NotifyInvitationResponse(ctx context.Context, inv *domain.CollaborationInvitation, responderID uuid.UUID) error {
	var kind domain.NotificationType
	switch inv.Status {
	case domain.InvitationAccepted:
		kind = domain.NotifInvitationAccepted
	case domain.InvitationDeclined:
		kind = domain.NotifInvitationDeclined
	default:
		return domain.ErrInvalidStatus
	}

	orgName, err := s.directory.OrganizationName(ctx, inv.InviteeOrgID)
	if err != nil {
		slog.WarnContext(ctx, "responding organization lookup failed", "org_id", inv.InviteeOrgID, "error", err)
		orgName = domain.OrgFallbackName
	}

	title := s.title(string(kind), map[string]string{"org": orgName})
	notif := newNotification(inv.InviterUserID, responderID, kind, title,
		inv.ResourceType.ReferenceType(), inv.ResourceID, map[string]any{"invitation_id": inv.ID.String()})
	return s.create(ctx, notif)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	params.Validate()

	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := unreadKey(userID)

	var count int64
	if cache.GetJSON(ctx, s.redis, key, &count) {
		return count, nil
	}

	count, err := s.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	cache.SetJSON(ctx, s.redis, key, count, s.cacheTTL)
	return count, nil
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.notifRepo.MarkAsRead(ctx, id, userID); err != nil {
		return err
	}
	cache.Delete(ctx, s.redis, unreadKey(userID))
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notifRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	cache.Delete(ctx, s.redis, unreadKey(userID))
	return updated, nil
}

// preview cuts message to limit runes, marking the cut with an ellipsis.
func preview(message string, limit int) string {
	runes := []rune(message)
	if len(runes) <= limit {
		return message
	}
	return string(runes[:limit]) + "..."
}
