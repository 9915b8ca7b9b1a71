package collaboration

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
	CreateInvitations(ctx context.Context, caller *domain.Profile, input domain.CreateInvitationsInput, meta *domain.RequestMeta) (*domain.CreateInvitationsResult, error)
	RespondToInvitation(ctx context.Context, caller *domain.Profile, invitationID uuid.UUID, status domain.InvitationStatus, meta *domain.RequestMeta) (*domain.RespondInvitationResult, error)
	ListPending(ctx context.Context, orgID uuid.UUID) ([]domain.CollaborationInvitation, error)
	ListCollaborators(ctx context.Context, kind domain.ResourceKind, resourceID uuid.UUID) ([]domain.Collaborator, error)
	ExpressInterest(ctx context.Context, caller *domain.Profile, input domain.ExpressInterestInput) error
}

type OrganizationNamer interface {
	OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error)
}

type service struct {
	collabRepo repository.CollaborationRepository
	auditRepo  repository.AuditLogRepository
	orgs       OrganizationNamer
	notifSvc   notification.Service
}

func NewService(collabRepo repository.CollaborationRepository, auditRepo repository.AuditLogRepository, orgs OrganizationNamer, notifSvc notification.Service) Service {
	return &service{
		collabRepo: collabRepo,
		auditRepo:  auditRepo,
		orgs:       orgs,
		notifSvc:   notifSvc,
	}
}

// actsFor reports whether caller may speak for orgID. Admins act for every organization.
func actsFor(caller *domain.Profile, orgID uuid.UUID) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.OrganizationID != nil && *caller.OrganizationID == orgID
}

func (s *service) resource(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (*domain.Resource, error) {
	if !kind.IsValid() {
		return nil, domain.ErrInvalidResourceKind
	}
	res, err := s.collabRepo.GetResource(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if res == nil {
		return nil, domain.ErrResourceNotFound
	}
	return res, nil
}

// inviteeSet drops repeated ids and the inviting organization itself.
func inviteeSet(inviterOrgID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || id == inviterOrgID {
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

// CreateInvitations creates one pending invitation per invitee organization and
// notifies each invitee's contact. Organizations that already hold a pending
// invitation for the resource are skipped. Notification and audit failures are
// reported in the result's enrichment.
func (s *service) CreateInvitations(ctx context.Context, caller *domain.Profile, input domain.CreateInvitationsInput, meta *domain.RequestMeta) (*domain.CreateInvitationsResult, error) {
	if input.InviterOrgID == uuid.Nil && caller.OrganizationID != nil {
		input.InviterOrgID = *caller.OrganizationID
	}
	if input.InviterOrgID == uuid.Nil {
		return nil, domain.ErrForbidden
	}
	if !actsFor(caller, input.InviterOrgID) {
		return nil, domain.ErrForbidden
	}
	input.InviterUserID = caller.UserID

	res, err := s.resource(ctx, input.ResourceType, input.ResourceID)
	if err != nil {
		return nil, err
	}

	invitees := inviteeSet(input.InviterOrgID, input.InviteeOrgIDs)
	if len(invitees) == 0 {
		return nil, domain.ErrNoInvitees
	}

	invitations := make([]domain.CollaborationInvitation, 0, len(invitees))
	for _, orgID := range invitees {
		invitations = append(invitations, domain.CollaborationInvitation{
			ID:            uuid.New(),
			ResourceType:  input.ResourceType,
			ResourceID:    input.ResourceID,
			InviterOrgID:  input.InviterOrgID,
			InviterUserID: input.InviterUserID,
			InviteeOrgID:  orgID,
			Status:        domain.InvitationPending,
			Message:       input.Message,
		})
	}

	created, err := s.collabRepo.CreateInvitations(ctx, invitations)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitations: %w", err)
	}

	result := &domain.CreateInvitationsResult{Invitations: created}
	if len(created) < len(invitations) {
		slog.InfoContext(ctx, "skipped invitees with a pending invitation",
			"resource_type", input.ResourceType, "resource_id", input.ResourceID, "skipped", len(invitations)-len(created))
	}
	if len(created) == 0 {
		return result, nil
	}

	inviterOrgName, err := s.orgs.OrganizationName(ctx, input.InviterOrgID)
	if err != nil {
		slog.WarnContext(ctx, "inviter organization lookup failed", "org_id", input.InviterOrgID, "error", err)
		inviterOrgName = domain.OrgFallbackName
	}

	for i := range created {
		inv := &created[i]
		if err := s.notifSvc.NotifyInvitationSent(ctx, inv, inviterOrgName, res.Title); err != nil {
			slog.WarnContext(ctx, "invitation notification failed", "invitation_id", inv.ID, "org_id", inv.InviteeOrgID, "error", err)
			result.Enrichment.Fail("notify_invitee", err)
		}
	}

	inviteeIDs := make([]uuid.UUID, 0, len(created))
	for _, inv := range created {
		inviteeIDs = append(inviteeIDs, inv.InviteeOrgID)
	}
	auditInput := meta.AuditInput(caller.UserID, domain.AuditInviteCollaborator, string(input.ResourceType), input.ResourceID,
		nil, map[string]any{"invitee_org_ids": inviteeIDs, "inviter_org_id": input.InviterOrgID})
	if err := repository.CreateAuditLog(s.auditRepo, ctx, auditInput); err != nil {
		slog.WarnContext(ctx, "audit log failed", "action", domain.AuditInviteCollaborator, "error", err)
		result.Enrichment.Fail("audit", err)
	}

	slog.InfoContext(ctx, "collaboration invitations created",
		"resource_type", input.ResourceType, "resource_id", input.ResourceID, "count", len(created))
	return result, nil
}

// RespondToInvitation resolves a pending invitation. Resolved invitations are
// terminal: answering again fails with domain.ErrInvitationNotPending.
func (s *service) RespondToInvitation(ctx context.Context, caller *domain.Profile, invitationID uuid.UUID, status domain.InvitationStatus, meta *domain.RequestMeta) (*domain.RespondInvitationResult, error) {
	if !status.IsResponse() {
		return nil, domain.ErrInvalidStatus
	}

	inv, err := s.collabRepo.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvitationNotFound
	}
	if !actsFor(caller, inv.InviteeOrgID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.collabRepo.Respond(ctx, invitationID, status, caller.UserID)
	if err != nil {
		return nil, err
	}

	result := &domain.RespondInvitationResult{Invitation: updated}

	if err := s.notifSvc.NotifyInvitationResponse(ctx, updated, caller.UserID); err != nil {
		slog.WarnContext(ctx, "invitation response notification failed", "invitation_id", updated.ID, "error", err)
		result.Enrichment.Fail("notify_inviter", err)
	}

	auditInput := meta.AuditInput(caller.UserID, domain.AuditRespondInvitation, "collaboration_invitation", updated.ID,
		map[string]any{"status": domain.InvitationPending}, map[string]any{"status": updated.Status})
	if err := repository.CreateAuditLog(s.auditRepo, ctx, auditInput); err != nil {
		slog.WarnContext(ctx, "audit log failed", "action", domain.AuditRespondInvitation, "error", err)
		result.Enrichment.Fail("audit", err)
	}

	slog.InfoContext(ctx, "collaboration invitation resolved", "invitation_id", updated.ID, "status", updated.Status)
	return result, nil
}

func (s *service) ListPending(ctx context.Context, orgID uuid.UUID) ([]domain.CollaborationInvitation, error) {
	return s.collabRepo.ListPending(ctx, orgID)
}

func (s *service) ListCollaborators(ctx context.Context, kind domain.ResourceKind, resourceID uuid.UUID) ([]domain.Collaborator, error) {
	if _, err := s.resource(ctx, kind, resourceID); err != nil {
		return nil, err
	}
	return s.collabRepo.ListCollaborators(ctx, kind, resourceID)
}

// ExpressInterest relays a one-way collaboration request to the resource owner.
// The notification is the outcome, so a failed write is returned.
func (s *service) ExpressInterest(ctx context.Context, caller *domain.Profile, input domain.ExpressInterestInput) error {
	if input.OrgID == uuid.Nil && caller.OrganizationID != nil {
		input.OrgID = *caller.OrganizationID
	}
	if input.OrgID == uuid.Nil {
		return domain.ErrOrganizationNotFound
	}
	if !actsFor(caller, input.OrgID) {
		return domain.ErrForbidden
	}

	res, err := s.resource(ctx, input.ResourceType, input.ResourceID)
	if err != nil {
		return err
	}

	orgName, err := s.orgs.OrganizationName(ctx, input.OrgID)
	if err != nil {
		return err
	}

	return s.notifSvc.NotifyCollaborationRequest(ctx, domain.CollaborationRequest{
		ResourceType: input.ResourceType,
		ResourceID:   input.ResourceID,
		OwnerID:      res.OwnerID,
		OrgID:        input.OrgID,
		OrgName:      orgName,
		UserID:       caller.UserID,
		Message:      input.Message,
	})
}
