package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/collaboration"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, author *domain.Profile, input domain.CreateProjectInput, meta *domain.RequestMeta) (*domain.CreateResourceResult[domain.Project], error)
	ToggleInterest(ctx context.Context, projectID, userID uuid.UUID) (*domain.ToggleResult, error)
}

type service struct {
	projectRepo repository.ProjectRepository
	collabSvc   collaboration.Service
	notifSvc    notification.Service
}

func NewService(projectRepo repository.ProjectRepository, collabSvc collaboration.Service, notifSvc notification.Service) Service {
	return &service{
		projectRepo: projectRepo,
		collabSvc:   collabSvc,
		notifSvc:    notifSvc,
	}
}

func (s *service) Create(ctx context.Context, author *domain.Profile, input domain.CreateProjectInput, meta *domain.RequestMeta) (*domain.CreateResourceResult[domain.Project], error) {
	project := &domain.Project{
		ID:          uuid.New(),
		AuthorID:    author.UserID,
		OrgID:       author.OrganizationID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	result := &domain.CreateResourceResult[domain.Project]{Resource: project}
	if len(input.InviteeOrgIDs) == 0 {
		return result, nil
	}

	if author.OrganizationID == nil {
		result.Enrichment.Fail("invite_collaborators", errors.New("author has no organization"))
		return result, nil
	}

	invited, err := s.collabSvc.CreateInvitations(ctx, author, domain.CreateInvitationsInput{
		ResourceType:  domain.ResourceProject,
		ResourceID:    project.ID,
		InviterOrgID:  *author.OrganizationID,
		InviteeOrgIDs: input.InviteeOrgIDs,
		Message:       input.InviteMessage,
	}, meta)
	if err != nil {
		slog.WarnContext(ctx, "project invitations failed", "project_id", project.ID, "error", err)
		result.Enrichment.Fail("invite_collaborators", err)
		return result, nil
	}

	result.Invitations = invited.Invitations
	result.Enrichment.Failures = append(result.Enrichment.Failures, invited.Enrichment.Failures...)
	return result, nil
}

// ToggleInterest registers or withdraws interest. Only new interest notifies the owner.
func (s *service) ToggleInterest(ctx context.Context, projectID, userID uuid.UUID) (*domain.ToggleResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrResourceNotFound
	}

	interested, err := s.projectRepo.ToggleInterest(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle interest: %w", err)
	}

	result := &domain.ToggleResult{Active: interested}
	if interested {
		if err := s.notifSvc.NotifyProjectInterest(ctx, projectID, userID); err != nil {
			slog.WarnContext(ctx, "project interest notification failed", "project_id", projectID, "error", err)
			result.Enrichment.Fail("notify", err)
		}
	}
	return result, nil
}
