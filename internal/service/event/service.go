package event

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
	Create(ctx context.Context, organizer *domain.Profile, input domain.CreateEventInput, meta *domain.RequestMeta) (*domain.CreateResourceResult[domain.Event], error)
	ToggleRSVP(ctx context.Context, eventID, userID uuid.UUID) (*domain.ToggleResult, error)
}

type service struct {
	eventRepo repository.EventRepository
	collabSvc collaboration.Service
	notifSvc  notification.Service
}

func NewService(eventRepo repository.EventRepository, collabSvc collaboration.Service, notifSvc notification.Service) Service {
	return &service{
		eventRepo: eventRepo,
		collabSvc: collabSvc,
		notifSvc:  notifSvc,
	}
}

func (s *service) Create(ctx context.Context, organizer *domain.Profile, input domain.CreateEventInput, meta *domain.RequestMeta) (*domain.CreateResourceResult[domain.Event], error) {
	event := &domain.Event{
		ID:          uuid.New(),
		OrganizerID: organizer.UserID,
		OrgID:       organizer.OrganizationID,
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		Location:    input.Location,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	result := &domain.CreateResourceResult[domain.Event]{Resource: event}
	if len(input.InviteeOrgIDs) == 0 {
		return result, nil
	}

	if organizer.OrganizationID == nil {
		result.Enrichment.Fail("invite_collaborators", errors.New("organizer has no organization"))
		return result, nil
	}

	invited, err := s.collabSvc.CreateInvitations(ctx, organizer, domain.CreateInvitationsInput{
		ResourceType:  domain.ResourceEvent,
		ResourceID:    event.ID,
		InviterOrgID:  *organizer.OrganizationID,
		InviteeOrgIDs: input.InviteeOrgIDs,
		Message:       input.InviteMessage,
	}, meta)
	if err != nil {
		slog.WarnContext(ctx, "event invitations failed", "event_id", event.ID, "error", err)
		result.Enrichment.Fail("invite_collaborators", err)
		return result, nil
	}

	result.Invitations = invited.Invitations
	result.Enrichment.Failures = append(result.Enrichment.Failures, invited.Enrichment.Failures...)
	return result, nil
}

// ToggleRSVP marks or clears attendance. Only a new RSVP notifies the organizer.
func (s *service) ToggleRSVP(ctx context.Context, eventID, userID uuid.UUID) (*domain.ToggleResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, domain.ErrResourceNotFound
	}

	attending, err := s.eventRepo.ToggleRSVP(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle rsvp: %w", err)
	}

	result := &domain.ToggleResult{Active: attending}
	if attending {
		if err := s.notifSvc.NotifyRSVP(ctx, eventID, userID); err != nil {
			slog.WarnContext(ctx, "rsvp notification failed", "event_id", eventID, "error", err)
			result.Enrichment.Fail("notify", err)
		}
	}
	return result, nil
}
