package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type CollaborationRepository interface {
	GetResource(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (*domain.Resource, error)
	CreateInvitations(ctx context.Context, invitations []domain.CollaborationInvitation) ([]domain.CollaborationInvitation, error)
	GetInvitation(ctx context.Context, id uuid.UUID) (*domain.CollaborationInvitation, error)
	Respond(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, responderID uuid.UUID) (*domain.CollaborationInvitation, error)
	ListPending(ctx context.Context, inviteeOrgID uuid.UUID) ([]domain.CollaborationInvitation, error)
	ListCollaborators(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) ([]domain.Collaborator, error)
}

type collaborationRepository struct {
	db *sqlx.DB
}

func NewCollaborationRepository(db *sqlx.DB) CollaborationRepository {
	return &collaborationRepository{db: db}
}

var resourceQueries = map[domain.ResourceKind]string{
	domain.ResourceEvent: `
		SELECT 'event' AS kind, id, organizer_id AS owner_id, org_id, title
		FROM events WHERE id = $1 AND deleted_at IS NULL`,
	domain.ResourceProject: `
		SELECT 'project' AS kind, id, author_id AS owner_id, org_id, title
		FROM projects WHERE id = $1 AND deleted_at IS NULL`,
}

func getResource(ctx context.Context, q sqlx.QueryerContext, kind domain.ResourceKind, id uuid.UUID) (*domain.Resource, error) {
	query, ok := resourceQueries[kind]
	if !ok {
		return nil, domain.ErrInvalidResourceKind
	}

	var res domain.Resource
	err := sqlx.GetContext(ctx, q, &res, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *collaborationRepository) GetResource(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (*domain.Resource, error) {
	return getResource(ctx, r.db, kind, id)
}

// CreateInvitations inserts the batch in one transaction. Rows that would give an
// organization a second pending invitation for the same resource are skipped, so
// the returned slice holds only the invitations actually created.
func (r *collaborationRepository) CreateInvitations(ctx context.Context, invitations []domain.CollaborationInvitation) ([]domain.CollaborationInvitation, error) {
	created := []domain.CollaborationInvitation{}
	if len(invitations) == 0 {
		return created, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO collaboration_invitations
			(id, resource_type, resource_id, inviter_org_id, inviter_user_id, invitee_org_id, status, message)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7)
		ON CONFLICT (resource_type, resource_id, invitee_org_id) WHERE status = 'pending' DO NOTHING
		RETURNING status, created_at, updated_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, inv := range invitations {
		err := stmt.QueryRowxContext(ctx,
			inv.ID, inv.ResourceType, inv.ResourceID, inv.InviterOrgID, inv.InviterUserID, inv.InviteeOrgID, inv.Message,
		).Scan(&inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to insert invitation for org %s: %w", inv.InviteeOrgID, err)
		}
		created = append(created, inv)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit invitations: %w", err)
	}
	return created, nil
}

func (r *collaborationRepository) GetInvitation(ctx context.Context, id uuid.UUID) (*domain.CollaborationInvitation, error) {
	var inv domain.CollaborationInvitation
	query := `SELECT * FROM collaboration_invitations WHERE id = $1`

	err := r.db.GetContext(ctx, &inv, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Respond moves a pending invitation to status. Accepting also adds the invitee
// organization to the resource's collaborators; when the resource is gone the
// whole transaction is rolled back.
func (r *collaborationRepository) Respond(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, responderID uuid.UUID) (*domain.CollaborationInvitation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var inv domain.CollaborationInvitation
	query := `
		UPDATE collaboration_invitations
		SET status = $2, responded_by = $3, responded_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING *`

	err = tx.GetContext(ctx, &inv, query, id, status, responderID)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM collaboration_invitations WHERE id = $1)`, id); err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, domain.ErrInvitationNotPending
	}
	if err != nil {
		return nil, err
	}

	if status == domain.InvitationAccepted {
		res, err := getResource(ctx, tx, inv.ResourceType, inv.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load resource: %w", err)
		}
		if res == nil {
			return nil, domain.ErrResourceNotFound
		}

		insert := `
			INSERT INTO resource_collaborators (resource_type, resource_id, org_id, invitation_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (resource_type, resource_id, org_id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, insert, inv.ResourceType, inv.ResourceID, inv.InviteeOrgID, inv.ID); err != nil {
			return nil, fmt.Errorf("failed to add collaborator: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit response: %w", err)
	}
	return &inv, nil
}

type invitationRow struct {
	domain.CollaborationInvitation
	InviterOrgName    string  `db:"inviter_org_name"`
	InviterOrgLogoURL *string `db:"inviter_org_logo_url"`
}

func (r *collaborationRepository) ListPending(ctx context.Context, inviteeOrgID uuid.UUID) ([]domain.CollaborationInvitation, error) {
	query := `
		SELECT ci.*, o.name AS inviter_org_name, o.logo_url AS inviter_org_logo_url
		FROM collaboration_invitations ci
		INNER JOIN organizations o ON o.id = ci.inviter_org_id
		WHERE ci.invitee_org_id = $1 AND ci.status = 'pending'
		ORDER BY ci.created_at DESC`

	var rows []invitationRow
	if err := r.db.SelectContext(ctx, &rows, query, inviteeOrgID); err != nil {
		return nil, err
	}

	invitations := make([]domain.CollaborationInvitation, 0, len(rows))
	for _, row := range rows {
		inv := row.CollaborationInvitation
		inv.InviterOrg = &domain.Organization{
			ID:      inv.InviterOrgID,
			Name:    row.InviterOrgName,
			LogoURL: row.InviterOrgLogoURL,
		}
		invitations = append(invitations, inv)
	}
	return invitations, nil
}

func (r *collaborationRepository) ListCollaborators(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) ([]domain.Collaborator, error) {
	query := `
		SELECT rc.resource_type, rc.resource_id, rc.org_id, rc.invitation_id, rc.added_at, o.name AS org_name
		FROM resource_collaborators rc
		INNER JOIN organizations o ON o.id = rc.org_id
		WHERE rc.resource_type = $1 AND rc.resource_id = $2
		ORDER BY rc.added_at ASC`

	collaborators := []domain.Collaborator{}
	if err := r.db.SelectContext(ctx, &collaborators, query, kind, id); err != nil {
		return nil, err
	}
	return collaborators, nil
}
