package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	FindByFullNames(ctx context.Context, names []string) ([]domain.Profile, error)
	GetOrgContactUserID(ctx context.Context, orgID uuid.UUID) (*uuid.UUID, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM user_profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByFullNames matches display names case-insensitively. Every profile carrying
// one of the names is returned, so callers can detect ambiguous names.
func (r *profileRepository) FindByFullNames(ctx context.Context, names []string) ([]domain.Profile, error) {
	if len(names) == 0 {
		return []domain.Profile{}, nil
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	query := `
		SELECT * FROM user_profiles
		WHERE LOWER(full_name) = ANY($1)
		ORDER BY full_name, user_id`

	var profiles []domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, pq.Array(lowered)); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetOrgContactUserID returns the organization's admin, falling back to its
// longest-standing member. Nil when the organization has no members.
func (r *profileRepository) GetOrgContactUserID(ctx context.Context, orgID uuid.UUID) (*uuid.UUID, error) {
	var userID uuid.UUID
	query := `
		SELECT user_id FROM user_profiles
		WHERE organization_id = $1
		ORDER BY (role = 'admin') DESC, created_at ASC
		LIMIT 1`

	err := r.db.GetContext(ctx, &userID, query, orgID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userID, nil
}
