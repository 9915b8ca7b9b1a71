package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type AcknowledgmentRepository interface {
	// Create returns domain.ErrDuplicateKey when the user already acknowledged the post.
	Create(ctx context.Context, ack *domain.Acknowledgment) error
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	ListAcknowledgers(ctx context.Context, postID uuid.UUID) ([]domain.Acknowledger, error)
}

type acknowledgmentRepository struct {
	db *sqlx.DB
}

func NewAcknowledgmentRepository(db *sqlx.DB) AcknowledgmentRepository {
	return &acknowledgmentRepository{db: db}
}

func (r *acknowledgmentRepository) Create(ctx context.Context, ack *domain.Acknowledgment) error {
	query := `
		INSERT INTO post_acknowledgments (post_id, user_id)
		VALUES ($1, $2)
		RETURNING acknowledged_at`

	err := r.db.QueryRowxContext(ctx, query, ack.PostID, ack.UserID).Scan(&ack.AcknowledgedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateKey
	}
	return err
}

func (r *acknowledgmentRepository) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM post_acknowledgments WHERE post_id = $1 AND user_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, postID, userID)
	return exists, err
}

func (r *acknowledgmentRepository) ListAcknowledgers(ctx context.Context, postID uuid.UUID) ([]domain.Acknowledger, error) {
	query := `
		SELECT pa.user_id, pa.acknowledged_at, up.full_name, up.avatar_url
		FROM post_acknowledgments pa
		INNER JOIN user_profiles up ON up.user_id = pa.user_id
		WHERE pa.post_id = $1
		ORDER BY pa.acknowledged_at DESC`

	acknowledgers := []domain.Acknowledger{}
	if err := r.db.SelectContext(ctx, &acknowledgers, query, postID); err != nil {
		return nil, err
	}
	return acknowledgers, nil
}
