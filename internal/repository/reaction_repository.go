package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ReactionRepository interface {
	// Toggle flips the caller's like on a post and reports whether it is now set.
	Toggle(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Toggle(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return toggleRow(ctx, r.db, "post_reactions", "post_id", postID, userID)
}
