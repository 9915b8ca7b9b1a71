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

// pinLockKey serializes pin capacity checks across connections.
const pinLockKey int64 = 0x70696e73

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	CreateMentions(ctx context.Context, postID uuid.UUID, userIDs []uuid.UUID) error
	ListMentions(ctx context.Context, postID uuid.UUID) ([]domain.PostMention, error)
	ListByMentionedUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.MentionedPost, int64, error)
	Pin(ctx context.Context, postID, pinnedBy uuid.UUID, limit int) (bool, error)
	Unpin(ctx context.Context, postID uuid.UUID) error
	ListPinned(ctx context.Context) ([]domain.PinnedPost, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, author_id, org_id, content, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		post.ID, post.AuthorID, post.OrgID, post.Content, post.Category,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	query := `SELECT * FROM posts WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateMentions writes every mention row in one statement. Repeated ids collapse
// onto the (post_id, mentioned_user_id) key.
func (r *postRepository) CreateMentions(ctx context.Context, postID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO post_mentions (post_id, mentioned_user_id)
		SELECT DISTINCT $1::uuid, unnest($2::uuid[])
		ON CONFLICT (post_id, mentioned_user_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, postID, uuidArray(userIDs))
	return err
}

func (r *postRepository) ListMentions(ctx context.Context, postID uuid.UUID) ([]domain.PostMention, error) {
	query := `
		SELECT
			pm.post_id, pm.mentioned_user_id, pm.created_at,
			up.full_name, up.avatar_url
		FROM post_mentions pm
		INNER JOIN user_profiles up ON up.user_id = pm.mentioned_user_id
		WHERE pm.post_id = $1
		ORDER BY pm.created_at ASC, up.full_name ASC`

	mentions := []domain.PostMention{}
	if err := r.db.SelectContext(ctx, &mentions, query, postID); err != nil {
		return nil, err
	}
	return mentions, nil
}

// ListByMentionedUser pages through live posts that mention userID, newest mention first.
func (r *postRepository) ListByMentionedUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.MentionedPost, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM post_mentions pm
		INNER JOIN posts p ON p.id = pm.post_id
		WHERE pm.mentioned_user_id = $1 AND p.deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			p.id AS post_id, p.content, p.category, p.author_id, p.created_at AS posted_at,
			pm.created_at AS mentioned_at,
			COALESCE(up.full_name, '') AS author_name, up.avatar_url AS author_avatar_url
		FROM post_mentions pm
		INNER JOIN posts p ON p.id = pm.post_id
		LEFT JOIN user_profiles up ON up.user_id = p.author_id
		WHERE pm.mentioned_user_id = $1 AND p.deleted_at IS NULL
		ORDER BY pm.created_at DESC, p.id
		LIMIT $2 OFFSET $3`

	posts := []domain.MentionedPost{}
	if err := r.db.SelectContext(ctx, &posts, query, userID, params.PageSize, params.Offset()); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Pin marks the post pinned unless the board is full. The capacity check and the
// write share one transaction holding an advisory lock, so concurrent pins cannot
// overshoot the limit. Returns false when the post was already pinned.
func (r *postRepository) Pin(ctx context.Context, postID, pinnedBy uuid.UUID, limit int) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, pinLockKey); err != nil {
		return false, fmt.Errorf("failed to acquire pin lock: %w", err)
	}

	var pinned bool
	err = tx.GetContext(ctx, &pinned, `SELECT is_pinned FROM posts WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrPostNotFound
	}
	if err != nil {
		return false, err
	}
	if pinned {
		return false, nil
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE is_pinned = true AND deleted_at IS NULL`); err != nil {
		return false, err
	}
	if count >= limit {
		return false, domain.ErrPinLimitReached
	}

	query := `
		UPDATE posts
		SET is_pinned = true, pinned_at = NOW(), pinned_by = $2, updated_at = NOW()
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, postID, pinnedBy); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit pin: %w", err)
	}
	return true, nil
}

func (r *postRepository) Unpin(ctx context.Context, postID uuid.UUID) error {
	query := `
		UPDATE posts
		SET is_pinned = false, pinned_at = NULL, pinned_by = NULL, updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)
	return err
}

func (r *postRepository) ListPinned(ctx context.Context) ([]domain.PinnedPost, error) {
	query := `
		SELECT p.*, COUNT(pa.user_id) AS acknowledgment_count
		FROM posts p
		LEFT JOIN post_acknowledgments pa ON pa.post_id = p.id
		WHERE p.is_pinned = true AND p.deleted_at IS NULL
		GROUP BY p.id
		ORDER BY p.pinned_at DESC`

	posts := []domain.PinnedPost{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, err
	}
	return posts, nil
}
