package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPinnedPosts caps how many non-deleted posts may be pinned at once.
const MaxPinnedPosts = 3

type PostCategory string

const (
	CategoryIntros        PostCategory = "intros"
	CategoryWins          PostCategory = "wins"
	CategoryOpportunities PostCategory = "opportunities"
	CategoryQuestions     PostCategory = "questions"
	CategoryLearnings     PostCategory = "learnings"
	CategoryGeneral       PostCategory = "general"
)

type Post struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	AuthorID  uuid.UUID    `json:"author_id" db:"author_id"`
	OrgID     *uuid.UUID   `json:"org_id,omitempty" db:"org_id"`
	Content   string       `json:"content" db:"content"`
	Category  PostCategory `json:"category" db:"category"`
	IsPinned  bool         `json:"is_pinned" db:"is_pinned"`
	PinnedAt  *time.Time   `json:"pinned_at,omitempty" db:"pinned_at"`
	PinnedBy  *uuid.UUID   `json:"pinned_by,omitempty" db:"pinned_by"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time   `json:"-" db:"deleted_at"`
}

type CreatePostInput struct {
	Content          string       `json:"content" validate:"required,min=1,max=5000"`
	Category         PostCategory `json:"category" validate:"omitempty,oneof=intros wins opportunities questions learnings general"`
	MentionedUserIDs []uuid.UUID  `json:"mentioned_user_ids,omitempty"`
}

type PostMention struct {
	PostID          uuid.UUID `json:"post_id" db:"post_id"`
	MentionedUserID uuid.UUID `json:"mentioned_user_id" db:"mentioned_user_id"`
	FullName        string    `json:"full_name" db:"full_name"`
	AvatarURL       *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// MentionedPost is a post as seen from the inbox of someone it mentions.
type MentionedPost struct {
	PostID          uuid.UUID    `json:"post_id" db:"post_id"`
	Content         string       `json:"content" db:"content"`
	Category        PostCategory `json:"category" db:"category"`
	AuthorID        uuid.UUID    `json:"author_id" db:"author_id"`
	AuthorName      string       `json:"author_name" db:"author_name"`
	AuthorAvatarURL *string      `json:"author_avatar_url,omitempty" db:"author_avatar_url"`
	PostedAt        time.Time    `json:"posted_at" db:"posted_at"`
	MentionedAt     time.Time    `json:"mentioned_at" db:"mentioned_at"`
}

// ResolvedMention is a mention name that matched exactly one directory profile.
type ResolvedMention struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

type CreatePostResult struct {
	Post       *Post             `json:"post"`
	Mentions   []ResolvedMention `json:"mentions"`
	Enrichment Enrichment        `json:"enrichment"`
}

type PinnedPost struct {
	Post
	AcknowledgmentCount int64 `json:"acknowledgment_count" db:"acknowledgment_count"`
}

type PinBoard struct {
	Limit     int          `json:"limit"`
	Remaining int          `json:"remaining"`
	Posts     []PinnedPost `json:"posts"`
}

type PinResult struct {
	PostID  uuid.UUID `json:"post_id"`
	Pinned  bool      `json:"pinned"`
	Changed bool      `json:"changed"`
}
