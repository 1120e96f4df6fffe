package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentLike represents a user's like on a comment, unique on (user, comment).
type CommentLike struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_comment_like"`
	CommentID uuid.UUID `json:"commentId" db:"comment_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_comment_like"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	User    *User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Comment *Comment `json:"-" gorm:"foreignKey:CommentID;references:ID"`
}

// NewCommentLike builds a CommentLike with a fresh ID.
func NewCommentLike(userID, commentID uuid.UUID) *CommentLike {
	return &CommentLike{ID: uuid.New(), UserID: userID, CommentID: commentID}
}
