package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a blog, optionally nested one level under a
// parent comment. A comment that is itself a reply must never be referenced
// as a parent; services enforce the depth limit before inserting.
type Comment struct {
	ID              uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Content         string     `json:"content" db:"content" gorm:"type:text;not null"`
	BlogID          uuid.UUID  `json:"blogId" db:"blog_id" gorm:"type:uuid;not null"`
	AuthorID        uuid.UUID  `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	ParentCommentID *uuid.UUID `json:"parentCommentId,omitempty" db:"parent_comment_id" gorm:"type:uuid;index"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`

	Blog          *Blog         `json:"-" gorm:"foreignKey:BlogID;references:ID"`
	Author        *User         `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	ParentComment *Comment      `json:"-" gorm:"foreignKey:ParentCommentID;references:ID"`
	Replies       []Comment     `json:"-" gorm:"foreignKey:ParentCommentID;references:ID;constraint:OnDelete:CASCADE"`
	Likes         []CommentLike `json:"-" gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

// NewComment builds a Comment with a fresh ID. parentCommentID is nil for
// top-level comments.
func NewComment(content string, blogID, authorID uuid.UUID, parentCommentID *uuid.UUID) *Comment {
	return &Comment{
		ID:              uuid.New(),
		Content:         content,
		BlogID:          blogID,
		AuthorID:        authorID,
		ParentCommentID: parentCommentID,
	}
}
