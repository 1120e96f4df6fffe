package models

import (
	"time"

	"github.com/google/uuid"
)

// Like represents a user's like on a blog. The (user, blog) pair is unique at
// the store level; that constraint is the backstop for concurrent toggles.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_blog_like"`
	BlogID    uuid.UUID `json:"blogId" db:"blog_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_blog_like"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Blog *Blog `json:"-" gorm:"foreignKey:BlogID;references:ID"`
}

// NewLike builds a Like with a fresh ID.
func NewLike(userID, blogID uuid.UUID) *Like {
	return &Like{ID: uuid.New(), UserID: userID, BlogID: blogID}
}
