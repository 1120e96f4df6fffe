package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog represents a blog post. Deletion is soft: DeletedAt is set and the row
// is retained, and gorm excludes soft-deleted rows from ordinary queries.
type Blog struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string         `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	Content   string         `json:"content" db:"content" gorm:"type:text;not null"`
	AuthorID  uuid.UUID      `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Author    *User          `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
	DeletedAt gorm.DeletedAt `json:"-" db:"deleted_at" gorm:"index"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
}

// NewBlog builds a Blog with a fresh ID.
func NewBlog(name, content string, authorID uuid.UUID) *Blog {
	return &Blog{ID: uuid.New(), Name: name, Content: content, AuthorID: authorID}
}
