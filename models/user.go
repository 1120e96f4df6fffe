package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	RoleID    uuid.UUID `json:"roleId" db:"role_id" gorm:"type:uuid;not null"`
	Role      *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`

	Blogs        []Blog        `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	Likes        []Like        `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Comments     []Comment     `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	CommentLikes []CommentLike `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// NewUser builds a User with a fresh ID. The password must already be hashed.
func NewUser(email, hashedPassword string, roleID uuid.UUID) *User {
	return &User{
		ID:       uuid.New(),
		Email:    email,
		Password: hashedPassword,
		RoleID:   roleID,
	}
}

// PublicUser is the externally visible shape of a User.
type PublicUser struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	RoleID uuid.UUID `json:"roleId"`
}

// Public strips credential fields from a User.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, RoleID: u.RoleID}
}
