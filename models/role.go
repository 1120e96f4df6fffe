package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names are a closed set; roles are created once and never updated.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ValidRoleName reports whether name is one of the recognized role names.
func ValidRoleName(name string) bool {
	return name == RoleAdmin || name == RoleUser
}

// Role represents a user role referenced by many users.
type Role struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`

	Users []User `json:"-" gorm:"foreignKey:RoleID;references:ID"`
}

// NewRole builds a Role with a fresh ID.
func NewRole(name string) *Role {
	return &Role{ID: uuid.New(), Name: name}
}
