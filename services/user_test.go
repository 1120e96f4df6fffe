package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testHasher)
	role := seedRole(t, db, models.RoleUser)

	user, err := svc.Register("new@example.com", "S3cret!pass", role.ID)
	if err != nil {
		t.Fatalf("registering user: %v", err)
	}
	if user.Email != "new@example.com" || user.RoleID != role.ID {
		t.Errorf("user = %+v, want email and role to round-trip", user)
	}
	if user.Password == "S3cret!pass" {
		t.Fatal("password stored in plaintext")
	}
	if !testHasher.Verify("S3cret!pass", user.Password) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testHasher)

	_, err := svc.Register("new@example.com", "S3cret!pass", uuid.New())
	if !errors.Is(err, errs.ErrUserRoleNotFound) {
		t.Errorf("err = %v, want ErrUserRoleNotFound", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testHasher)
	role := seedRole(t, db, models.RoleUser)

	if _, err := svc.Register("taken@example.com", "S3cret!pass", role.ID); err != nil {
		t.Fatalf("registering first user: %v", err)
	}

	_, err := svc.Register("taken@example.com", "0therS3cret!", role.ID)
	if !errors.Is(err, errs.ErrUserAlreadyExists) {
		t.Errorf("err = %v, want ErrUserAlreadyExists", err)
	}
}
