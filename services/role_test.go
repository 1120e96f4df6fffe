package services

import (
	"errors"
	"testing"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

func TestCreateRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoleService(db)

	role, err := svc.Create(models.RoleAdmin)
	if err != nil {
		t.Fatalf("creating role: %v", err)
	}
	if role.Name != models.RoleAdmin {
		t.Errorf("role name = %q, want %q", role.Name, models.RoleAdmin)
	}
}

func TestCreateRoleRejectsUnknownName(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoleService(db)

	for _, name := range []string{"SUPERUSER", "admin", ""} {
		if _, err := svc.Create(name); !errors.Is(err, errs.ErrUserRoleNotFound) {
			t.Errorf("Create(%q): err = %v, want ErrUserRoleNotFound", name, err)
		}
	}
}

func TestCreateRoleRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoleService(db)

	if _, err := svc.Create(models.RoleUser); err != nil {
		t.Fatalf("creating role: %v", err)
	}
	if _, err := svc.Create(models.RoleUser); !errors.Is(err, errs.ErrUserRoleAlreadyExists) {
		t.Errorf("err = %v, want ErrUserRoleAlreadyExists", err)
	}
}

func TestGetAllRoles(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoleService(db)

	roles, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("len(roles) = %d, want 0", len(roles))
	}

	seedRole(t, db, models.RoleAdmin)
	seedRole(t, db, models.RoleUser)

	roles, err = svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(roles) != 2 {
		t.Errorf("len(roles) = %d, want 2", len(roles))
	}
}
