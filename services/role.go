package services

import (
	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

// RoleService handles role creation and listing. Roles are immutable once
// created; there is no update or delete.
type RoleService struct {
	db database.Database
}

func NewRoleService(db database.Database) RoleService {
	return RoleService{db: db}
}

// Create adds a role. Only the recognized role names are accepted and a name
// can exist at most once.
func (s RoleService) Create(name string) (*models.Role, error) {
	if !models.ValidRoleName(name) {
		return nil, errs.UserRoleNotFound()
	}

	var role *models.Role
	err := s.db.Transaction(func(tx database.Database) error {
		existing, err := tx.RoleRepo().FindByName(name)
		if err != nil {
			return errs.NewDatabaseError("find", "role", err)
		}
		if existing != nil {
			return errs.UserRoleAlreadyExists()
		}

		role = models.NewRole(name)
		if err := tx.RoleRepo().Add(role); err != nil {
			if errs.IsDuplicateKey(err) {
				return errs.UserRoleAlreadyExists()
			}
			return errs.NewDatabaseError("create", "role", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// GetAll returns every role.
func (s RoleService) GetAll() ([]models.Role, error) {
	roles, err := s.db.RoleRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "roles", err)
	}
	return roles, nil
}
