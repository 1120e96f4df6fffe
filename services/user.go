package services

import (
	"github.com/google/uuid"

	"github.com/bloghive/backend/auth"
	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

// UserService handles account registration.
type UserService struct {
	db     database.Database
	hasher auth.Hasher
}

func NewUserService(db database.Database, hasher auth.Hasher) UserService {
	return UserService{db: db, hasher: hasher}
}

// Register creates a new user account. The role must exist and the email must
// be unused; the unique index on email is the backstop against a racing
// duplicate registration.
func (s UserService) Register(email, password string, roleID uuid.UUID) (*models.User, error) {
	// Hashing is deliberately expensive, keep it outside the transaction.
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("hashing password", err)
	}

	var user *models.User
	err = s.db.Transaction(func(tx database.Database) error {
		role, err := tx.RoleRepo().FindByID(roleID)
		if err != nil {
			return errs.NewDatabaseError("find", "role", err)
		}
		if role == nil {
			return errs.UserRoleNotFound()
		}

		exists, err := tx.UserRepo().ExistsByEmail(email)
		if err != nil {
			return errs.NewDatabaseError("find", "user", err)
		}
		if exists {
			return errs.UserAlreadyExists()
		}

		user = models.NewUser(email, hashed, roleID)
		if err := tx.UserRepo().Add(user); err != nil {
			if errs.IsDuplicateKey(err) {
				return errs.UserAlreadyExists()
			}
			return errs.NewDatabaseError("create", "user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
