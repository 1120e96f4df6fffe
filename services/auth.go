package services

import (
	"github.com/bloghive/backend/auth"
	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService is the authentication and authorization gate: it exchanges
// credentials for tokens and resolves bearer tokens back into principals.
type AuthService struct {
	db     database.Database
	hasher auth.Hasher
	tokens *auth.TokenService
}

func NewAuthService(db database.Database, hasher auth.Hasher, tokens *auth.TokenService) AuthService {
	return AuthService{db: db, hasher: hasher, tokens: tokens}
}

// Login verifies the email/password pair and issues an access and a refresh
// token. A missing user and a wrong password fail identically so callers
// cannot probe which emails are registered.
func (s AuthService) Login(email, password string) (*TokenPair, error) {
	user, err := s.db.UserRepo().FindByEmail(email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.UserNotFound()
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, errs.UserNotFound()
	}

	accessToken, err := s.tokens.Issue(user.Email, auth.TokenAccess)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("issuing access token", err)
	}
	refreshToken, err := s.tokens.Issue(user.Email, auth.TokenRefresh)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("issuing refresh token", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// subject is taken from the refresh token as-is; whether the user still exists
// is not re-checked.
func (s AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenRefresh)
	if err != nil {
		return "", err
	}

	accessToken, err := s.tokens.Issue(claims.Subject, auth.TokenAccess)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("issuing access token", err)
	}
	return accessToken, nil
}

// Authenticate resolves an access token into the user it identifies, with the
// role eagerly loaded. A token whose subject no longer exists fails with
// UserNotFound.
func (s AuthService) Authenticate(token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token, auth.TokenAccess)
	if err != nil {
		return nil, err
	}

	user, err := s.db.UserRepo().FindByEmailWithRole(claims.Subject)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.UserNotFound()
	}

	return user, nil
}

// Authorize enforces an exact-match role requirement. An empty requiredRole
// means any authenticated principal passes; there is no role hierarchy.
func (s AuthService) Authorize(user *models.User, requiredRole string) error {
	if requiredRole == "" {
		return nil
	}
	if user.Role == nil || user.Role.Name != requiredRole {
		return errs.UnauthorizedAccess()
	}
	return nil
}
