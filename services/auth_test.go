package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bloghive/backend/auth"
	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()

	tokens, err := auth.NewTokenService("test-secret", "HS256", "bloghive-test", 30*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	return tokens
}

func newAuthFixture(t *testing.T) (AuthService, database.Database, *auth.TokenService) {
	t.Helper()

	db := newTestDB(t)
	tokens := newTestTokenService(t)
	return NewAuthService(db, testHasher, tokens), db, tokens
}

func TestLoginIssuesBothTokenKinds(t *testing.T) {
	svc, db, tokens := newAuthFixture(t)
	role := seedRole(t, db, models.RoleUser)
	seedUser(t, db, "alice@example.com", "S3cret!pass", role)

	pair, err := svc.Login("alice@example.com", "S3cret!pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	accessClaims, err := tokens.Verify(pair.AccessToken, auth.TokenAccess)
	if err != nil {
		t.Fatalf("access token does not verify: %v", err)
	}
	if accessClaims.Subject != "alice@example.com" {
		t.Errorf("access token subject = %q, want alice@example.com", accessClaims.Subject)
	}

	if _, err := tokens.Verify(pair.RefreshToken, auth.TokenRefresh); err != nil {
		t.Fatalf("refresh token does not verify: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, db, _ := newAuthFixture(t)
	role := seedRole(t, db, models.RoleUser)
	seedUser(t, db, "alice@example.com", "S3cret!pass", role)

	_, noUserErr := svc.Login("nouser@example.com", "anything")
	if !errors.Is(noUserErr, errs.ErrUserNotFound) {
		t.Fatalf("unknown email: err = %v, want ErrUserNotFound", noUserErr)
	}

	_, wrongPassErr := svc.Login("alice@example.com", "wrongpassword")
	if !errors.Is(wrongPassErr, errs.ErrUserNotFound) {
		t.Fatalf("wrong password: err = %v, want ErrUserNotFound", wrongPassErr)
	}

	// Same message on the wire, nothing to enumerate accounts with.
	if noUserErr.Error() != wrongPassErr.Error() {
		t.Errorf("error messages differ: %q vs %q", noUserErr.Error(), wrongPassErr.Error())
	}
}

func TestRefreshIssuesFreshAccessToken(t *testing.T) {
	svc, db, tokens := newAuthFixture(t)
	role := seedRole(t, db, models.RoleUser)
	seedUser(t, db, "alice@example.com", "S3cret!pass", role)

	pair, err := svc.Login("alice@example.com", "S3cret!pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	accessToken, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	claims, err := tokens.Verify(accessToken, auth.TokenAccess)
	if err != nil {
		t.Fatalf("refreshed access token does not verify: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("subject = %q, want alice@example.com", claims.Subject)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	accessToken, err := tokens.Issue("alice@example.com", auth.TokenAccess)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Refresh(accessToken); !errors.Is(err, errs.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestAuthenticateLoadsPrincipalWithRole(t *testing.T) {
	svc, db, tokens := newAuthFixture(t)
	role := seedRole(t, db, models.RoleAdmin)
	seeded := seedUser(t, db, "admin@example.com", "S3cret!pass", role)

	token, err := tokens.Issue("admin@example.com", auth.TokenAccess)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	principal, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if principal.ID != seeded.ID {
		t.Errorf("principal ID = %s, want %s", principal.ID, seeded.ID)
	}
	if principal.Role == nil || principal.Role.Name != models.RoleAdmin {
		t.Errorf("principal role = %+v, want eagerly loaded ADMIN", principal.Role)
	}
}

func TestAuthenticateStaleSubject(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	// Valid token whose subject was never registered (or has been deleted).
	token, err := tokens.Issue("ghost@example.com", auth.TokenAccess)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Authenticate(token); !errors.Is(err, errs.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestAuthorizeExactMatchOnly(t *testing.T) {
	svc, db, _ := newAuthFixture(t)
	adminRole := seedRole(t, db, models.RoleAdmin)
	userRole := seedRole(t, db, models.RoleUser)
	admin := seedUser(t, db, "admin@example.com", "S3cret!pass", adminRole)
	user := seedUser(t, db, "user@example.com", "S3cret!pass", userRole)

	if err := svc.Authorize(admin, models.RoleAdmin); err != nil {
		t.Errorf("admin against ADMIN requirement: %v", err)
	}
	if err := svc.Authorize(user, models.RoleUser); err != nil {
		t.Errorf("user against USER requirement: %v", err)
	}

	// No hierarchy: ADMIN does not satisfy a USER-only requirement.
	if err := svc.Authorize(admin, models.RoleUser); !errors.Is(err, errs.ErrUnauthorizedAccess) {
		t.Errorf("admin against USER requirement: err = %v, want ErrUnauthorizedAccess", err)
	}
	if err := svc.Authorize(user, models.RoleAdmin); !errors.Is(err, errs.ErrUnauthorizedAccess) {
		t.Errorf("user against ADMIN requirement: err = %v, want ErrUnauthorizedAccess", err)
	}

	// No requirement means any authenticated principal passes.
	if err := svc.Authorize(user, ""); err != nil {
		t.Errorf("user against empty requirement: %v", err)
	}
}
