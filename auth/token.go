package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghive/backend/errs"
)

// TokenKind distinguishes short-lived access tokens from long-lived refresh
// tokens. A token of one kind never verifies as the other.
type TokenKind string

const (
	TokenAccess  TokenKind = "ACCESS"
	TokenRefresh TokenKind = "REFRESH"
)

// Claims is the signed claim set carried by every token.
type Claims struct {
	Kind string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. Tokens are stateless:
// there is no revocation, expiry is purely time-based.
type TokenService struct {
	secret     []byte
	method     jwt.SigningMethod
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService builds a TokenService. algorithm must name an HMAC signing
// method (HS256, HS384 or HS512).
func NewTokenService(secret, algorithm, audience string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q, HMAC required", algorithm)
	}

	return &TokenService{
		secret:     []byte(secret),
		method:     method,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Issue signs a token of the given kind for subject. The subject is the
// user's email.
func (s *TokenService) Issue(subject string, kind TokenKind) (string, error) {
	now := time.Now()

	var ttl time.Duration
	switch kind {
	case TokenAccess:
		ttl = s.accessTTL
	case TokenRefresh:
		ttl = s.refreshTTL
	default:
		return "", fmt.Errorf("invalid token kind %q", kind)
	}

	claims := Claims{
		Kind: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify decodes token, checks signature, audience, expiry and kind, and
// returns the claims. Expiry failures map to ExpiredToken; every other
// failure, including a kind mismatch, maps to InvalidToken.
func (s *TokenService) Verify(token string, kind TokenKind) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ExpiredToken()
		}
		return nil, errs.InvalidToken()
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Kind != string(kind) {
		return nil, errs.InvalidToken()
	}

	return claims, nil
}
