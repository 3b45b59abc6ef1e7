package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the session token lifetime when none is configured.
const DefaultTokenTTL = 60 * time.Minute

// ErrForbidden is returned by Authorize when the role claim does not satisfy
// the required role.
var ErrForbidden = errors.New("jwtx: role not permitted")

// Claims are the session-token claims. The subject carries the username and
// the custom name/role fields mirror it for consumers that only read those.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the display identity of the holder (the username).
	Name string `json:"name,omitempty"`

	// Role is the single role name granted to the holder, e.g. "Admin".
	Role string `json:"role,omitempty"`
}

// NewClaims builds the claims for a freshly authenticated user.
func NewClaims(
	username, role string,
	issuer string,
	audience []string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name: username,
		Role: role,
	}
}

// NewJTI returns a random identifier for the "jti" claim.
func NewJTI() string {
	return uuid.NewString()
}

// Authorize checks the role claim against requiredRole. An empty requirement
// admits any authenticated holder; otherwise the match is exact and
// case-sensitive.
func (c Claims) Authorize(requiredRole string) error {
	if requiredRole == "" {
		return nil
	}
	if c.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}
