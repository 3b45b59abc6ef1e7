package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/pkg/jwtx"
	"github.com/aussiebroadwan/moviemanager/pkg/slogx"
)

// TokenService mints access tokens for authenticated users. All fields are
// set once at startup and never change.
type TokenService struct {
	Signer   jwtx.Signer
	Issuer   string
	Audience string
	TTL      time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Issue signs a token whose subject and name are the username and whose
// role is the user's single role name.
func (s *TokenService) Issue(ctx context.Context, u domain.User) (string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	var audience []string
	if s.Audience != "" {
		audience = []string{s.Audience}
	}

	claims := jwtx.NewClaims(u.Username, u.Role.Name, s.Issuer, audience, ttl, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign token",
			slog.Any("error", err),
			slog.String("username", u.Username),
		)
		return "", infraError(MsgIssueToken, err)
	}

	slogx.FromContext(ctx).Info("token issued",
		slog.String("username", u.Username),
		slog.String("role", u.Role.Name),
		slog.String("jti", claims.ID),
	)
	return token, nil
}
