package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/moviemanager/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var (
	testKey  = []byte("0123456789abcdef0123456789abcdef")
	otherKey = []byte("fedcba9876543210fedcba9876543210")
)

const (
	testIssuer   = "moviemanager"
	testAudience = "moviemanager-clients"
)

func newTestVerifier(now time.Time) *jwtx.HS256Verifier {
	return jwtx.NewVerifierHS256(testKey, jwtx.VerifyOptions{
		Issuer:   testIssuer,
		Audience: testAudience,
		Now:      func() time.Time { return now },
	})
}

func signWith(t *testing.T, key []byte, c jwtx.Claims) string {
	t.Helper()
	s, err := jwtx.NewSignerHS256(key)
	require.NoError(t, err)
	tok, err := s.Sign(c)
	require.NoError(t, err)
	return tok
}

func TestNewSignerHS256_RejectsShortKey(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("too-short"))
	require.ErrorIs(t, err, jwtx.ErrKeyTooShort)
}

func TestHS256_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	claims := jwtx.NewClaims("alice", "Admin", testIssuer, []string{testAudience}, time.Hour, now)
	tok := signWith(t, testKey, claims)

	// Compact serialization: header.payload.signature
	require.Len(t, strings.Split(tok, "."), 3)

	got, err := newTestVerifier(now.Add(time.Minute)).Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Subject)
	require.Equal(t, "alice", got.Name)
	require.Equal(t, "Admin", got.Role)
	require.Equal(t, claims.ID, got.ID)

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, &jwtx.Claims{})
	require.NoError(t, err)
	require.Equal(t, "HS256", parsed.Header["alg"])
}

func TestHS256_Rejections(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	valid := jwtx.NewClaims("alice", "Admin", testIssuer, []string{testAudience}, time.Hour, now)

	t.Run("expired", func(t *testing.T) {
		tok := signWith(t, testKey, valid)
		_, err := newTestVerifier(now.Add(2 * time.Hour)).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("expiry instant is already expired", func(t *testing.T) {
		tok := signWith(t, testKey, valid)
		_, err := newTestVerifier(now.Add(time.Hour)).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong key", func(t *testing.T) {
		tok := signWith(t, otherKey, valid)
		_, err := newTestVerifier(now).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := valid
		c.Issuer = "someone-else"
		_, err := newTestVerifier(now).Verify(signWith(t, testKey, c))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := valid
		c.Audience = jwt.ClaimStrings{"other-audience"}
		_, err := newTestVerifier(now).Verify(signWith(t, testKey, c))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := valid
		c.ExpiresAt = nil
		_, err := newTestVerifier(now).Verify(signWith(t, testKey, c))
		require.Error(t, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		tok := signWith(t, testKey, valid)
		forged := signWith(t, testKey, jwtx.NewClaims("alice", "Regular", testIssuer, []string{testAudience}, time.Hour, now))

		// Regular payload under the Admin token's signature
		parts := strings.Split(tok, ".")
		forgedParts := strings.Split(forged, ".")
		spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]

		_, err := newTestVerifier(now).Verify(spliced)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = newTestVerifier(now).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("other hmac algorithm", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, valid).SignedString(testKey)
		require.NoError(t, err)
		_, err = newTestVerifier(now).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-token", "a.b.c"} {
			_, err := newTestVerifier(now).Verify(raw)
			require.ErrorIs(t, err, jwtx.ErrMalformed, "input %q", raw)
		}
	})
}
