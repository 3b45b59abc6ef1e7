package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/moviemanager/pkg/httpx"
	"github.com/aussiebroadwan/moviemanager/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func issue(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	s, err := jwtx.NewSignerHS256(testKey)
	require.NoError(t, err)
	tok, err := s.Sign(jwtx.NewClaims("alice", role, "moviemanager", []string{"clients"}, ttl, time.Now()))
	require.NoError(t, err)
	return tok
}

func protected(role string) http.Handler {
	v := jwtx.NewVerifierHS256(testKey, jwtx.VerifyOptions{Issuer: "moviemanager", Audience: "clients"})
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, found := httpx.ClaimsFromContext(r.Context())
		if !found {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(claims.Subject + ":" + httpx.UsernameFromContext(r.Context())))
	})
	return httpx.Chain(ok, httpx.AuthnMiddleware(v), httpx.RequireRole(role))
}

func do(h http.Handler, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthnMiddleware(t *testing.T) {
	h := protected("")

	t.Run("valid token", func(t *testing.T) {
		rec := do(h, "Bearer "+issue(t, "Regular", time.Hour))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "alice:alice", rec.Body.String())
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		rec := do(h, "bearer "+issue(t, "Regular", time.Hour))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic YWxpY2U6cGFzcw=="},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + issue(t, "Admin", -time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.authz)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), `Bearer error="invalid_token"`))
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		required string
		role     string
		want     int
	}{
		{"admin on admin route", "Admin", "Admin", http.StatusOK},
		{"regular on admin route", "Admin", "Regular", http.StatusForbidden},
		{"regular on regular route", "Regular", "Regular", http.StatusOK},
		{"admin on regular route", "Regular", "Admin", http.StatusForbidden},
		{"any role on open route", "", "Admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(protected(tt.required), "Bearer "+issue(t, tt.role, time.Hour))
			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				require.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
			}
		})
	}
}

func TestRequireRole_WithoutAuthn(t *testing.T) {
	h := httpx.Chain(http.NotFoundHandler(), httpx.RequireRole("Admin"))
	rec := do(h, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))
	do(h, "")

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Username string `json:"username"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userName":"alice"}`))
	require.NoError(t, httpx.DecodeJSON(req, &body))
	require.Equal(t, "alice", body.Username)

	for _, raw := range []string{"", "{", `{"username":"a"} {"username":"b"}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
		require.ErrorIs(t, httpx.DecodeJSON(req, &body), httpx.ErrInvalidBody, "input %q", raw)
	}
}
