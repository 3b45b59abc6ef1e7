package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_ServesHealth(t *testing.T) {
	cfg := Config{
		JWT: JWTConfig{
			Key:      []byte(testKey),
			Issuer:   "moviemanager",
			Audience: "moviemanager-clients",
			Duration: time.Hour,
		},
		DatabaseFile:        filepath.Join(t.TempDir(), "moviemanager.db"),
		BcryptCost:          4,
		Env:                 "test",
		LogLevel:            "error",
		Port:                5285,
		ShutdownGracePeriod: time.Second,
	}

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNew_RejectsShortKey(t *testing.T) {
	cfg := Config{
		JWT:          JWTConfig{Key: []byte("short"), Issuer: "i", Audience: "a", Duration: time.Hour},
		DatabaseFile: filepath.Join(t.TempDir(), "moviemanager.db"),
		LogLevel:     "error",
	}

	_, err := New(cfg)
	require.Error(t, err)
}
