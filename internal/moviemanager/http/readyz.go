package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/service"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/pkg/authsdk"
	"github.com/aussiebroadwan/moviemanager/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe: the database answers and the Admin and Regular roles are seeded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	roles *service.RolesService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authsdk.HealthChecks{
			Database: "ok",
			Roles:    "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if msg := checkRoles(r, roles); msg != "" {
			checks.Roles = msg
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, authsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// checkRoles returns an error description, or "" when both seeded roles exist.
func checkRoles(r *http.Request, roles *service.RolesService) string {
	list, err := roles.ListAll(r.Context())
	if err != nil {
		return "error: " + err.Error()
	}

	want := map[string]bool{domain.RoleAdmin: false, domain.RoleRegular: false}
	for _, role := range list {
		if _, ok := want[role.Name]; ok {
			want[role.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			return "error: role " + name + " missing"
		}
	}
	return ""
}
