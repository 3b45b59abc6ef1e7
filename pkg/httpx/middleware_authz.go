package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/moviemanager/pkg/slogx"
)

// RequireRole admits the request only when the verified role claim equals
// role. An empty role admits any authenticated caller. It must run after
// AuthnMiddleware.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			if err := claims.Authorize(role); err != nil {
				slogx.FromContext(r.Context()).Info("role check failed",
					"username", claims.Subject,
					"role", claims.Role,
					"required_role", role,
				)
				writeBearerRoleError(w, role)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750 insufficient_scope, with the missing role as the description.
func writeBearerRoleError(w http.ResponseWriter, role string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", error_description="requires role `+role+`"`)
	WriteJSON(w, http.StatusForbidden, messageBody{Message: "Forbidden."})
}
