package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/service"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/pkg/httpx"
	"github.com/aussiebroadwan/moviemanager/pkg/jwtx"
	"github.com/aussiebroadwan/moviemanager/pkg/slogx"

	_ "github.com/aussiebroadwan/moviemanager/api/moviemanager" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	CredentialService *service.CredentialService
	TokenService      *service.TokenService
	MovieService      *service.MovieService
	RolesService      *service.RolesService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMovies()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MovieManager API
//	@version		0.1.0
//	@description	Movie catalogue with username/password signup and login.
//	@description
//	@description				Login returns an HS256-signed JWT. Send it as a bearer token; the role claim gates catalogue writes.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/moviemanager
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5285
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		CredentialService: r.CredentialService,
		TokenService:      r.TokenService,
	}

	r.Mux.HandleFunc("POST /api/auth/signup", h.HandleSignup)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
}

func (r *Router) registerMovies() {
	h := &MoviesHandler{MovieService: r.MovieService}

	// protect wraps a handler with token verification and, when role is
	// non-empty, an exact role check.
	protect := func(fn http.HandlerFunc, role string) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
			httpx.RequireRole(role),
		)
	}

	r.Mux.Handle("GET /api/movies", protect(h.HandleList, ""))
	r.Mux.Handle("GET /api/movies/{id}", protect(h.HandleGet, domain.RoleRegular))
	r.Mux.Handle("POST /api/movies", protect(h.HandleCreate, domain.RoleAdmin))
	r.Mux.Handle("PUT /api/movies/{id}", protect(h.HandleUpdate, domain.RoleAdmin))
	r.Mux.Handle("DELETE /api/movies/{id}", protect(h.HandleDelete, domain.RoleAdmin))
	r.Mux.Handle("POST /api/movies/sync", protect(h.HandleSync, domain.RoleAdmin))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.RolesService))
}
