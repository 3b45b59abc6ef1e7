package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/service"
	"github.com/aussiebroadwan/moviemanager/pkg/authsdk"
	"github.com/aussiebroadwan/moviemanager/pkg/slogx"
)

const (
	msgInvalidBody  = "Invalid request body."
	msgInternal     = "Internal server error."
	msgInvalidID    = "Invalid movie id."
	msgMissingLogin = "Username and Password are required."
)

var kindStatus = map[service.Kind]int{
	service.KindValidation:     http.StatusBadRequest,
	service.KindConflict:       http.StatusBadRequest,
	service.KindAuthentication: http.StatusUnauthorized,
	service.KindAuthorization:  http.StatusForbidden,
	service.KindNotFound:       http.StatusNotFound,
}

// writeServiceError maps a service error onto a status code and a
// {"message": ...} body. Causes of infrastructure failures are logged but
// never sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		svcErr *service.Error
		infra  *service.InfrastructureError
	)

	switch {
	case errors.As(err, &svcErr):
		status, ok := kindStatus[svcErr.Kind]
		if !ok {
			status = http.StatusBadRequest
		}
		authsdk.NewAPIError(status, svcErr.Message).WriteError(w)

	case errors.As(err, &infra):
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrFilmSource) {
			status = http.StatusBadGateway
		}
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("message", infra.Message),
			slog.Any("error", infra.Err),
			slog.Int("status", status),
		)
		authsdk.NewAPIError(status, infra.Message).WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("unhandled error", slog.Any("error", err))
		authsdk.NewAPIError(http.StatusInternalServerError, msgInternal).WriteError(w)
	}
}
