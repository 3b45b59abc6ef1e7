package http

import (
	"net/http"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/service"
	"github.com/aussiebroadwan/moviemanager/pkg/authsdk"
	"github.com/aussiebroadwan/moviemanager/pkg/httpx"
)

const msgRegistered = "User registered successfully."

type AuthHandler struct {
	CredentialService *service.CredentialService
	TokenService      *service.TokenService
}

// HandleSignup registers a new user.
//
//	@Summary		Register a user
//	@Description	Validates the input, rejects a taken username and stores the user with a bcrypt hash of the password.
//	@Description	The role id is stored as given (1 Admin, 2 Regular).
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SignupRequest	true	"New user"
//	@Success		200		{object}	authsdk.MessageResponse	"User registered successfully."
//	@Failure		400		{object}	authsdk.MessageResponse	"Validation failure or username taken"
//	@Failure		500		{object}	authsdk.MessageResponse	"Storage failure"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req authsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.NewAPIError(http.StatusBadRequest, msgInvalidBody).WriteError(w)
		return
	}

	_, err := h.CredentialService.Signup(r.Context(), domain.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: msgRegistered})
}

// HandleLogin exchanges credentials for a session token.
//
//	@Summary		Log in
//	@Description	Returns an HS256 JWT carrying the username and role. Unknown users and wrong passwords get the same 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenResponse	"Signed token"
//	@Failure		400		{object}	authsdk.MessageResponse	"Unreadable body or missing fields"
//	@Failure		401		{object}	authsdk.MessageResponse	"User and/or Password are incorrect."
//	@Failure		500		{object}	authsdk.MessageResponse	"Storage or signing failure"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.NewAPIError(http.StatusBadRequest, msgInvalidBody).WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		authsdk.NewAPIError(http.StatusBadRequest, msgMissingLogin).WriteError(w)
		return
	}

	ctx := r.Context()
	user, err := h.CredentialService.Authenticate(ctx, domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Issue(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}
