package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the MovieManager service.
// It provides access to unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new user and returns the server's confirmation message.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", req)
	if err != nil {
		return "", err
	}

	var msg MessageResponse
	if _, err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return "", err
	}

	return msg.Message, nil
}

// LoginToken exchanges a username and password for a signed session token.
func (c *SDKClient) LoginToken(ctx context.Context, username, password string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var tokenResp TokenResponse
	if _, err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return "", err
	}

	return tokenResp.Token, nil
}

// Login authenticates and returns a Session bound to the issued token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := c.LoginToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return c.NewSession(token), nil
}

// NewSession wraps an existing token, for example one stored by the caller.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{
		client: c,
		token:  token,
	}
}
