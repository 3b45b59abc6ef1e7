/*
Package authsdk provides a client SDK for the MovieManager service.

# Overview

The package is organized around two types:

  - SDKClient: public operations (signup, login, health probes) and session creation
  - Session: bearer-token operations against the movie catalogue

Create an SDKClient for the public endpoints:

	client := authsdk.NewSDKClient("http://localhost:5285")

	// Register a regular user
	msg, err := client.Signup(ctx, authsdk.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret12",
		RoleID:   authsdk.RoleIDRegular,
	})

	// Log in and get a session
	session, err := client.Login(ctx, "alice", "Secret12")

Use the Session for protected calls:

	movies, err := session.ListMovies(ctx)
	movie, err := session.GetMovie(ctx, 1)

# Sessions

Tokens are self-contained and are not refreshed. Once a token expires every
Session call fails with a 401 APIError and the caller logs in again:

	movies, err := session.ListMovies(ctx)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		session, err = client.Login(ctx, username, password)
	}

A Session only holds its token, so it is safe for concurrent use.

# Roles

The server checks roles, the SDK does not. Reading a single movie requires
the Regular role; creating, updating, deleting and syncing movies require
Admin. Listing movies only requires a valid token.

# Error Handling

Every non-success response is returned as *APIError carrying the HTTP status
and the server's message, for example "User and/or Password are incorrect."
for a failed login or "Movie not found." for an unknown id.
*/
package authsdk
