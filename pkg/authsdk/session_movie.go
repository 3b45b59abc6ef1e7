package authsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListMovies returns the whole catalogue. Any valid token may call it.
func (s *Session) ListMovies(ctx context.Context) ([]MovieResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/movies", nil)
	if err != nil {
		return nil, err
	}

	var movies []MovieResponse
	if _, err := decodeJSON(resp, &movies, http.StatusOK); err != nil {
		return nil, err
	}

	return movies, nil
}

// GetMovie fetches one movie.
// Requires: Regular role
func (s *Session) GetMovie(ctx context.Context, id int64) (*MovieResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/api/movies/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var movie MovieResponse
	if _, err := decodeJSON(resp, &movie, http.StatusOK); err != nil {
		return nil, err
	}

	return &movie, nil
}

// CreateMovie adds a movie. When a movie with the same title, director and
// release year already exists nothing is stored, created is false and the
// returned movie is nil.
// Requires: Admin role
func (s *Session) CreateMovie(ctx context.Context, req MovieRequest) (movie *MovieResponse, created bool, err error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/movies", req)
	if err != nil {
		return nil, false, err
	}

	// 201 carries the movie, 200 only a message.
	var raw struct {
		MovieResponse
		Message string `json:"message"`
	}
	status, err := decodeJSON(resp, &raw, http.StatusCreated, http.StatusOK)
	if err != nil {
		return nil, false, err
	}
	if status == http.StatusOK {
		return nil, false, nil
	}

	return &raw.MovieResponse, true, nil
}

// UpdateMovie replaces every field of movie id.
// Requires: Admin role
func (s *Session) UpdateMovie(ctx context.Context, id int64, req MovieRequest) (*MovieResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/api/movies/%d", id), req)
	if err != nil {
		return nil, err
	}

	var movie MovieResponse
	if _, err := decodeJSON(resp, &movie, http.StatusOK); err != nil {
		return nil, err
	}

	return &movie, nil
}

// DeleteMovie removes movie id.
// Requires: Admin role
func (s *Session) DeleteMovie(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/movies/%d", id), nil)
	if err != nil {
		return err
	}

	_, err = decodeJSON(resp, nil, http.StatusOK)
	return err
}

// SyncMovies imports the Star Wars films the catalogue does not have yet.
// Requires: Admin role
func (s *Session) SyncMovies(ctx context.Context) (string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/movies/sync", nil)
	if err != nil {
		return "", err
	}

	var msg MessageResponse
	if _, err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return "", err
	}

	return msg.Message, nil
}
