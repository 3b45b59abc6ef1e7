package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/service"
	"github.com/aussiebroadwan/moviemanager/pkg/authsdk"
	"github.com/aussiebroadwan/moviemanager/pkg/httpx"
)

const (
	msgMovieExists  = "Movie already exists."
	msgMovieRemoved = "Movie removed successfully."
	msgMoviesSynced = "Movies synced successfully."
)

type MoviesHandler struct {
	MovieService *service.MovieService
}

// HandleList returns every movie.
//
//	@Summary		List movies
//	@Description	Any valid token may list the catalogue.
//	@Tags			Movies
//	@Produce		json
//	@Success		200	{array}		authsdk.MovieResponse
//	@Failure		401	{object}	authsdk.MessageResponse	"Missing or invalid token"
//	@Failure		500	{object}	authsdk.MessageResponse	"Storage failure"
//	@Security		BearerAuth
//	@Router			/api/movies [get].
func (h *MoviesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	movies, err := h.MovieService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]authsdk.MovieResponse, len(movies))
	for i, m := range movies {
		resp[i] = toMovieResponse(m)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one movie.
//
//	@Summary		Get a movie
//	@Tags			Movies
//	@Produce		json
//	@Param			id	path		int	true	"Movie id"
//	@Success		200	{object}	authsdk.MovieResponse
//	@Failure		400	{object}	authsdk.MessageResponse	"Invalid movie id."
//	@Failure		401	{object}	authsdk.MessageResponse	"Missing or invalid token"
//	@Failure		403	{object}	authsdk.MessageResponse	"Requires the Regular role"
//	@Failure		404	{object}	authsdk.MessageResponse	"Movie not found."
//	@Security		BearerAuth
//	@Router			/api/movies/{id} [get].
func (h *MoviesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	m, err := h.MovieService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMovieResponse(m))
}

// HandleCreate adds a movie unless an identical one exists.
//
//	@Summary		Create a movie
//	@Description	A movie with the same title, director and release year is not stored twice; that case answers 200 with a message.
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.MovieRequest	true	"Movie"
//	@Success		201		{object}	authsdk.MovieResponse
//	@Success		200		{object}	authsdk.MessageResponse	"Movie already exists."
//	@Failure		400		{object}	authsdk.MessageResponse	"Validation failure"
//	@Failure		401		{object}	authsdk.MessageResponse	"Missing or invalid token"
//	@Failure		403		{object}	authsdk.MessageResponse	"Requires the Admin role"
//	@Security		BearerAuth
//	@Router			/api/movies [post].
func (h *MoviesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req authsdk.MovieRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.NewAPIError(http.StatusBadRequest, msgInvalidBody).WriteError(w)
		return
	}

	m, created, err := h.MovieService.Create(r.Context(), toMovieInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !created {
		httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: msgMovieExists})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/movies/%d", m.ID))
	httpx.WriteJSON(w, http.StatusCreated, toMovieResponse(m))
}

// HandleUpdate replaces a movie.
//
//	@Summary		Update a movie
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Movie id"
//	@Param			request	body		authsdk.MovieRequest	true	"Movie"
//	@Success		200		{object}	authsdk.MovieResponse
//	@Failure		400		{object}	authsdk.MessageResponse	"Validation failure"
//	@Failure		401		{object}	authsdk.MessageResponse	"Missing or invalid token"
//	@Failure		403		{object}	authsdk.MessageResponse	"Requires the Admin role"
//	@Failure		404		{object}	authsdk.MessageResponse	"Movie not found."
//	@Security		BearerAuth
//	@Router			/api/movies/{id} [put].
func (h *MoviesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	var req authsdk.MovieRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.NewAPIError(http.StatusBadRequest, msgInvalidBody).WriteError(w)
		return
	}

	m, err := h.MovieService.Update(r.Context(), id, toMovieInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMovieResponse(m))
}

// HandleDelete removes a movie.
//
//	@Summary		Delete a movie
//	@Tags			Movies
//	@Produce		json
//	@Param			id	path		int	true	"Movie id"
//	@Success		200	{object}	authsdk.MessageResponse	"Movie removed successfully."
//	@Failure		401	{object}	authsdk.MessageResponse	"Missing or invalid token"
//	@Failure		403	{object}	authsdk.MessageResponse	"Requires the Admin role"
//	@Failure		404	{object}	authsdk.MessageResponse	"Movie not found."
//	@Security		BearerAuth
//	@Router			/api/movies/{id} [delete].
func (h *MoviesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	if err := h.MovieService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: msgMovieRemoved})
}

// HandleSync imports Star Wars films that are not in the catalogue yet.
//
//	@Summary		Sync Star Wars films
//	@Description	Fetches the film list from the Star Wars API and stores every film whose title is not already present.
//	@Tags			Movies
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"Movies synced successfully."
//	@Failure		401	{object}	authsdk.MessageResponse	"Missing or invalid token"
//	@Failure		403	{object}	authsdk.MessageResponse	"Requires the Admin role"
//	@Failure		502	{object}	authsdk.MessageResponse	"Error while getting Star Wars movies."
//	@Security		BearerAuth
//	@Router			/api/movies/sync [post].
func (h *MoviesHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if _, err := h.MovieService.Sync(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: msgMoviesSynced})
}

func movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		authsdk.NewAPIError(http.StatusBadRequest, msgInvalidID).WriteError(w)
		return 0, false
	}
	return id, true
}

func toMovieInput(req authsdk.MovieRequest) domain.MovieInput {
	return domain.MovieInput{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Description: req.Description,
	}
}

func toMovieResponse(m domain.Movie) authsdk.MovieResponse {
	return authsdk.MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		ReleaseYear: m.ReleaseYear,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
