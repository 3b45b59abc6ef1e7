package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/pkg/slogx"
)

// ErrFilmSource marks a failure of the external film catalogue.
var ErrFilmSource = errors.New("film source unavailable")

// FilmSource lists films from an external catalogue.
type FilmSource interface {
	Films(ctx context.Context) ([]domain.Movie, error)
}

type MovieService struct {
	Store store.Store
	Films FilmSource

	// Now overrides the clock used for release year bounds, for tests.
	Now func() time.Time
}

func (s *MovieService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.Store.Movies().ListMovies(ctx)
	if err != nil {
		return nil, s.storeError(ctx, "failed to list movies", err)
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (domain.Movie, error) {
	m, err := s.Store.Movies().GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Movie{}, ErrMovieNotFound
		}
		return domain.Movie{}, s.storeError(ctx, "failed to get movie", err)
	}
	return m, nil
}

// Create stores a new movie unless one with the same title, director and
// release year exists, in which case that one is returned with created set
// to false.
func (s *MovieService) Create(ctx context.Context, in domain.MovieInput) (m domain.Movie, created bool, err error) {
	if err := ValidateMovie(in, s.now()); err != nil {
		return domain.Movie{}, false, err
	}

	existing, err := s.Store.Movies().GetMovieByData(ctx, in.Title, in.Director, in.ReleaseYear)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, store.ErrNotFound):
		return domain.Movie{}, false, s.storeError(ctx, "failed to look up movie", err)
	}

	m, err = s.Store.Movies().CreateMovie(ctx, movieFromInput(in))
	if err != nil {
		return domain.Movie{}, false, s.storeError(ctx, "failed to create movie", err)
	}

	slogx.FromContext(ctx).Info("movie created",
		slog.Int64("movie_id", m.ID),
		slog.String("title", m.Title),
	)
	return m, true, nil
}

// Update overwrites every mutable field of movie id.
func (s *MovieService) Update(ctx context.Context, id int64, in domain.MovieInput) (domain.Movie, error) {
	if err := ValidateMovie(in, s.now()); err != nil {
		return domain.Movie{}, err
	}

	m, err := s.Store.Movies().UpdateMovie(ctx, id, movieFromInput(in))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Movie{}, ErrMovieNotFound
		}
		return domain.Movie{}, s.storeError(ctx, "failed to update movie", err)
	}
	return m, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Movies().DeleteMovie(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMovieNotFound
		}
		return s.storeError(ctx, "failed to delete movie", err)
	}

	slogx.FromContext(ctx).Info("movie deleted", slog.Int64("movie_id", id))
	return nil
}

// Sync imports films from the external catalogue whose titles are not yet
// stored. The title check and the inserts share one transaction. It returns
// the number of movies added.
func (s *MovieService) Sync(ctx context.Context) (int, error) {
	l := slogx.FromContext(ctx)

	films, err := s.Films.Films(ctx)
	if err != nil {
		l.Error("failed to fetch films", slog.Any("error", err))
		return 0, infraError(MsgStarWarsFetch, fmt.Errorf("%w: %w", ErrFilmSource, err))
	}

	added := 0
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		titles, err := tx.Movies().ListTitles(ctx)
		if err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(titles))
		for _, t := range titles {
			seen[t] = struct{}{}
		}

		for _, f := range films {
			if _, ok := seen[f.Title]; ok {
				continue
			}
			if _, err := tx.Movies().CreateMovie(ctx, f); err != nil {
				return err
			}
			seen[f.Title] = struct{}{}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, s.storeError(ctx, "failed to save synced movies", err)
	}

	l.Info("movies synced", slog.Int("fetched", len(films)), slog.Int("added", added))
	return added, nil
}

func (s *MovieService) storeError(ctx context.Context, msg string, err error) error {
	slogx.FromContext(ctx).Error(msg, slog.Any("error", err))
	return infraError(MsgMovieStore, err)
}

func movieFromInput(in domain.MovieInput) domain.Movie {
	return domain.Movie{
		Title:       in.Title,
		Director:    in.Director,
		ReleaseYear: in.ReleaseYear,
		Description: in.Description,
	}
}
