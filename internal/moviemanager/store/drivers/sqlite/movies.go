package sqlite

import (
	"context"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store/drivers/sqlite/gen"
)

type moviesRepo struct {
	q *gen.Queries
}

func (r *moviesRepo) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.q.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, len(rows))
	for i, row := range rows {
		movies[i] = mapMovie(row)
	}
	return movies, nil
}

func (r *moviesRepo) GetMovieByID(ctx context.Context, id int64) (domain.Movie, error) {
	row, err := r.q.GetMovieByID(ctx, id)
	if err != nil {
		return domain.Movie{}, mapNotFound(err)
	}
	return mapMovie(row), nil
}

func (r *moviesRepo) GetMovieByData(
	ctx context.Context,
	title, director, releaseYear string,
) (domain.Movie, error) {
	row, err := r.q.GetMovieByData(ctx, gen.GetMovieByDataParams{
		Title:       title,
		Director:    director,
		ReleaseYear: releaseYear,
	})
	if err != nil {
		return domain.Movie{}, mapNotFound(err)
	}
	return mapMovie(row), nil
}

func (r *moviesRepo) CreateMovie(ctx context.Context, m domain.Movie) (domain.Movie, error) {
	id, err := r.q.CreateMovie(ctx, gen.CreateMovieParams{
		Title:       m.Title,
		Director:    m.Director,
		ReleaseYear: m.ReleaseYear,
		Description: m.Description,
	})
	if err != nil {
		return domain.Movie{}, err
	}
	return r.GetMovieByID(ctx, id)
}

func (r *moviesRepo) UpdateMovie(ctx context.Context, id int64, m domain.Movie) (domain.Movie, error) {
	n, err := r.q.UpdateMovie(ctx, gen.UpdateMovieParams{
		Title:       m.Title,
		Director:    m.Director,
		ReleaseYear: m.ReleaseYear,
		Description: m.Description,
		ID:          id,
	})
	if err != nil {
		return domain.Movie{}, err
	}
	if n == 0 {
		return domain.Movie{}, store.ErrNotFound
	}
	return r.GetMovieByID(ctx, id)
}

func (r *moviesRepo) DeleteMovie(ctx context.Context, id int64) error {
	n, err := r.q.DeleteMovie(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *moviesRepo) ListTitles(ctx context.Context) ([]string, error) {
	return r.q.ListMovieTitles(ctx)
}
