package service

import (
	"context"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/stretchr/testify/mock"
)

// mockStore hands out mock repositories so failure paths can be driven
// without a database.
type mockStore struct {
	users  *mockUsers
	movies *mockMovies
}

func newMockStore() *mockStore {
	return &mockStore{users: &mockUsers{}, movies: &mockMovies{}}
}

func (s *mockStore) Users() store.Users     { return s.users }
func (s *mockStore) Roles() store.Roles     { return nil }
func (s *mockStore) Movies() store.Movies   { return s.movies }
func (s *mockStore) ApplyMigrations() error { return nil }
func (s *mockStore) Close() error           { return nil }

func (s *mockStore) Ping(context.Context) error { return nil }

func (s *mockStore) Tx(context.Context) (store.Tx, error) { return mockTx{s}, nil }

func (s *mockStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return fn(mockTx{s})
}

type mockTx struct{ *mockStore }

func (mockTx) Commit() error   { return nil }
func (mockTx) Rollback() error { return nil }

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUsers) CreateUser(ctx context.Context, u domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUsers) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockMovies struct{ mock.Mock }

func (m *mockMovies) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]domain.Movie)
	return movies, args.Error(1)
}

func (m *mockMovies) GetMovieByID(ctx context.Context, id int64) (domain.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Movie), args.Error(1)
}

func (m *mockMovies) GetMovieByData(ctx context.Context, title, director, releaseYear string) (domain.Movie, error) {
	args := m.Called(ctx, title, director, releaseYear)
	return args.Get(0).(domain.Movie), args.Error(1)
}

func (m *mockMovies) CreateMovie(ctx context.Context, mv domain.Movie) (domain.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(domain.Movie), args.Error(1)
}

func (m *mockMovies) UpdateMovie(ctx context.Context, id int64, mv domain.Movie) (domain.Movie, error) {
	args := m.Called(ctx, id, mv)
	return args.Get(0).(domain.Movie), args.Error(1)
}

func (m *mockMovies) DeleteMovie(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMovies) ListTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	titles, _ := args.Get(0).([]string)
	return titles, args.Error(1)
}
