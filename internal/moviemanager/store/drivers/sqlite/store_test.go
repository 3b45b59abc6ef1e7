package sqlite_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store/drivers/sqlite"
	"github.com/aussiebroadwan/moviemanager/pkg/idx"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore("file::memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMigrations_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
}

func TestRoles_Seeded(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	roles, err := s.Roles().ListAll(ctx)
	require.NoError(t, err)

	want := []domain.Role{
		{ID: domain.RoleIDAdmin, Name: domain.RoleAdmin},
		{ID: domain.RoleIDRegular, Name: domain.RoleRegular},
	}
	if diff := cmp.Diff(want, roles); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}

	_, err = s.Roles().GetRoleByID(ctx, 99)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_CreateAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$04$hash",
		RoleID:       domain.RoleIDAdmin,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	want := u
	want.Role = domain.Role{ID: domain.RoleIDAdmin, Name: domain.RoleAdmin}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(domain.User{}, "CreatedAt")); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
	require.False(t, got.CreatedAt.IsZero())

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := s.Users().GetUserByUsername(ctx, "Alice")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		bad := u
		bad.ID = idx.New().String()
		bad.Username = "bob"
		bad.RoleID = 42
		err := s.Users().CreateUser(ctx, bad)
		require.Error(t, err)
		require.NotErrorIs(t, err, store.ErrAlreadyExists)
	})

	n, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestMovies_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	movies := s.Movies()

	created, err := movies.CreateMovie(ctx, domain.Movie{
		Title:       "A New Hope",
		Director:    "George Lucas",
		ReleaseYear: "1977",
		Description: "It is a period of civil war.",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	found, err := movies.GetMovieByData(ctx, "A New Hope", "George Lucas", "1977")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	_, err = movies.GetMovieByData(ctx, "A New Hope", "George Lucas", "1978")
	require.ErrorIs(t, err, store.ErrNotFound)

	updated, err := movies.UpdateMovie(ctx, created.ID, domain.Movie{
		Title:       "Star Wars",
		Director:    "George Lucas",
		ReleaseYear: "1977",
	})
	require.NoError(t, err)
	require.Equal(t, "Star Wars", updated.Title)
	require.Empty(t, updated.Description)

	_, err = movies.UpdateMovie(ctx, created.ID+100, domain.Movie{Title: "x"})
	require.ErrorIs(t, err, store.ErrNotFound)

	titles, err := movies.ListTitles(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Star Wars"}, titles)

	require.NoError(t, movies.DeleteMovie(ctx, created.ID))
	require.ErrorIs(t, movies.DeleteMovie(ctx, created.ID), store.ErrNotFound)

	_, err = movies.GetMovieByID(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := movies.ListMovies(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Movies().CreateMovie(ctx, domain.Movie{
			Title: "The Empire Strikes Back", Director: "Irvin Kershner", ReleaseYear: "1980",
		}); err != nil {
			return err
		}
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	all, err := s.Movies().ListMovies(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
