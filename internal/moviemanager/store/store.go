package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories so a transaction-scoped Store can hand out the
// same repos bound to the transaction.
type Store interface {
	Users() Users
	Roles() Roles
	Movies() Movies

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Inside fn only tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername is an exact, case-sensitive match with the role joined.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate username is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

type Roles interface {
	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)

	// ListAll returns all roles ordered by id.
	ListAll(ctx context.Context) ([]domain.Role, error)
}

type Movies interface {
	// ListMovies returns all movies ordered by id.
	ListMovies(ctx context.Context) ([]domain.Movie, error)

	GetMovieByID(ctx context.Context, id int64) (domain.Movie, error)

	// GetMovieByData finds a movie with exactly this title, director and year.
	GetMovieByData(ctx context.Context, title, director, releaseYear string) (domain.Movie, error)

	// CreateMovie inserts m and returns it with id and timestamps set.
	CreateMovie(ctx context.Context, m domain.Movie) (domain.Movie, error)

	// UpdateMovie overwrites the mutable fields of movie id.
	UpdateMovie(ctx context.Context, id int64, m domain.Movie) (domain.Movie, error)

	// DeleteMovie removes movie id. A missing id is ErrNotFound.
	DeleteMovie(ctx context.Context, id int64) error

	// ListTitles returns every stored title.
	ListTitles(ctx context.Context) ([]string, error)
}
