package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store/drivers/sqlite"
	"github.com/aussiebroadwan/moviemanager/pkg/cryptox"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newCredentialService(st store.Store) *CredentialService {
	return &CredentialService{
		Store:  st,
		Hasher: cryptox.NewPasswordHasher(bcrypt.MinCost),
	}
}

func aliceSignup() domain.SignupInput {
	return domain.SignupInput{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "Secret12",
		RoleID:   domain.RoleIDRegular,
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newCredentialService(st)

	username, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	u, err := svc.Lookup(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice@test.com", u.Email)
	require.Equal(t, domain.RoleRegular, u.Role.Name)
	require.NotEqual(t, "Secret12", u.PasswordHash)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$2"))

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Signup(ctx, aliceSignup())
		require.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("username match is case sensitive", func(t *testing.T) {
		in := aliceSignup()
		in.Username = "Alice"
		_, err := svc.Signup(ctx, in)
		require.NoError(t, err)
	})

	t.Run("invalid input stores nothing", func(t *testing.T) {
		in := aliceSignup()
		in.Username = "carol"
		in.Password = "short1"
		_, err := svc.Signup(ctx, in)
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Lookup(ctx, "carol")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("password over bcrypt limit", func(t *testing.T) {
		in := aliceSignup()
		in.Username = "dave"
		in.Password = strings.Repeat("a1", 40)
		_, err := svc.Signup(ctx, in)
		require.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("unknown role id", func(t *testing.T) {
		in := aliceSignup()
		in.Username = "erin"
		in.RoleID = 7
		_, err := svc.Signup(ctx, in)

		var infra *InfrastructureError
		require.ErrorAs(t, err, &infra)
		require.Equal(t, MsgCreateUser, infra.Error())
	})
}

func TestSignup_StoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	t.Run("lookup fails", func(t *testing.T) {
		st := newMockStore()
		st.users.On("GetUserByUsername", mock.Anything, "alice").Return(domain.User{}, boom)

		_, err := newCredentialService(st).Signup(ctx, aliceSignup())

		var infra *InfrastructureError
		require.ErrorAs(t, err, &infra)
		require.Equal(t, MsgGetUser, infra.Message)
		require.ErrorIs(t, err, boom)
		st.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("insert fails", func(t *testing.T) {
		st := newMockStore()
		st.users.On("GetUserByUsername", mock.Anything, "alice").Return(domain.User{}, store.ErrNotFound)
		st.users.On("CreateUser", mock.Anything, mock.Anything).Return(boom)

		_, err := newCredentialService(st).Signup(ctx, aliceSignup())

		var infra *InfrastructureError
		require.ErrorAs(t, err, &infra)
		require.Equal(t, MsgCreateUser, infra.Message)
		require.ErrorIs(t, err, boom)
	})

	t.Run("insert loses race", func(t *testing.T) {
		st := newMockStore()
		st.users.On("GetUserByUsername", mock.Anything, "alice").Return(domain.User{}, store.ErrNotFound)
		st.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "alice" && u.RoleID == domain.RoleIDRegular && u.ID != ""
		})).Return(store.ErrAlreadyExists)

		_, err := newCredentialService(st).Signup(ctx, aliceSignup())
		require.ErrorIs(t, err, ErrAlreadyRegistered)
		st.users.AssertExpectations(t)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newCredentialService(newTestStore(t))

	_, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, domain.Credentials{Username: "alice", Password: "Secret12"})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, domain.RoleRegular, u.Role.Name)

	_, wrongPassword := svc.Authenticate(ctx, domain.Credentials{Username: "alice", Password: "Secret13"})
	_, unknownUser := svc.Authenticate(ctx, domain.Credentials{Username: "mallory", Password: "Secret12"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthenticate_CorruptHash(t *testing.T) {
	st := newMockStore()
	st.users.On("GetUserByUsername", mock.Anything, "alice").
		Return(domain.User{ID: "u1", Username: "alice", PasswordHash: "not-bcrypt"}, nil)

	_, err := newCredentialService(st).Authenticate(context.Background(),
		domain.Credentials{Username: "alice", Password: "Secret12"})

	var infra *InfrastructureError
	require.ErrorAs(t, err, &infra)
	require.ErrorIs(t, err, cryptox.ErrMalformedHash)
}
