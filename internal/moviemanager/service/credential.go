package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
	"github.com/aussiebroadwan/moviemanager/pkg/cryptox"
	"github.com/aussiebroadwan/moviemanager/pkg/idx"
	"github.com/aussiebroadwan/moviemanager/pkg/slogx"
)

// CredentialService registers users and checks their passwords.
type CredentialService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
}

// Signup validates in, rejects a taken username and stores a new user with
// a bcrypt hash of the password. The role id is stored as supplied.
// It returns the registered username.
func (s *CredentialService) Signup(ctx context.Context, in domain.SignupInput) (string, error) {
	l := slogx.FromContext(ctx)

	if err := ValidateSignup(in); err != nil {
		return "", err
	}

	_, err := s.Lookup(ctx, in.Username)
	switch {
	case err == nil:
		return "", ErrAlreadyRegistered
	case !errors.Is(err, ErrUserNotFound):
		return "", err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		l.Error("failed to hash password", slog.Any("error", err))
		return "", infraError(MsgCreateUser, err)
	}

	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		RoleID:       in.RoleID,
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same name.
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrAlreadyRegistered
		}
		l.Error("failed to create user",
			slog.Any("error", err),
			slog.String("username", in.Username),
			slog.Int64("role_id", in.RoleID),
		)
		return "", infraError(MsgCreateUser, err)
	}

	l.Info("user registered",
		slog.String("username", in.Username),
		slog.Int64("role_id", in.RoleID),
	)
	return in.Username, nil
}

// Lookup fetches a user by exact username with the role attached.
func (s *CredentialService) Lookup(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slogx.FromContext(ctx).Error("failed to get user",
			slog.Any("error", err),
			slog.String("username", username),
		)
		return domain.User{}, infraError(MsgGetUser, err)
	}
	return u, nil
}

// Authenticate returns the user whose password matches. Unknown users and
// wrong passwords fail with the same ErrInvalidCredentials.
func (s *CredentialService) Authenticate(ctx context.Context, c domain.Credentials) (domain.User, error) {
	u, err := s.Lookup(ctx, c.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	ok, err := s.Hasher.Verify(c.Password, u.PasswordHash)
	if err != nil {
		slogx.FromContext(ctx).Error("stored password hash is unusable",
			slog.Any("error", err),
			slog.String("user_id", u.ID),
		)
		return domain.User{}, infraError(MsgGetUser, err)
	}
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}
