package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	valid := domain.SignupInput{
		Username: "alice",
		Email:    "validUser1@test.com",
		Password: "Passw0rd",
		RoleID:   domain.RoleIDRegular,
	}

	tests := []struct {
		name   string
		mutate func(*domain.SignupInput)
		want   string
	}{
		{"valid", func(*domain.SignupInput) {}, ""},
		{"empty username", func(in *domain.SignupInput) { in.Username = "" }, "Username is required."},
		{"blank username", func(in *domain.SignupInput) { in.Username = "   " }, "Username is required."},
		{"username too short", func(in *domain.SignupInput) { in.Username = "ab" }, "Username must contain between 3 and 20 characters."},
		{"username too long", func(in *domain.SignupInput) { in.Username = strings.Repeat("a", 21) }, "Username must contain between 3 and 20 characters."},
		{"username at max", func(in *domain.SignupInput) { in.Username = strings.Repeat("a", 20) }, ""},
		{"empty email", func(in *domain.SignupInput) { in.Email = "" }, "Email is required."},
		{"not an email", func(in *domain.SignupInput) { in.Email = "not-an-email" }, "Invalid Email."},
		{"padded email", func(in *domain.SignupInput) { in.Email = " a@test.com" }, "Invalid Email."},
		{"display name", func(in *domain.SignupInput) { in.Email = "Alice <a@test.com>" }, "Invalid Email."},
		{"address list", func(in *domain.SignupInput) { in.Email = "a@test.com, b@test.com" }, "Invalid Email."},
		{"empty password", func(in *domain.SignupInput) { in.Password = "" }, "Password is required."},
		{"blank password", func(in *domain.SignupInput) { in.Password = "         " }, "Password is required."},
		{"short password", func(in *domain.SignupInput) { in.Password = "short1" }, "Password must contain at least 8 characters."},
		{"no digit", func(in *domain.SignupInput) { in.Password = "alllettersnodigit" }, "Password must include at least one number."},
		{"no letter", func(in *domain.SignupInput) { in.Password = "12345678" }, "Password must include at least one letter."},
		{"username checked first", func(in *domain.SignupInput) {
			in.Username = "ab"
			in.Email = "bad"
			in.Password = "x"
		}, "Username must contain between 3 and 20 characters."},
		{"email before password", func(in *domain.SignupInput) {
			in.Email = "bad"
			in.Password = "x"
		}, "Invalid Email."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := ValidateSignup(in)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestValidateMovie(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := domain.MovieInput{Title: "Alien", Director: "Ridley Scott", ReleaseYear: "1979"}

	tests := []struct {
		name   string
		mutate func(*domain.MovieInput)
		want   string
	}{
		{"valid", func(*domain.MovieInput) {}, ""},
		{"missing title", func(in *domain.MovieInput) { in.Title = " " }, "Title is required."},
		{"short title", func(in *domain.MovieInput) { in.Title = "A" }, "Title must be at least 2 characters long."},
		{"missing director", func(in *domain.MovieInput) { in.Director = "" }, "Director is required."},
		{"short director", func(in *domain.MovieInput) { in.Director = "R" }, "Director must be at least 2 characters long."},
		{"missing year", func(in *domain.MovieInput) { in.ReleaseYear = "" }, "Release Year is required."},
		{"year not a number", func(in *domain.MovieInput) { in.ReleaseYear = "nineteen" }, "Release Year must be a valid year."},
		{"year before cinema", func(in *domain.MovieInput) { in.ReleaseYear = "1887" }, "Release Year must be a valid year."},
		{"first year", func(in *domain.MovieInput) { in.ReleaseYear = "1888" }, ""},
		{"next year", func(in *domain.MovieInput) { in.ReleaseYear = "2027" }, ""},
		{"too far ahead", func(in *domain.MovieInput) { in.ReleaseYear = "2028" }, "Release Year must be a valid year."},
		{"title checked first", func(in *domain.MovieInput) {
			in.Title = ""
			in.ReleaseYear = "x"
		}, "Title is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := ValidateMovie(in, now)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			require.EqualError(t, err, tt.want)
		})
	}
}
