package service

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 8
)

var (
	hasDigit  = regexp.MustCompile(`[0-9]`)
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
)

// ValidateSignup checks username, email and password in that order and
// reports only the first rule that fails.
func ValidateSignup(in domain.SignupInput) error {
	fields := []struct {
		value string
		rules []validation.Rule
	}{
		{in.Username, []validation.Rule{
			notBlank("Username is required."),
			validation.RuneLength(UsernameMinLength, UsernameMaxLength).
				Error("Username must contain between 3 and 20 characters."),
		}},
		{in.Email, []validation.Rule{
			notBlank("Email is required."),
			validation.By(singleAddress),
		}},
		{in.Password, []validation.Rule{
			notBlank("Password is required."),
			validation.RuneLength(PasswordMinLength, 0).
				Error("Password must contain at least 8 characters."),
			validation.Match(hasDigit).Error("Password must include at least one number."),
			validation.Match(hasLetter).Error("Password must include at least one letter."),
		}},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return validationError(err.Error())
		}
	}
	return nil
}

// notBlank rejects empty and whitespace-only strings. validation.Required
// accepts "   ", so it is not enough on its own.
func notBlank(msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	})
}

// singleAddress accepts a bare address only: the parsed address must be the
// input verbatim, which rules out display names, angle brackets, padding and
// address lists.
func singleAddress(value interface{}) error {
	s, _ := value.(string)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return errors.New("Invalid Email.")
	}
	return nil
}
