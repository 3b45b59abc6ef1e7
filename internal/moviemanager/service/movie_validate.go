package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// FirstFilmYear is the earliest release year accepted for a movie.
const FirstFilmYear = 1888

const msgInvalidYear = "Release Year must be a valid year."

// ValidateMovie checks title, director and release year in that order and
// reports only the first failure. now bounds the release year to next year.
func ValidateMovie(in domain.MovieInput, now time.Time) error {
	fields := []struct {
		value string
		rules []validation.Rule
	}{
		{in.Title, []validation.Rule{
			notBlank("Title is required."),
			validation.RuneLength(2, 0).Error("Title must be at least 2 characters long."),
		}},
		{in.Director, []validation.Rule{
			notBlank("Director is required."),
			validation.RuneLength(2, 0).Error("Director must be at least 2 characters long."),
		}},
		{in.ReleaseYear, []validation.Rule{
			notBlank("Release Year is required."),
			is.Int.Error(msgInvalidYear),
			validation.By(yearInRange(now.Year() + 1)),
		}},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return validationError(err.Error())
		}
	}
	return nil
}

func yearInRange(latest int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		year, err := strconv.Atoi(s)
		if err != nil || year < FirstFilmYear || year > latest {
			return errors.New(msgInvalidYear)
		}
		return nil
	}
}
