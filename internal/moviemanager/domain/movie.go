package domain

import "time"

type Movie struct {
	ID          int64
	Title       string
	Director    string
	ReleaseYear string // four digit year, validated on write
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MovieInput is a create or update payload before validation.
type MovieInput struct {
	Title       string
	Director    string
	ReleaseYear string
	Description string
}
