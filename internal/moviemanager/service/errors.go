package service

import "fmt"

// Kind classifies an expected, user-facing failure.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuthentication
	KindAuthorization
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a business outcome the caller can act on. Message is safe to
// show to clients as is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches another *Error of the same kind. A target with a message must
// also match on the message, so errors.Is(err, ErrAlreadyRegistered) is exact
// while errors.Is(err, ErrValidation) matches any validation failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Kind-only sentinels for errors.Is checks.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrAuthorization  = &Error{Kind: KindAuthorization}
	ErrNotFound       = &Error{Kind: KindNotFound}
)

var (
	ErrAlreadyRegistered  = &Error{Kind: KindConflict, Message: "User already registered."}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found."}
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "User and/or Password are incorrect."}
	ErrPasswordTooLong    = &Error{Kind: KindValidation, Message: "Password must contain at most 72 bytes."}
	ErrMovieNotFound      = &Error{Kind: KindNotFound, Message: "Movie not found."}
)

// Stable messages for wrapped infrastructure failures.
const (
	MsgGetUser       = "Error while getting user information."
	MsgCreateUser    = "Error while creating new user."
	MsgIssueToken    = "Error while generating token."
	MsgMovieStore    = "Error while accessing movies."
	MsgStarWarsFetch = "Error while getting Star Wars movies."
)

// InfrastructureError wraps an unexpected store, hashing or signing failure.
// Error() returns only the stable message; the cause is reachable through
// errors.Unwrap for logging.
type InfrastructureError struct {
	Message string
	Err     error
}

func (e *InfrastructureError) Error() string { return e.Message }

func (e *InfrastructureError) Unwrap() error { return e.Err }

// GoString keeps the cause visible in %#v output for logs.
func (e *InfrastructureError) GoString() string {
	return fmt.Sprintf("InfrastructureError{%q: %v}", e.Message, e.Err)
}

func infraError(msg string, err error) error {
	return &InfrastructureError{Message: msg, Err: err}
}
