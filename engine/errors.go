package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNotInTransaction     = errors.New("pgcompose: connection is not in a transaction")
	ErrAlreadyInTransaction = errors.New("pgcompose: connection is already in a transaction")
	// ErrNoopStatement is returned by One when the statement rendered as a
	// no-op and therefore cannot produce a row.
	ErrNoopStatement = errors.New("pgcompose: statement is a no-op")
	ErrMultipleRows  = errors.New("pgcompose: expected exactly one row")
)

// ErrUnsupportedScheme is returned when a connection URL names a database
// that does not accept dollar-numbered placeholders.
type ErrUnsupportedScheme struct {
	Scheme string
}

func (e *ErrUnsupportedScheme) Error() string {
	return fmt.Sprintf("pgcompose: unsupported connection scheme %q", e.Scheme)
}

// NewErrUnsupportedScheme constructs a new ErrUnsupportedScheme for the given scheme.
func NewErrUnsupportedScheme(scheme string) error {
	return &ErrUnsupportedScheme{Scheme: scheme}
}

// ErrInvalidURL is returned when a connection URL cannot be parsed.
type ErrInvalidURL struct {
	URL    string
	Reason string
	Err    error
}

func (e *ErrInvalidURL) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pgcompose: invalid connection URL: %v", e.Err)
	}
	return "pgcompose: invalid connection URL: " + e.Reason
}

func (e *ErrInvalidURL) Unwrap() error { return e.Err }

// NewErrInvalidURL constructs a new ErrInvalidURL.
func NewErrInvalidURL(raw, reason string, err error) error {
	return &ErrInvalidURL{URL: raw, Reason: reason, Err: err}
}
