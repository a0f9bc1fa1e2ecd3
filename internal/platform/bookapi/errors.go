package bookapi

import (
	"errors"
	"fmt"
)

// NotFoundError means the requested book does not exist on the server.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return "Book not found"
}

// ValidationError carries the server's reason for rejecting a payload.
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrInvalidID is wrapped by a FetchError when an id is not positive.
var ErrInvalidID = errors.New("book id must be a positive integer")

// FetchError covers any other failed round trip: unexpected status,
// transport failure or an unreadable body.
type FetchError struct {
	Op         string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Status != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Status)
	default:
		return e.Op
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
