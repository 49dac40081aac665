package document

import (
	"errors"
	"fmt"
)

// Causes wrapped by ClientError. Match them with errors.Is.
var (
	// ErrInvalidArgument is returned when an entry name is not a string.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIDAlreadySet is returned when the document handle is assigned twice.
	ErrIDAlreadySet = errors.New("document id is already set")

	// ErrKeyAlreadySet is returned when the document key is assigned twice.
	ErrKeyAlreadySet = errors.New("document key is already set")

	// ErrInvalidID is returned when a document id is not "{collection}/{key}".
	ErrInvalidID = errors.New("invalid format for document id")

	// ErrInvalidKey is returned when a document key is malformed.
	ErrInvalidKey = errors.New("invalid format for document key")

	// ErrInvalidValue is returned when a reserved entry or option holds a
	// value of the wrong type.
	ErrInvalidValue = errors.New("invalid value")
)

// ClientError is the single error kind reported for client-side validation
// failures. These are programming errors: they are never retried and the
// document is left unchanged.
type ClientError struct {
	// Op is the operation that failed, e.g. "set" or "setInternalId".
	Op string

	// Key is the entry name involved, if any.
	Key string

	Err error
}

func (e *ClientError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("document %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("document %s: %v", e.Op, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether any error in err's chain is a *ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

func clientError(op, key string, err error) error {
	return &ClientError{Op: op, Key: key, Err: err}
}
