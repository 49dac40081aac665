package docid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Separator joins the collection and key segments of a handle.
const Separator = "/"

const (
	// MaxKeyLength is the maximum length of a document key in bytes.
	MaxKeyLength = 254

	// MaxCollectionLength is the maximum length of a collection name in bytes.
	MaxCollectionLength = 256
)

var (
	// ErrInvalidKey is returned when a document key is empty or uses
	// characters outside the key alphabet.
	ErrInvalidKey = errors.New("invalid document key")

	// ErrInvalidCollection is returned when a collection name is malformed.
	ErrInvalidCollection = errors.New("invalid collection name")

	// ErrInvalidHandle is returned when a handle is not "{collection}/{key}".
	ErrInvalidHandle = errors.New("invalid document handle")
)

var (
	keyPattern        = regexp.MustCompile(`^[a-zA-Z0-9_\-:.@()+,=;$!*'%]+$`)
	collectionPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
)

func keyRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("cannot be empty"),
		validation.Length(1, MaxKeyLength).Error(
			fmt.Sprintf("must be at most %d bytes", MaxKeyLength)),
		validation.Match(keyPattern).Error("contains invalid characters"),
	}
}

func collectionRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("cannot be empty"),
		validation.Length(1, MaxCollectionLength).Error(
			fmt.Sprintf("must be at most %d bytes", MaxCollectionLength)),
		validation.Match(collectionPattern).Error("contains invalid characters"),
	}
}

// ValidateKey returns an error wrapping ErrInvalidKey if key is not a valid
// document key. Keys never contain the handle separator.
func ValidateKey(key string) error {
	if strings.Contains(key, Separator) {
		return fmt.Errorf("%w %q: must not contain %q", ErrInvalidKey, key, Separator)
	}
	if err := validation.Validate(key, keyRules()...); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidKey, key, err)
	}
	return nil
}

// ValidateCollection returns an error wrapping ErrInvalidCollection if name
// is not a valid collection name.
func ValidateCollection(name string) error {
	if err := validation.Validate(name, collectionRules()...); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidCollection, name, err)
	}
	return nil
}

// NewKey generates a random document key on the client.
// The key is a UUID (v4) without hyphens, which is always a valid key.
func NewKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
