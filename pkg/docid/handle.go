package docid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Handle is a fully-qualified document identifier containing:
//   - Collection: the collection the document is stored in
//   - Key: the document key, unique within the collection
//
// Handles are serialized as "{collection}/{key}". The zero Handle represents
// a document that has not been stored yet.
//
// Handles are immutable once created.
type Handle struct {
	collection string
	key        string
}

// NewHandle creates a handle from its parts.
// Returns error if either part is invalid.
func NewHandle(collection, key string) (Handle, error) {
	if err := ValidateCollection(collection); err != nil {
		return Handle{}, fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	}
	if err := ValidateKey(key); err != nil {
		return Handle{}, fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	}
	return Handle{collection: collection, key: key}, nil
}

// ParseHandle parses a handle from string.
// Expected format: "{collection}/{key}" with exactly one separator and two
// non-empty segments (e.g., "users/alice").
func ParseHandle(s string) (Handle, error) {
	if s == "" {
		return Handle{}, fmt.Errorf("%w: handle string cannot be empty", ErrInvalidHandle)
	}

	parts := strings.Split(s, Separator)
	if len(parts) != 2 {
		return Handle{}, fmt.Errorf(
			"%w (expected 'collection%skey'): %s", ErrInvalidHandle, Separator, s)
	}

	return NewHandle(parts[0], parts[1])
}

// MustParseHandle parses a handle from string, panicking on error.
// This is useful for test fixtures and constants where the handle is known valid.
func MustParseHandle(s string) Handle {
	h, err := ParseHandle(s)
	if err != nil {
		panic(fmt.Sprintf("invalid handle: %s: %v", s, err))
	}
	return h
}

// Collection returns the collection segment.
func (h Handle) Collection() string {
	return h.collection
}

// Key returns the key segment.
func (h Handle) Key() string {
	return h.key
}

// IsZero returns true if this is a zero Handle.
func (h Handle) IsZero() bool {
	return h.collection == "" && h.key == ""
}

// Equal returns true if two Handles are equal.
func (h Handle) Equal(other Handle) bool {
	return h.collection == other.collection && h.key == other.key
}

// String returns the canonical string representation.
// Format: "{collection}/{key}", or "" for the zero Handle.
func (h Handle) String() string {
	if h.IsZero() {
		return ""
	}
	return h.collection + Separator + h.key
}

// MarshalJSON implements json.Marshaler.
// Handles are serialized as strings: "users/alice"
func (h Handle) MarshalJSON() ([]byte, error) {
	if h.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(h.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Handle) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = Handle{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("handle must be a string: %w", err)
	}
	if s == "" {
		*h = Handle{}
		return nil
	}
	parsed, err := ParseHandle(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
// Supports string and []byte input from database.
func (h *Handle) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		*h = Handle{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Handle", value)
	}

	if s == "" {
		*h = Handle{}
		return nil
	}
	parsed, err := ParseHandle(s)
	if err != nil {
		return fmt.Errorf("cannot scan into Handle: %w", err)
	}
	*h = parsed
	return nil
}

// Value implements driver.Valuer for database writing.
// Returns nil for zero Handle, string for valid Handle.
func (h Handle) Value() (driver.Value, error) {
	if h.IsZero() {
		return nil, nil
	}
	return h.String(), nil
}
