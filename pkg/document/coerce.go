package document

import (
	"fmt"

	"github.com/spf13/cast"
)

// toBool converts a loosely-typed flag value to a bool.
// Strings that are not recognized booleans are true when non-empty, numbers
// are true when non-zero.
func toBool(v any) (bool, error) {
	if b, err := cast.ToBoolE(v); err == nil {
		return b, nil
	}

	if s, ok := v.(string); ok {
		return s != "", nil
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f != 0, nil
	}
	return false, fmt.Errorf("%w: cannot use %T as a flag", ErrInvalidValue, v)
}

// toRevision converts a revision value to its opaque string form.
func toRevision(v any) (string, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: cannot use %T as a revision", ErrInvalidValue, v)
	}
	return s, nil
}
