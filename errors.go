package gettext

import "errors"

// ErrMissingJoinSeparator is returned when an Array has no elements.
var ErrMissingJoinSeparator = errors.New("missing join separator")

// ErrNoVariantMatched indicates that a decoded tree has no Value shape.
var ErrNoVariantMatched = errors.New("data did not match any message variant")

// ErrMissingCatalog is returned by loaders when no catalog could be found.
var ErrMissingCatalog = errors.New("gettext: no catalog found")

// FormatError wraps a placeholder formatter diagnostic.
type FormatError struct {
	Diagnostic string
}

func (e *FormatError) Error() string {
	return e.Diagnostic
}

// ErrNilConfig is returned when building from a nil Config.
var ErrNilConfig = errors.New("gettext: nil config")

// ErrUnknownValue is returned for a Value that is not one of the declared
// variants, such as a pointer to one.
var ErrUnknownValue = errors.New("gettext: unknown value type")
