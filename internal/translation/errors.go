package translation

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a provider is created without credentials.
var ErrMissingAPIKey = errors.New("API key not found")

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("no translation returned")

// TranslationError reports a failed translation of a single value.
type TranslationError struct {
	Text     string // the full original value
	Chunk    int    // index of the failing sentence chunk, 0 when unchunked
	Provider string
	Err      error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s translation failed (chunk %d): %v", e.Provider, e.Chunk, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
