package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *DeckError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *DeckError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DeckNotFound creates a deck source not found error
func DeckNotFound(path string) *DeckError {
	return New(ErrCodeDeckNotFound, fmt.Sprintf("deck not found: %s", path)).
		WithDetail("path", path)
}

// DeckInvalid creates an error for a deck source that cannot be parsed
func DeckInvalid(path string, cause error) *DeckError {
	return Wrap(cause, ErrCodeDeckInvalid, fmt.Sprintf("invalid deck: %s", path)).
		WithDetail("path", path)
}

// EmptyDeck creates an error for a deck without any slide
func EmptyDeck(source string) *DeckError {
	return New(ErrCodeEmptyDeck, "deck contains no slides").
		WithDetail("source", source)
}

// MissingHandle creates an error for a required render handle that is absent
func MissingHandle(handle string) *DeckError {
	return New(ErrCodeMissingHandle, fmt.Sprintf("required UI handle %q is missing", handle)).
		WithDetail("handle", handle)
}
