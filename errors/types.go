package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Deck source errors
	ErrCodeDeckNotFound ErrorCode = "DECK_NOT_FOUND"
	ErrCodeDeckInvalid  ErrorCode = "DECK_INVALID"
	ErrCodeEmptyDeck    ErrorCode = "EMPTY_DECK"

	// Render surface errors
	ErrCodeMissingHandle ErrorCode = "MISSING_HANDLE"

	// Host errors
	ErrCodeServerFailed ErrorCode = "SERVER_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// DeckError represents a structured error with context
type DeckError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *DeckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DeckError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *DeckError) WithDetail(key string, value interface{}) *DeckError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *DeckError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new DeckError
func New(code ErrorCode, message string) *DeckError {
	return &DeckError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a DeckError
func Wrap(err error, code ErrorCode, message string) *DeckError {
	return &DeckError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific DeckError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	deckErr, ok := err.(*DeckError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return deckErr.Code
}

// Details returns the structured details attached to the first DeckError in
// the chain, or nil.
func Details(err error) map[string]interface{} {
	for err != nil {
		if deckErr, ok := err.(*DeckError); ok {
			return deckErr.Details
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}
