package errors

import (
	"fmt"
	"testing"
)

func TestDeckError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeMissingHandle, "handle missing")
	if err.Code != ErrCodeMissingHandle {
		t.Errorf("expected code %s, got %s", ErrCodeMissingHandle, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeDeckInvalid, "bad deck")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeDeckInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeEmptyDeck) {
		t.Error("Is should return false for non-matching code")
	}

	// Codes survive fmt.Errorf wrapping
	outer := fmt.Errorf("loading: %w", wrapped)
	if GetCode(outer) != ErrCodeDeckInvalid {
		t.Errorf("expected code %s through wrapping, got %s", ErrCodeDeckInvalid, GetCode(outer))
	}

	// Test WithDetail
	detailed := err.WithDetail("handle", "nextBtn")
	if detailed.Details["handle"] != "nextBtn" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := MissingHandle("slide-counter")
	if err.Code != ErrCodeMissingHandle {
		t.Errorf("expected code %s, got %s", ErrCodeMissingHandle, err.Code)
	}
	if err.Details["handle"] != "slide-counter" {
		t.Error("MissingHandle should include handle detail")
	}

	err = EmptyDeck("talk.md")
	if err.Code != ErrCodeEmptyDeck {
		t.Errorf("expected code %s, got %s", ErrCodeEmptyDeck, err.Code)
	}
	if Details(fmt.Errorf("wrap: %w", err))["source"] != "talk.md" {
		t.Error("Details should find the source through wrapping")
	}

	if Is(nil, ErrCodeEmptyDeck) {
		t.Error("nil error should not match any code")
	}
}
