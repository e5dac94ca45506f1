package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidKey, "city ID must be an integer, got %q", "abc")
	want := `INVALID_KEY: city ID must be an integer, got "abc"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "rendering failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true after Wrap")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: rendering failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "city 42 not registered")
	if !Is(err, ErrCodeNotFound) {
		t.Error("Is(err, NOT_FOUND) = false, want true")
	}
	if Is(err, ErrCodeInvalidKey) {
		t.Error("Is(err, INVALID_KEY) = true, want false")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is(plain error, code) = true, want false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeEmptyTree, "no cities")); got != ErrCodeEmptyTree {
		t.Errorf("GetCode = %q, want EMPTY_TREE", got)
	}
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %q, want INTERNAL_ERROR", got)
	}
}
