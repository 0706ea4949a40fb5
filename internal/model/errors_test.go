package model

import (
	"errors"
	"testing"
)

func TestErrorUnwrapsToKind(t *testing.T) {
	err := Errorf(ErrInvalidPassword, "too short")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation in chain, got %v", err)
	}
	if errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("password error must not match username kind")
	}
	if got, want := err.Error(), "invalid password: validation failed: too short"; got != want {
		t.Fatalf("unexpected message: got %q want %q", got, want)
	}
}

func TestErrorWithoutMessage(t *testing.T) {
	err := &Error{Kind: ErrNotFound}
	if err.Error() != "not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestNewUserAssignsID(t *testing.T) {
	a := NewUser("alice01", []byte("h"))
	b := NewUser("alice01", []byte("h"))
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}
