package common

import (
	"errors"
	"testing"
)

func TestValidatorFirstMessage(t *testing.T) {
	v := NewValidator()
	v.Check(false, "one", "first message")
	v.Check(false, "two", "second message")
	v.Check(false, "one", "overwritten message")

	if v.Valid() {
		t.Fatal("expected validator to be invalid")
	}

	err := v.ValidationError()

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	if got := validationErr.First(); got != "first message" {
		t.Errorf("expected first message, got %q", got)
	}

	if got := validationErr.Errors["one"]; got != "first message" {
		t.Errorf("expected first message for a repeated field, got %q", got)
	}
}

func TestValidatorValid(t *testing.T) {
	v := NewValidator()
	v.Check(true, "field", "message")

	if !v.Valid() {
		t.Error("expected validator to be valid")
	}
}
