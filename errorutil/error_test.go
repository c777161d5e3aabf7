package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "validation", err: Validation("Missing feature: radius_mean"), want: http.StatusBadRequest},
		{name: "internal", err: Internal("boom", nil), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}

	plain := errors.New("disk on fire")
	wrapped := Wrap(plain)
	if wrapped.Kind != KindInternal {
		t.Errorf("expected internal kind, got %v", wrapped.Kind)
	}
	if wrapped.Message != "disk on fire" {
		t.Errorf("unexpected message: %q", wrapped.Message)
	}
	if !errors.Is(wrapped, plain) {
		t.Error("wrapped error should unwrap to the cause")
	}

	v := Validation("No file selected")
	chained := fmt.Errorf("batch: %w", v)
	if got := Wrap(chained); got != v {
		t.Errorf("Wrap should return the *Error found in the chain, got %#v", got)
	}
	if !IsValidation(chained) {
		t.Error("IsValidation should see through fmt.Errorf wrapping")
	}
	if IsValidation(plain) {
		t.Error("plain error is not a validation error")
	}
}
