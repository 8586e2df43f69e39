package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/wyattgill9/utils/api"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{api.ErrExecutorClosed, api.ErrInvalidArgument, api.ErrNotSupported}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v matches %v", a, b)
			}
		}
	}
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", api.ErrExecutorClosed)
	if !errors.Is(wrapped, api.ErrExecutorClosed) {
		t.Fatal("wrapped sentinel not recognized by errors.Is")
	}
}

func TestStructuredError(t *testing.T) {
	e := api.NewError(api.ErrCodeInvalidArgument, "capacity must be positive")
	if e.Error() != "capacity must be positive" {
		t.Fatalf("unexpected message: %q", e.Error())
	}
	e.WithContext("capacity", -1)
	if e.Context["capacity"] != -1 {
		t.Fatal("WithContext did not record value")
	}
	if e.Code != api.ErrCodeInvalidArgument {
		t.Fatalf("unexpected code: %v", e.Code)
	}
}

func TestStructuredErrorNilContext(t *testing.T) {
	e := &api.Error{Code: api.ErrCodeInternal, Message: "boom"}
	e.WithContext("op", "enqueue")
	if e.Context["op"] != "enqueue" {
		t.Fatal("WithContext must allocate missing context map")
	}
}
