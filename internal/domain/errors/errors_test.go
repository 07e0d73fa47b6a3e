package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	if ErrValidation == nil {
		t.Error("ErrValidation should not be nil")
	}
	if ErrInvalidCredentials == nil {
		t.Error("ErrInvalidCredentials should not be nil")
	}
	if ErrDuplicateUser == nil {
		t.Error("ErrDuplicateUser should not be nil")
	}
	if ErrStorageUnavailable == nil {
		t.Error("ErrStorageUnavailable should not be nil")
	}
}

func TestAuthReasonOf(t *testing.T) {
	t.Parallel()

	reason, ok := AuthReasonOf(NewAuthError(ReasonExpired))
	if !ok || reason != ReasonExpired {
		t.Fatalf("expected (expired, true), got (%q, %v)", reason, ok)
	}

	wrapped := fmt.Errorf("verify token: %w", NewAuthError(ReasonMalformed))
	reason, ok = AuthReasonOf(wrapped)
	if !ok || reason != ReasonMalformed {
		t.Fatalf("expected reason through wrapping, got (%q, %v)", reason, ok)
	}

	if _, ok := AuthReasonOf(errors.New("plain")); ok {
		t.Fatal("plain error should not carry an auth reason")
	}
}
