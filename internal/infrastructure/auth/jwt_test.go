package auth

import (
	"strings"
	"testing"
	"time"

	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), "auth-test", time.Hour)

	tok, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), "auth-test", -1*time.Second)

	tok, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	reason, ok := domerrors.AuthReasonOf(err)
	if !ok || reason != domerrors.ReasonExpired {
		t.Fatalf("expected expired reason, got %v", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), "auth-test", time.Hour)

	aliceTok, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	malloryTok, err := issuer.Issue("mallory")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Splice mallory's claims onto alice's signature: a forged subject
	// without the signing secret must fail as invalid, not crash.
	aliceParts := strings.Split(aliceTok, ".")
	malloryParts := strings.Split(malloryTok, ".")
	forged := strings.Join([]string{aliceParts[0], malloryParts[1], aliceParts[2]}, ".")

	_, err = issuer.Verify(forged)
	reason, ok := domerrors.AuthReasonOf(err)
	if !ok || reason != domerrors.ReasonInvalid {
		t.Fatalf("expected invalid reason for forged token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), "auth-test", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenIssuer([]byte("wrong-secret"), "auth-test", time.Hour).Verify(tok)
	reason, ok := domerrors.AuthReasonOf(err)
	if !ok || reason != domerrors.ReasonInvalid {
		t.Fatalf("expected invalid reason, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), "auth-test", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := issuer.Verify(tok)
		reason, ok := domerrors.AuthReasonOf(err)
		if !ok || reason != domerrors.ReasonMalformed {
			t.Fatalf("expected malformed reason for %q, got %v", tok, err)
		}
	}
}
