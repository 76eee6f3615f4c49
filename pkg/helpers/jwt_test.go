package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, exp, err := m.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if want := now.Add(time.Hour); !exp.Equal(want) {
		t.Fatalf("expiry mismatch: got %v want %v", exp, want)
	}

	sub, err := m.Verify(tok, now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if sub != "alice@example.com" {
		t.Fatalf("subject mismatch: got %q", sub)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, _, err := m.Issue("bob@example.com", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// still valid just before the boundary
	if _, err := m.Verify(tok, now.Add(59*time.Minute)); err != nil {
		t.Fatalf("expected valid token before expiry, got %v", err)
	}

	_, err = m.Verify(tok, now.Add(61*time.Minute))
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, _, err := NewJWTManager("right-secret", time.Hour).Issue("u@example.com", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewJWTManager("wrong-secret", time.Hour).Verify(tok, now)
	if !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", time.Hour)
	_, err := m.Verify("not.a.jwt", time.Now())
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
