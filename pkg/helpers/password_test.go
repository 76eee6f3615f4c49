package helpers

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected non-matching password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (salt)")
	}
	if !CheckPassword(h1, "same-password") || !CheckPassword(h2, "same-password") {
		t.Error("both salted hashes should verify against the original password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("malformed stored hash must verify as false")
	}
}
