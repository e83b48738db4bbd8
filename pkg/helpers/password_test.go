package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "password" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CompareHashAndPassword(hash, "password") {
		t.Fatal("expected matching password to verify")
	}
	if CompareHashAndPassword(hash, "wrong") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestCompareHashAndPassword_BadDigest(t *testing.T) {
	t.Parallel()

	if CompareHashAndPassword("not-a-bcrypt-digest", "password") {
		t.Fatal("expected malformed digest to fail verification")
	}
}
