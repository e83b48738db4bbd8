package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)
	subject := "user@example.com"

	tok, exp, err := m.GenerateToken(subject)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	claims, err := m.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Subject != subject {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, subject)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: -1 * time.Second}

	tok, _, err := m.GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := m.ParseToken(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := &JWTManager{Secret: []byte("right-secret"), TTL: time.Hour}
	verifier := &JWTManager{Secret: []byte("wrong-secret"), TTL: time.Hour}

	tok, _, err := issuer.GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := verifier.ParseToken(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("k"), TTL: time.Hour}
	if _, err := m.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
