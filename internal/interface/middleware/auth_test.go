package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(CtxSubjectKey)})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body.Detail
}

func TestAuthMissingHeader(t *testing.T) {
	r := newAuthRouter(&helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour})

	rec := doRequest(t, r, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := detailOf(t, rec); got != "Invalid authorization code." {
		t.Fatalf("detail = %q", got)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	r := newAuthRouter(&helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour})

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer", "Bearer "} {
		rec := doRequest(t, r, header)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("header %q: status = %d, want 403", header, rec.Code)
		}
		if got := detailOf(t, rec); got != "Invalid authorization code." {
			t.Fatalf("header %q: detail = %q", header, got)
		}
	}
}

func TestAuthInvalidToken(t *testing.T) {
	r := newAuthRouter(&helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour})

	rec := doRequest(t, r, "Bearer garbage.token.value")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := detailOf(t, rec); got != "Invalid token or expired token" {
		t.Fatalf("detail = %q", got)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	issuer := &helpers.JWTManager{Secret: []byte("s"), TTL: -1 * time.Minute}
	tok, _, err := issuer.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := newAuthRouter(&helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour})
	rec := doRequest(t, r, "Bearer "+tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := detailOf(t, rec); got != "Invalid token or expired token" {
		t.Fatalf("detail = %q", got)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	issuer := &helpers.JWTManager{Secret: []byte("other"), TTL: time.Hour}
	tok, _, err := issuer.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := newAuthRouter(&helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour})
	rec := doRequest(t, r, "Bearer "+tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	tok, _, err := jwt.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := newAuthRouter(jwt)
	rec := doRequest(t, r, "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Subject string `json:"subject"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Subject != "user@example.com" {
		t.Fatalf("subject = %q", body.Subject)
	}
}
