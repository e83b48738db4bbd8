package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
	"github.com/shashankrushiya/bookstore-api/pkg/response"
)

const (
	// Context keys set for downstream handlers: the decoded subject is the
	// sole authorized identity signal they see.
	CtxSubjectKey = "subject"
	CtxTokenKey   = "token"

	detailMissingHeader = "Invalid authorization code."
	detailInvalidToken  = "Invalid token or expired token"
)

// Auth validates the bearer token on every request. Verification is a pure
// function of (token, current time, signing secret); no session store is
// consulted and nothing is carried across requests.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.AbortDetail(c, http.StatusForbidden, detailMissingHeader)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortDetail(c, http.StatusForbidden, detailInvalidToken)
			return
		}
		c.Set(CtxSubjectKey, claims.Subject)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. A missing header and a malformed one are the same failure.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
