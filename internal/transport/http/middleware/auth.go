package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moscow89er/mesto-api/internal/apperror"
)

const msgAuthRequired = "Authorization required"

// tokenVerifier is the subset of the token service the gate needs.
type tokenVerifier interface {
	Verify(raw string) (string, error)
}

// Auth guards protected routes: it requires a "Bearer " Authorization
// header, verifies the token, and sets "userID" in the gin context. Every
// failure mode yields the same rejection; the underlying token error is
// never exposed.
func Auth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	_ = c.Error(apperror.NewUnauthorized(msgAuthRequired, nil))
	c.Abort()
}
