package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moscow89er/mesto-api/internal/apperror"
)

const msgInternal = "An error has occurred on the server"

// Errors is the terminal error normalizer. Handlers and gates attach errors
// to the gin context instead of writing responses; this middleware turns the
// last one into a uniform {"message": ...} body. Anything that is not a
// recognized apperror is logged and masked as a 500.
func Errors(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind != apperror.Internal {
			c.JSON(appErr.StatusCode(), gin.H{"message": appErr.Message})
			return
		}

		logger.ErrorContext(c.Request.Context(), "unhandled error",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
	}
}
