package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/vexine/backend/internal/types"
	"github.com/rs/zerolog"
)

// ErrorHandler recovers from panics in later handlers, logs them, and answers
// with a JSON error instead of dropping the connection.
func ErrorHandler(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error().
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Str("request_id", GetRequestID(c)).
					Msg("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal server error"})
			}
		}()

		c.Next()
	}
}
