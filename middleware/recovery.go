package middleware

import (
	"log/slog"
	"net/http"

	"inotebook/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a panic into a generic 500.
func RecoveryMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				utils.TrackError("http", "panic")
				log.ErrorContext(c, "panic recovered",
					slog.Any("panic", err),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", c.GetString(ContextRequestID)),
				)
				if !c.Writer.Written() {
					utils.AbortWithError(c, http.StatusInternalServerError, "Internal server Error")
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
