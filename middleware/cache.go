package middleware

import "github.com/gin-gonic/gin"

// NoStoreMiddleware keeps tokens and private notes out of shared caches.
func NoStoreMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
