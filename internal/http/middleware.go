package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashishjh/contactbook/internal/auth"
)

// AuthContextMiddleware verifies the bearer token, if any, and stashes
// the resulting authentication context in the request context. It never
// rejects a request itself: resolvers decide what unauthenticated
// callers may do.
func AuthContextMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := auth.FromAuthorizationHeader(issuer, c.GetHeader("Authorization"))
		c.Request = c.Request.WithContext(auth.NewContext(c.Request.Context(), ac))
		c.Next()
	}
}

// CORSMiddleware allows browser clients on other origins to call the
// API, mirroring the permissive CORS setup of the frontend dev server.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
