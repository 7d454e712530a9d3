package http

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/ashishjh/contactbook/internal/auth"
	"github.com/ashishjh/contactbook/internal/database"
)

// RouterConfig carries the router's dependencies, keeping NewRouter
// testable with injected schemas and stores.
type RouterConfig struct {
	Schema   graphql.Schema
	Issuer   *auth.TokenIssuer
	Database *database.Database
	Version  string
	GraphiQL bool
}

// NewRouter creates and configures the HTTP router. The whole API is a
// single /graphql endpoint plus a /health check.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	// Every request gets an authentication context derived from the
	// Authorization header before any resolver runs.
	router.Use(AuthContextMiddleware(cfg.Issuer))

	graphqlHandler := NewGraphQLHandler(cfg.Schema, cfg.GraphiQL)
	router.POST("/graphql", graphqlHandler)
	router.GET("/graphql", graphqlHandler)

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	return router
}
