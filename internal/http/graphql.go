package http

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewGraphQLHandler wraps the schema in an HTTP handler. Errors in the
// result are logged server-side; the response body already carries them
// in the {message, locations, path} shape the frontend expects.
func NewGraphQLHandler(schema graphql.Schema, graphiql bool) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
		ResultCallbackFn: func(ctx context.Context, params *graphql.Params, result *graphql.Result, responseBody []byte) {
			for _, err := range result.Errors {
				log.Printf("-----> GraphQL Error: %s", err.Message)
			}
		},
	})

	return gin.WrapH(h)
}
