package graph

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler returns the gin handler serving the GraphQL endpoint. The
// underlying handler reads the request context, so the identity set by
// the auth middleware is visible to every resolver.
func NewHandler(schema graphql.Schema) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: false,
	})
	return gin.WrapH(h)
}
