package auth

import (
	"context"
	"strings"
)

// Context is the per-request authentication result threaded through
// every resolver. Unauthenticated requests get the zero value.
type Context struct {
	IsAuth bool
	UserID uint
}

// FromAuthorizationHeader builds the authentication context from the raw
// Authorization header value, expected as "Bearer <token>". It reads
// nothing but the header: a missing header, an empty token segment or a
// failed verification all degrade to the unauthenticated context.
func FromAuthorizationHeader(issuer *TokenIssuer, header string) Context {
	if header == "" {
		return Context{}
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return Context{}
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		return Context{}
	}

	return Context{IsAuth: true, UserID: userID}
}

type contextKey struct{}

// NewContext stashes the authentication context in a request context.
func NewContext(ctx context.Context, ac Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

// FromContext retrieves the authentication context from a request
// context. Absent means unauthenticated.
func FromContext(ctx context.Context) Context {
	if ac, ok := ctx.Value(contextKey{}).(Context); ok {
		return ac
	}
	return Context{}
}
