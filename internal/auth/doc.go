// Package auth provides authentication for the application.
//
// Identity is carried by a signed bearer token presented on every
// request:
//
//	Authorization: Bearer <token>
//
// Tokens are issued at signup and login, verified per request, and
// never stored server-side.
//
// # Configuration
//
//	JWT_SECRET=<secret>   # Required; must stay stable across restarts
//	TOKEN_EXPIRY=24h      # Token lifetime
//	BCRYPT_COST=12        # bcrypt cost factor
//
// # Usage
//
// Initialize in entrypoint:
//
//	issuer := auth.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenExpiry)
//	authService := auth.NewService(userRepo, issuer, cfg.Auth.BcryptCost)
//
// Build the per-request context from the raw header:
//
//	ac := auth.FromAuthorizationHeader(issuer, r.Header.Get("Authorization"))
//
// Resolvers receive the context and gate on ac.IsAuth; ac.UserID scopes
// every data access to the caller's own records.
package auth
