package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a token can fail verification:
// bad signature, malformed input, or past expiry. Callers only branch
// on validity, never on the failure mode.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the token subject alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// TokenIssuer signs and verifies bearer tokens with a process-wide
// secret loaded at startup. The same secret must verify what was
// issued.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret
// and token lifetime.
func NewTokenIssuer(secret []byte, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, expiry: expiry}
}

// Issue produces a signed token carrying the user id and email, expiring
// after the configured lifetime.
func (t *TokenIssuer) Issue(userID uint, email string) (string, error) {
	return t.IssueAt(userID, email, time.Now())
}

// IssueAt issues a token as of an explicit time. Tests use this to mint
// already-expired tokens.
func (t *TokenIssuer) IssueAt(userID uint, email string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
		UserID: userID,
		Email:  email,
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded user id.
// It is total over invalid input: any verification failure yields
// ErrInvalidToken rather than a panic or a distinguishable cause.
func (t *TokenIssuer) Verify(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
