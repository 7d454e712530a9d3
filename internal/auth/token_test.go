package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer([]byte("super-secret"), 24*time.Hour)

	token, err := issuer.Issue(42, "alex@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("right-secret"), 24*time.Hour)
	other := NewTokenIssuer([]byte("wrong-secret"), 24*time.Hour)

	token, err := issuer.Issue(1, "a@example.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Verify_Malformed(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), 24*time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), 24*time.Hour)

	// Issued more than a day ago, so already past expiry.
	token, err := issuer.IssueAt(7, "a@example.com", time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_DistinctSubjects(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), 24*time.Hour)

	for _, id := range []uint{1, 2, 99} {
		token, err := issuer.Issue(id, "user@example.com")
		require.NoError(t, err)

		got, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}
