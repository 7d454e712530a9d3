package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAuthorizationHeader(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), 24*time.Hour)

	valid, err := issuer.Issue(42, "alex@example.com")
	require.NoError(t, err)

	expired, err := issuer.IssueAt(42, "alex@example.com", time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   Context
	}{
		{
			name:   "absent header",
			header: "",
			want:   Context{},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   Context{},
		},
		{
			name:   "bearer with empty token",
			header: "Bearer ",
			want:   Context{},
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",
			want:   Context{},
		},
		{
			name:   "garbage token",
			header: "Bearer not-a-token",
			want:   Context{},
		},
		{
			name:   "expired token",
			header: "Bearer " + expired,
			want:   Context{},
		},
		{
			name:   "valid token",
			header: "Bearer " + valid,
			want:   Context{IsAuth: true, UserID: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAuthorizationHeader(issuer, tt.header)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	ac := Context{IsAuth: true, UserID: 7}

	ctx := NewContext(context.Background(), ac)
	assert.Equal(t, ac, FromContext(ctx))
}

func TestFromContext_Absent(t *testing.T) {
	got := FromContext(context.Background())
	assert.False(t, got.IsAuth)
	assert.Zero(t, got.UserID)
}
