package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Issue("buyer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
}

func TestVerify_DifferentSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).Issue("buyer@example.com")
	require.NoError(t, err)

	claims, err := NewService("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.Issue("buyer@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
