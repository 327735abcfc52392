package auth

import (
	"context"

	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "rosa@example.com", "Rosa")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.CustomerID)
	assert.Equal(t, "rosa@example.com", claims.Email)
	assert.Equal(t, "Rosa", claims.Name)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(1, "a@example.com", "A")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("buttercream")
	require.NoError(t, err)
	assert.NotEqual(t, "buttercream", hash)

	assert.True(t, CheckPassword(hash, "buttercream"))
	assert.False(t, CheckPassword(hash, "margarine"))
}

func TestClaimsContext(t *testing.T) {
	token, err := GenerateToken(7, "b@example.com", "B")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	ctx := WithClaims(context.Background(), claims)
	got, ok := FromCtx(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(7), got.CustomerID)

	_, ok = FromCtx(context.Background())
	assert.False(t, ok)
}
