package helper

import (
	"testing"

	"wisata_booking/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.True(t, CheckPasswordHash("rahasia123", hash))
	assert.False(t, CheckPasswordHash("salah", hash))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("budi@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	JwtSecret = []byte("test-secret")

	claim := model.TokenClaim{UserId: 7, Email: "budi@example.com", Role: "user"}
	tokenString, err := GenerateAccessToken(claim)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["userId"])
	assert.Equal(t, "budi@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	JwtSecret = []byte("test-secret")
	tokenString, err := GenerateAccessToken(model.TokenClaim{UserId: 7, Email: "budi@example.com", Role: "user"})
	require.NoError(t, err)

	JwtSecret = []byte("another-secret")
	token, err := ParseToken(tokenString)
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}
