package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("alice@example.com", "Alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestParseToken_Expired(t *testing.T) {
	JwtKey = []byte("test-secret")

	claims := &Claims{
		Email: "alice@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-2 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseToken_WrongKey(t *testing.T) {
	JwtKey = []byte("test-secret")
	token, err := GenerateJWT("alice@example.com", "Alice")
	assert.NoError(t, err)

	JwtKey = []byte("another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	JwtKey = []byte("test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
