package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestJWTService_AccessTokenRoundtrip(t *testing.T) {
	service := NewJWTService(testSecret)

	token, err := service.GenerateAccessToken(42, "amelia@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "amelia@example.com", claims.Email)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	service := NewJWTService(testSecret)

	tokenID, token, err := service.GenerateRefreshToken(7, "amelia@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService(testSecret)

	claims := &Claims{
		UserID: 42,
		Email:  "amelia@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := NewJWTService(testSecret)

	other := NewJWTService("some-other-secret")
	token, err := other.GenerateAccessToken(42, "amelia@example.com")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := NewJWTService(testSecret)

	_, err := service.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
