package services

import (
	"testing"
	"time"

	"plantnet/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueAndValidate(t *testing.T) {
	auth := NewAuthService("test-secret", 365*24*time.Hour)

	token, err := auth.IssueToken("buyer@plantnet.dev")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@plantnet.dev", claims.Email)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 365*24*time.Hour, lifetime)
}

func TestAuthService_RejectsOtherSecret(t *testing.T) {
	token, err := NewAuthService("one", time.Hour).IssueToken("buyer@plantnet.dev")
	require.NoError(t, err)

	_, err = NewAuthService("two", time.Hour).ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}

func TestAuthService_RejectsExpiredToken(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	auth.now = func() time.Time { return issuedAt }

	token, err := auth.IssueToken("buyer@plantnet.dev")
	require.NoError(t, err)

	auth.now = time.Now
	_, err = auth.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}

func TestAuthService_RejectsOtherSigningMethod(t *testing.T) {
	claims := SessionClaims{
		Email: "buyer@plantnet.dev",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewAuthService("test-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_RejectsTokenWithoutEmail(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewAuthService("test-secret", time.Hour).ValidateToken(token)
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}
