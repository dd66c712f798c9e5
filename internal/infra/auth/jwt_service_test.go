package auth

import (
	"testing"
	"time"

	"cityhub/config"
	"cityhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test_jwt_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_CommerceToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.GenerateCommerceToken("65f1a2b3c4d5e6f7a8b9c0d1", "A98765432")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f7a8b9c0d1", claims.ID)
	assert.Equal(t, "A98765432", claims.CIF)
	assert.Nil(t, claims.Roles)
}

func TestJWTService_UserToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.GenerateUserToken("65f1a2b3c4d5e6f7a8b9c0d2", []string{"admin"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f7a8b9c0d2", claims.ID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Empty(t, claims.CIF)
}

func TestJWTService_OneYearExpiry(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.GenerateUserToken("65f1a2b3c4d5e6f7a8b9c0d3", []string{"user"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, float64(365*24*time.Hour), float64(remaining), float64(time.Minute))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Sign an already-expired token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		ID: "65f1a2b3c4d5e6f7a8b9c0d4",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(cfg.SecretKey.JWT))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.JWT = "another_secret_entirely"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateCommerceToken("65f1a2b3c4d5e6f7a8b9c0d5", "B12345678")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
