// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"cityhub/config"
	"cityhub/internal/domain/service"
)

// tokenTTL is the fixed validity window of every credential token. There is
// no revocation list; expiry is the only invalidation boundary.
const tokenTTL = 365 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.JWT}, nil
}

// GenerateCommerceToken issues a token embedding the commerce's store id and CIF.
func (s *jwtService) GenerateCommerceToken(id, cif string) (string, error) {
	return s.sign(&service.Claims{ID: id, CIF: cif})
}

// GenerateUserToken issues a token embedding the user's store id and roles.
func (s *jwtService) GenerateUserToken(id string, roles []string) (string, error) {
	return s.sign(&service.Claims{ID: id, Roles: roles})
}

// ValidateToken checks signature and expiry and returns the decoded claims.
// Any failure comes back as an error; callers treat every error as the
// absence of a valid principal.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// sign stamps the registered claims and signs with the process-wide secret.
func (s *jwtService) sign(claims *service.Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
