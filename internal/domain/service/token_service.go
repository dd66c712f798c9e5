package service

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded payload of a credential token. Every token carries
// the principal's store id; commerce tokens additionally carry the CIF and
// user tokens the role list.
type Claims struct {
	ID    string   `json:"_id"`
	CIF   string   `json:"cif,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating credential
// tokens. Validation failures of any kind (malformed, expired, bad
// signature) come back as an error; callers must treat every error
// uniformly as "no valid principal".
type TokenService interface {
	// GenerateCommerceToken issues a token binding the commerce's store id
	// and its CIF.
	GenerateCommerceToken(id, cif string) (string, error)

	// GenerateUserToken issues a token binding the user's store id and roles.
	GenerateUserToken(id string, roles []string) (string, error)

	// ValidateToken checks signature and expiry and returns the decoded claims.
	ValidateToken(token string) (*Claims, error)
}
