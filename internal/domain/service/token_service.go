package service

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens. The member id is the subject.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// UserID returns the member id carried in the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// HasRole reports whether the token grants role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// TokenService defines the interface for generating and validating JWTs.
// Tokens are issued by the member platform; this service only needs to verify them,
// but can mint tokens for operators and tests.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
