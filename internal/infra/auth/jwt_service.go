// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
)

const (
	defaultAccessTTL = time.Hour
	accessTokenType  = "access"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := cfg.SecretKey.AccessDuration
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		issuer:       cfg.SecretKey.Issuer,
		now:          time.Now,
	}, nil
}

// GenerateToken creates a signed access token for a given member and roles.
func (s *jwtService) GenerateToken(userID string, roles []string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := s.now()
	claims := &service.Claims{
		Roles: roles,
		Type:  accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses and verifies an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(s.accessSecret), nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid || claims.Type != accessTokenType || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
