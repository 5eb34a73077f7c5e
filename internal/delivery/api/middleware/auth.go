package middleware

import (
	"strings"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// AuthMiddleware verifies bearer tokens issued by the member platform.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(claimsKey, claims)

		return next(c)
	}
}

// RequireRole rejects tokens that do not carry role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if !claims.HasRole(role.String()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

// GetUserID returns the member id of the authenticated caller.
func GetUserID(c echo.Context) (string, bool) {
	claims, ok := GetClaims(c)
	if !ok || claims.UserID() == "" {
		return "", false
	}

	return claims.UserID(), true
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) ([]string, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return nil, false
	}

	return claims.Roles, true
}
