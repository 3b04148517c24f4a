package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vpnAdvisor/pkg/utils"

	jsonres "vpnAdvisor/pkg/response"

	"github.com/labstack/echo/v4"
)

// TokenValidator checks server-side token state (revocation) in Redis.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware guards admin routes with JWT. When a validator is supplied,
// the token must also still exist in the server-side token store.
func AuthMiddleware(tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			tokenString := tokenParts[1]

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Status Forbidden", nil,
				))
			}

			if tokenValidator != nil {
				if _, err := tokenValidator.ValidateToken(c.Request().Context(), tokenString); err != nil {
					return c.JSON(http.StatusForbidden, jsonres.Error(
						"FORBIDDEN", "Token revoked or expired", nil,
					))
				}
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}
