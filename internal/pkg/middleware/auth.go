package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/auth"
	"github.com/connectedautocare/quoteapi/internal/pkg/session"
	"github.com/connectedautocare/quoteapi/internal/pkg/usercontext"
)

// TokenRequired authenticates requests carrying a bearer token and stores
// the caller on the request context. Error messages are part of the API
// contract; do not reword them.
func TokenRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			return unauthorized(c, err.Error())
		}

		claims, err := auth.DefaultTokenService().Verify(token)
		if err != nil {
			return unauthorized(c, err.Error())
		}

		usercontext.SetUserContext(c, usercontext.UserContext{
			UserID:     claims.UserID,
			Email:      claims.Email,
			Role:       claims.Role,
			IsLoggedIn: true,
		})

		// Advisory activity tracking; never blocks the request.
		session.Touch(claims.UserID)

		return c.Next()
	}
}

// RoleRequired passes callers whose role level is at least that of the
// required role. Must run after TokenRequired.
func RoleRequired(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := usercontext.GetUserContext(c)
		if !userCtx.IsLoggedIn {
			return unauthorized(c, "Authentication required")
		}

		if auth.RoleLevel(userCtx.Role) < auth.RoleLevel(requiredRole) {
			return forbidden(c, "Insufficient permissions")
		}

		return c.Next()
	}
}

// PermissionRequired passes callers whose role grants the permission.
// Must run after TokenRequired.
func PermissionRequired(perm auth.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := usercontext.GetUserContext(c)
		if !userCtx.IsLoggedIn {
			return unauthorized(c, "Authentication required")
		}

		if !auth.HasPermission(userCtx.Role, perm) {
			return forbidden(c, fmt.Sprintf("Permission %s required", perm))
		}

		return c.Next()
	}
}

// extractBearerToken pulls the token from the Authorization header. A
// missing header and a malformed one are distinct failures.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", fmt.Errorf("Token is missing")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("Invalid token format")
	}
	return parts[1], nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
