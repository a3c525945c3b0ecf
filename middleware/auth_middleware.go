package middleware

import (
	"context"
	"strings"

	"invento/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoleLookup resolves the stored role for an authenticated email.
type RoleLookup func(ctx context.Context, email string) (string, error)

// Authenticate verifies the Bearer token in the Authorization header and
// stores the decoded email in the request locals.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Missing authorization header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid token format"})
		}

		claims := &models.JwtClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid or expired token"})
		}

		c.Locals("email", claims.Email)
		return c.Next()
	}
}

// AdminRequired checks the caller's stored role, not the token's claim,
// so a revoked admin is locked out as soon as the document changes.
func AdminRequired(lookup RoleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Admin access required"})
		}

		role, err := lookup(c.Context(), email)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Admin access required"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to verify role"})
		}

		if role != models.RoleSystemAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Admin access required"})
		}
		return c.Next()
	}
}
