package handlers

import (
	"log"
	"time"

	"invento/models"
	"invento/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// tokenValidity is how long an issued token stays usable.
const tokenValidity = 6 * time.Hour

type TokenHandler struct {
	secret []byte
}

func NewTokenHandler(secret string) *TokenHandler {
	return &TokenHandler{secret: []byte(secret)}
}

// HandleIssueToken signs the caller-supplied identity into a bearer token.
// POST /api/jwt/token
func (h *TokenHandler) HandleIssueToken(c *fiber.Ctx) error {
	var req models.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A valid email is required"})
	}

	claims := models.JwtClaims{
		Email: req.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		log.Printf("Error signing token for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not sign token"})
	}

	return c.JSON(models.TokenResponse{Token: signed})
}
