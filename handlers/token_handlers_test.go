package handlers

import (
	"testing"
	"time"

	"invento/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestIssueToken_SignsSixHourToken(t *testing.T) {
	h := NewTokenHandler("test-secret")

	app := fiber.New()
	app.Post("/api/jwt/token", h.HandleIssueToken)

	resp, err := app.Test(jsonRequest("POST", "/api/jwt/token", `{"email":"jane@example.com"}`))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	tokenStr, _ := body["token"].(string)
	assert.NotEmpty(t, tokenStr)

	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "jane@example.com", claims.Email)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 5*time.Hour)
	assert.LessOrEqual(t, remaining, 6*time.Hour)
}

func TestIssueToken_RejectsMissingEmail(t *testing.T) {
	h := NewTokenHandler("test-secret")

	app := fiber.New()
	app.Post("/api/jwt/token", h.HandleIssueToken)

	resp, err := app.Test(jsonRequest("POST", "/api/jwt/token", `{}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
