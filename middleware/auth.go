package middleware

import (
	"strings"

	"defisalary/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func extractToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token format")
	}

	return parts[1], nil
}

// RequireAuth validates the Bearer token and stashes the caller's wallet
// address in locals. It only establishes identity; the authoritative owner
// check happens inside the engine's access gate.
func RequireAuth(c *fiber.Ctx) error {
	token, err := extractToken(c)
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	wallet, _ := claims["wallet"].(string)
	c.Locals("wallet", wallet)

	return c.Next()
}

// CallerWallet returns the wallet RequireAuth stored, or "" on an
// unauthenticated route.
func CallerWallet(c *fiber.Ctx) string {
	wallet, _ := c.Locals("wallet").(string)
	return wallet
}
