package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/FanTom52/zachetka/app/apperr"
)

const claimsKey = "claims"

// AuthMiddleware validates the bearer token and stores the claims in the
// request context. A missing token is 401, a bad or expired one is 403.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return apperr.Unauthorized("authorization token required")
	}

	claims, err := ValidateJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return apperr.Forbidden("invalid or expired token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// CurrentClaims returns the claims stored by AuthMiddleware.
func CurrentClaims(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(claimsKey).(*Claims)
	return claims
}
