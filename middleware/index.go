package middleware

import (
	"errors"
	"os"
	"strings"

	"waitify/constants"
	"waitify/helper"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func extractToken(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Protected rejects requests without a valid JWT.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalJWT parses a token when present; guests continue with a nil user.
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalAuth resolves the profile for guest-capable routes; anonymous
// visitors proceed with userId 0.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, profile, _, _ := helper.GetInfoProfileFromToken(c)
		if profile == nil {
			c.Locals("userId", uint(0))
			return c.Next()
		}

		c.Locals("userId", claim.ProfileId)
		c.Locals("profile", profile)
		return c.Next()
	}
}

// AdminOnly guards the admin route tree. Anyone who is not exactly an admin,
// including anonymous visitors and profiles that no longer exist, is sent to
// the sign-in page.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Redirect("/signin", fiber.StatusFound)
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return c.Redirect("/signin", fiber.StatusFound)
		}
		c.Locals("user", jwtToken)

		_, profile, _, _ := helper.GetInfoProfileFromToken(c)
		if profile == nil || profile.Role != constants.ROLE_ADMIN {
			return c.Redirect("/signin", fiber.StatusFound)
		}
		return c.Next()
	}
}
