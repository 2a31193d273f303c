package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role granted to API key callers.
const RoleAdmin = "Admin"

// Locals keys.
const (
	LocalsRole    = "auth_role"
	LocalsSubject = "auth_subject"
)

// Config holds the accepted credentials. Empty values disable that scheme.
type Config struct {
	ApiKey    string
	JWTSecret string
}

// Claims is the bearer token payload issued by the inventory backend.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// New authenticates every request with either X-API-Key (treated as admin) or an
// HS256 bearer token carrying a role claim.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key := c.Get("X-API-Key"); key != "" && cfg.ApiKey != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) == 1 {
				c.Locals(LocalsRole, RoleAdmin)
				c.Locals(LocalsSubject, "api-key")
				return c.Next()
			}
			return unauthorized(c, "invalid api key")
		}

		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" || cfg.JWTSecret == "" {
			return unauthorized(c, "missing credentials")
		}

		claims, err := Parse(token, cfg.JWTSecret)
		if err != nil {
			return unauthorized(c, "invalid token")
		}
		c.Locals(LocalsRole, claims.Role)
		c.Locals(LocalsSubject, claims.Subject)
		return c.Next()
	}
}

// Parse validates an HS256 token and returns its claims.
func Parse(token, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims.Role == "" {
		return nil, errors.New("token has no role claim")
	}
	return claims, nil
}

// RequireRole rejects authenticated callers whose role is not one of roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalsRole).(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Admin only",
		})
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
