package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, role string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "U001", ExpiresAt: jwt.NewNumericDate(expires)},
		Role:             role,
	})
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: "key-123", JWTSecret: secret}))
	app.Get("/open", func(c *fiber.Ctx) error { return c.SendString(c.Locals(LocalsRole).(string)) })
	app.Get("/admin", RequireRole(RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func do(t *testing.T, app *fiber.App, path string, headers map[string]string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuth(t *testing.T) {
	app := newApp()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    int
	}{
		{"NoCredentials", "/open", nil, fiber.StatusUnauthorized},
		{"ValidApiKey", "/admin", map[string]string{"X-API-Key": "key-123"}, fiber.StatusOK},
		{"WrongApiKey", "/open", map[string]string{"X-API-Key": "nope"}, fiber.StatusUnauthorized},
		{"StaffToken", "/open", map[string]string{"Authorization": "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), "Staff", future)}, fiber.StatusOK},
		{"StaffTokenOnAdminRoute", "/admin", map[string]string{"Authorization": "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), "Staff", future)}, fiber.StatusForbidden},
		{"AdminToken", "/admin", map[string]string{"Authorization": "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), "Admin", future)}, fiber.StatusOK},
		{"ExpiredToken", "/open", map[string]string{"Authorization": "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), "Admin", time.Now().Add(-time.Hour))}, fiber.StatusUnauthorized},
		{"WrongSecret", "/open", map[string]string{"Authorization": "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), "Admin", future)}, fiber.StatusUnauthorized},
		{"WrongAlgorithm", "/open", map[string]string{"Authorization": "Bearer " + sign(t, jwt.SigningMethodHS384, []byte(secret), "Admin", future)}, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(t, app, tt.path, tt.headers))
		})
	}
}

func TestParse_NoRole(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), "", time.Now().Add(time.Hour))
	_, err := Parse(token, secret)
	assert.Error(t, err)
}
