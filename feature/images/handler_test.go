package images

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-sync/core/assets"
	"inventory-sync/core/assets/mocks"
	"inventory-sync/core/middleware/auth"
	"inventory-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const baseURL = "https://res.cloudinary.com/demo/image/upload/v1/"

type staticRefs []string

func (s staticRefs) AssetReferences(context.Context) ([]string, error) { return s, nil }

func setupTestApp(t *testing.T, role string) (*fiber.App, *mocks.Store) {
	t.Helper()
	store := new(mocks.Store)
	cfg := assets.Config{DomainMarker: "cloudinary.com", Delimiter: "/upload/", Prefix: "trk-inventory/barang", ListLimit: 500}
	mgr := assets.NewManager(store, assets.NewIdentifier(cfg), zap.NewNop())
	refs := staticRefs{baseURL + "trk-inventory/barang/a.jpg"}
	svc := NewService(mgr, store, reconcile.NewCache(store, refs, 0), cfg, zap.NewNop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(auth.LocalsRole, role)
		}
		return c.Next()
	})
	require.NoError(t, NewFeature(svc).Load(app))
	return app, store
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleDeleteByKey(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		outcome string
	}{
		{"Deleted", nil, 200, "deleted"},
		{"NotFound", assets.ErrNotFound, 404, "not_found"},
		{"Failed", errors.New("timeout"), 500, "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, store := setupTestApp(t, "")
			store.On("Remove", mock.Anything, "trk-inventory/barang/image123").Return(tt.err).Once()

			resp, err := app.Test(httptest.NewRequest("DELETE", "/api/images/trk-inventory%2Fbarang%2Fimage123", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp)
			assert.Equal(t, tt.outcome, body["outcome"])
			assert.Equal(t, "trk-inventory/barang/image123", body["key"])
		})
	}
}

func TestHandleDeleteByURL(t *testing.T) {
	post := func(app *fiber.App, payload string) *http.Response {
		req := httptest.NewRequest("POST", "/api/images/delete-by-url", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Deleted", func(t *testing.T) {
		app, store := setupTestApp(t, "")
		store.On("Remove", mock.Anything, "trk-inventory/barang/image123").Return(nil).Once()

		resp := post(app, `{"url":"https://res.cloudinary.com/demo/image/upload/v1234567890/trk-inventory/barang/image123.jpg"}`)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "trk-inventory/barang/image123", decode(t, resp)["derivedKey"])
	})

	t.Run("MissingURL", func(t *testing.T) {
		app, store := setupTestApp(t, "")
		assert.Equal(t, 400, post(app, `{}`).StatusCode)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("UnderivableURL", func(t *testing.T) {
		app, store := setupTestApp(t, "")
		assert.Equal(t, 400, post(app, `{"url":"https://example.com/a.jpg"}`).StatusCode)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestHandleList(t *testing.T) {
	t.Run("AdminOnly", func(t *testing.T) {
		app, store := setupTestApp(t, "Staff")
		resp, err := app.Test(httptest.NewRequest("GET", "/api/images/list", nil))
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
		store.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DefaultsAndClamp", func(t *testing.T) {
		app, store := setupTestApp(t, auth.RoleAdmin)
		store.On("List", mock.Anything, "trk-inventory/barang", 500).Return([]assets.Resource{
			{Key: "trk-inventory/barang/a", URL: baseURL + "trk-inventory/barang/a.jpg", Format: "jpg"},
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/images/list?limit=9000", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		body := decode(t, resp)
		assert.EqualValues(t, 1, body["count"])
		store.AssertExpectations(t)
	})
}

func TestHandleCleanupCheck(t *testing.T) {
	app, store := setupTestApp(t, auth.RoleAdmin)
	store.On("List", mock.Anything, "trk-inventory/barang", 100).Return([]assets.Resource{
		{Key: "trk-inventory/barang/a", URL: baseURL + "trk-inventory/barang/a.jpg"},
		{Key: "trk-inventory/barang/c", URL: baseURL + "trk-inventory/barang/c.jpg"},
	}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/images/cleanup-check?prefix=/trk-inventory/barang/&limit=100", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.EqualValues(t, 2, body["totalInStorage"])
	assert.EqualValues(t, 1, body["totalInStore"])
	assert.EqualValues(t, 1, body["orphanCount"])
	assert.Equal(t, []any{baseURL + "trk-inventory/barang/c.jpg"}, body["orphans"])
}
