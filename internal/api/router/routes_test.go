package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRouteWithMiddleware_ScopedToRoute(t *testing.T) {
	app := fiber.New()
	mark := func(c fiber.Ctx) error {
		c.Set("X-Marked", "1")
		return c.Next()
	}
	ok := func(c fiber.Ctx) error { return c.SendString("ok") }

	err := SetupRoutes(app, func(root fiber.Router, r *Router) error {
		assert.Same(t, app, r.App())
		RegisterRouteWithMiddleware(root, "", "post", "/marked", []fiber.Handler{mark}, ok)
		RegisterRouteWithMiddleware(root, "", "GET", "/plain", nil, ok)
		RegisterRouteWithMiddleware(root, "/grp", "GET", "/inner", []fiber.Handler{mark}, ok)
		RegisterRouteWithMiddleware(root, "", "GET", "/marked", nil, ok)
		RegisterRouteWithMiddleware(root, "", "POST", "/marked/child", nil, ok)
		RegisterRouteWithMiddleware(root, "/grp", "GET", "/other", nil, ok)
		return nil
	})
	require.NoError(t, err)

	tests := []struct {
		method, path string
		marked       bool
	}{
		{"POST", "/marked", true},
		{"GET", "/plain", false},
		{"GET", "/grp/inner", true},
		{"POST", "/marked/", true},
		{"POST", "/MARKED", true},
		{"GET", "/marked", false},
		{"POST", "/marked/child", false},
		{"GET", "/grp/other", false},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, tt.method+" "+tt.path)
		if tt.marked {
			assert.Equal(t, "1", resp.Header.Get("X-Marked"), tt.path)
		} else {
			assert.Empty(t, resp.Header.Get("X-Marked"), tt.path)
		}
	}
}

func TestSetupRoutes_PropagatesError(t *testing.T) {
	app := fiber.New()
	err := SetupRoutes(app, func(fiber.Router, *Router) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
