package middleware_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/m-mizutani/gt"

	"github.com/mousam-kumari/gift-flask/internal/logging"
	"github.com/mousam-kumari/gift-flask/internal/middleware"
)

func newTestApp(t *testing.T) (*fiber.App, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	original := logging.Default()
	logging.SetDefault(logging.New("debug", buf))
	t.Cleanup(func() { logging.SetDefault(original) })

	app := fiber.New()
	app.Use(middleware.Logging())
	app.Get("/ping", func(c *fiber.Ctx) error {
		logging.From(c.UserContext()).Info("inside handler")
		return c.SendString("pong")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	return app, buf
}

func TestLoggingAssignsRequestID(t *testing.T) {
	app, buf := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
	gt.NoError(t, err)
	gt.Equal(t, resp.StatusCode, fiber.StatusOK)

	reqID := resp.Header.Get(middleware.RequestIDHeader)
	gt.True(t, reqID != "")
	gt.S(t, buf.String()).Contains("inside handler")
	gt.S(t, buf.String()).Contains(reqID)
	gt.S(t, buf.String()).Contains("/ping")
}

func TestLoggingKeepsInboundRequestID(t *testing.T) {
	app, buf := newTestApp(t)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")

	resp, err := app.Test(req, -1)
	gt.NoError(t, err)
	gt.Equal(t, resp.Header.Get(middleware.RequestIDHeader), "req-123")
	gt.S(t, buf.String()).Contains("req-123")
}

func TestLoggingReportsHandlerErrorStatus(t *testing.T) {
	app, buf := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil), -1)
	gt.NoError(t, err)
	gt.Equal(t, resp.StatusCode, fiber.StatusTeapot)
	gt.S(t, buf.String()).Contains("418")
}
