package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mousam-kumari/gift-flask/internal/middleware"
	"github.com/mousam-kumari/gift-flask/internal/observability"
	"github.com/mousam-kumari/gift-flask/internal/service"
	"github.com/mousam-kumari/gift-flask/internal/web"
)

// Dependencies bundles everything the HTTP layer is built from.
type Dependencies struct {
	GiftService service.GiftService
	History     service.HistoryStore
	Metrics     *observability.Metrics
	Provider    string
}

// NewApp creates the Fiber app with views, middleware and all routes.
// cfg carries server tuning such as read/write timeouts.
func NewApp(deps Dependencies, cfg fiber.Config) *fiber.App {
	cfg.Views = web.NewEngine()

	app := fiber.New(cfg)
	app.Use(recover.New())
	app.Use(middleware.Logging())

	RegisterRoutes(app, deps)
	return app
}

// RegisterRoutes mounts every endpoint at the root, matching the paths the
// page's scripts call.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	NewIndexHandler(deps.Provider).Register(app)
	NewGiftHandler(deps.GiftService).Register(app)
	NewHealthHandler(deps.Provider, deps.History).Register(app)

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
}
