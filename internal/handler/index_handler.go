package handler

import "github.com/gofiber/fiber/v2"

// IndexHandler serves the static landing page.
type IndexHandler struct {
	provider string
}

func NewIndexHandler(provider string) *IndexHandler {
	return &IndexHandler{provider: provider}
}

func (h *IndexHandler) Register(r fiber.Router) {
	r.Get("/", h.index)
}

func (h *IndexHandler) index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Provider": h.provider,
	})
}
