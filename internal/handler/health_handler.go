package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mousam-kumari/gift-flask/internal/service"
)

type HealthHandler struct {
	provider string
	history  service.HistoryStore
}

func NewHealthHandler(provider string, history service.HistoryStore) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		history:  history,
	}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":       "ok",
		"provider":     h.provider,
		"history_size": h.historySize(c),
	}

	return c.JSON(status)
}

func (h *HealthHandler) historySize(c *fiber.Ctx) int {
	if h.history == nil {
		return 0
	}
	return h.history.Len(c.UserContext())
}
