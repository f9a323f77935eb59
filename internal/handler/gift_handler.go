package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mousam-kumari/gift-flask/internal/models"
	"github.com/mousam-kumari/gift-flask/internal/service"
)

// GiftHandler wires HTTP → GiftService.
type GiftHandler struct {
	svc service.GiftService
}

// NewGiftHandler creates a new GiftHandler.
func NewGiftHandler(svc service.GiftService) *GiftHandler {
	return &GiftHandler{svc: svc}
}

// Register mounts the three suggestion endpoints on the supplied router.
func (h *GiftHandler) Register(r fiber.Router) {
	r.Post("/generate_gift_idea", h.generateGiftIdea)
	r.Post("/search_gift_idea", h.searchGiftIdea)
	r.Post("/generate_more_ideas", h.generateMoreIdeas)
}

// generateGiftIdea handles POST /generate_gift_idea
func (h *GiftHandler) generateGiftIdea(c *fiber.Ctx) error {
	var req models.GiftIdeaRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	ideas, err := h.svc.Generate(c.UserContext(), req.Criteria())
	if err != nil {
		return respondError(c, err)
	}
	return respondIdeas(c, ideas)
}

// generateMoreIdeas handles POST /generate_more_ideas. It is the structured
// pipeline again; the history keeps earlier ideas out of the result.
func (h *GiftHandler) generateMoreIdeas(c *fiber.Ctx) error {
	return h.generateGiftIdea(c)
}

// searchGiftIdea handles POST /search_gift_idea. An empty prompt is
// rejected by the service so the outcome is counted like any other.
func (h *GiftHandler) searchGiftIdea(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	ideas, err := h.svc.Search(c.UserContext(), req.Prompt)
	if err != nil {
		return respondError(c, err)
	}
	return respondIdeas(c, ideas)
}

func respondIdeas(c *fiber.Ctx, ideas []models.GiftIdea) error {
	if ideas == nil {
		ideas = []models.GiftIdea{}
	}
	return c.JSON(models.GiftIdeasResponse{GiftIdeas: ideas})
}
