package handler

import (
	"time"

	"skills-radar/internal/pkg/response"
	"skills-radar/internal/store"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	if h.store != nil {
		if initialized, err := h.store.IsInitialized(c.Context()); err != nil {
			data["status"] = "degraded"
			data["store"] = "unavailable"
		} else {
			data["store"] = "ok"
			data["initialized"] = initialized
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
