package handler

import (
	"strings"

	"skills-radar/internal/assistant"
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AssistantHandler struct {
	advisor  *assistant.Advisor
	snapshot *assistant.SnapshotCache
}

type chatRequest struct {
	Message string `json:"message"`
}

type analyzeRequest struct {
	Query string `json:"query"`
}

func NewAssistantHandler(advisor *assistant.Advisor, snapshot *assistant.SnapshotCache) *AssistantHandler {
	return &AssistantHandler{advisor: advisor, snapshot: snapshot}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assistant")
	grp.Post("/chat", h.Chat)
	grp.Post("/analyze", h.Analyze)
	grp.Post("/refresh-context", h.RefreshContext)
}

func (h *AssistantHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, nil)
	}

	answer, err := h.advisor.Ask(c.Context(), req.Message)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"response": answer})
}

func (h *AssistantHandler) Analyze(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, nil)
	}

	rec, err := h.advisor.AnalyzeAndRecommend(c.Context(), req.Query)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}

// RefreshContext rebuilds the cached team snapshot, typically after a large
// import.
func (h *AssistantHandler) RefreshContext(c fiber.Ctx) error {
	if _, err := h.snapshot.Refresh(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "Context refreshed successfully", nil)
}
