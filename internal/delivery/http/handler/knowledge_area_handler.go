package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type KnowledgeAreaHandler struct {
	uc usecase.CatalogUsecase
}

type createKnowledgeAreaRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewKnowledgeAreaHandler(uc usecase.CatalogUsecase) *KnowledgeAreaHandler {
	return &KnowledgeAreaHandler{uc: uc}
}

func (h *KnowledgeAreaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/knowledge-areas")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *KnowledgeAreaHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListKnowledgeAreas(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *KnowledgeAreaHandler) Create(c fiber.Ctx) error {
	var req createKnowledgeAreaRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	ka, err := h.uc.CreateKnowledgeArea(c.Context(), req.Name, req.Description)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Knowledge area created successfully", ka)
}

func (h *KnowledgeAreaHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateKnowledgeArea(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Knowledge area updated successfully", nil)
}

func (h *KnowledgeAreaHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteKnowledgeArea(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Knowledge area deleted successfully", nil)
}
