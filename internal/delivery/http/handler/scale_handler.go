package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScaleHandler struct {
	uc usecase.CatalogUsecase
}

type createScaleRequest struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

func NewScaleHandler(uc usecase.CatalogUsecase) *ScaleHandler {
	return &ScaleHandler{uc: uc}
}

func (h *ScaleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/scales")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ScaleHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListScales(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ScaleHandler) Create(c fiber.Ctx) error {
	var req createScaleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	sc, err := h.uc.CreateScale(c.Context(), usecase.CreateScaleInput{
		Name:   req.Name,
		Type:   req.Type,
		Values: req.Values,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Scale created successfully", sc)
}

func (h *ScaleHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateScale(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Scale updated successfully", nil)
}

func (h *ScaleHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteScale(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Scale deleted successfully", nil)
}
