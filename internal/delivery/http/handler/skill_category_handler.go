package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillCategoryHandler struct {
	uc usecase.CatalogUsecase
}

type createSkillCategoryRequest struct {
	Name      string `json:"name"`
	Criterion string `json:"criterion"`
}

func NewSkillCategoryHandler(uc usecase.CatalogUsecase) *SkillCategoryHandler {
	return &SkillCategoryHandler{uc: uc}
}

func (h *SkillCategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skill-categories")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillCategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkillCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillCategoryHandler) Create(c fiber.Ctx) error {
	var req createSkillCategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	sc, err := h.uc.CreateSkillCategory(c.Context(), req.Name, req.Criterion)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Skill category created successfully", sc)
}

func (h *SkillCategoryHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateSkillCategory(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill category updated successfully", nil)
}

func (h *SkillCategoryHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteSkillCategory(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill category deleted successfully", nil)
}
