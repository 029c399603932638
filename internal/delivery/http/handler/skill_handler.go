package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.CatalogUsecase
}

type createSkillRequest struct {
	Name            string `json:"name"`
	Purpose         string `json:"purpose"`
	KnowledgeAreaID string `json:"knowledgeAreaId"`
	SkillCategoryID string `json:"skillCategoryId"`
}

func NewSkillHandler(uc usecase.CatalogUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	sk, ok, err := h.uc.GetSkill(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sk)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	sk, err := h.uc.CreateSkill(c.Context(), usecase.CreateSkillInput{
		Name:            req.Name,
		Purpose:         req.Purpose,
		KnowledgeAreaID: req.KnowledgeAreaID,
		SkillCategoryID: req.SkillCategoryID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", sk)
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateSkill(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill updated successfully", nil)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill deleted successfully", nil)
}
