package handler

import (
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/reports")
	grp.Get("/members-by-client", h.MembersByClient)
	grp.Get("/skills-by-category", h.SkillsByCategory)
	grp.Get("/skill-availability", h.SkillAvailability)
}

func (h *ReportHandler) MembersByClient(c fiber.Ctx) error {
	matches, err := h.uc.MembersByClientHistory(c.Context(), c.Query("client"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, matches)
}

func (h *ReportHandler) SkillsByCategory(c fiber.Ctx) error {
	groups, err := h.uc.SkillsByCategory(c.Context(), c.Query("category"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, groups)
}

func (h *ReportHandler) SkillAvailability(c fiber.Ctx) error {
	rows, err := h.uc.SkillAvailability(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rows)
}
