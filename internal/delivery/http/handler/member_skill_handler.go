package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/domain"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/repository"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MemberSkillHandler struct {
	uc           usecase.MemberUsecase
	memberSkills repository.MemberSkillRepository
}

type addMemberSkillRequest struct {
	MemberID         string `json:"memberId"`
	SkillID          string `json:"skillId"`
	ScaleID          string `json:"scaleId"`
	ProficiencyValue string `json:"proficiencyValue"`
}

func NewMemberSkillHandler(uc usecase.MemberUsecase, memberSkills repository.MemberSkillRepository) *MemberSkillHandler {
	return &MemberSkillHandler{uc: uc, memberSkills: memberSkills}
}

func (h *MemberSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/member-skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Delete("/:memberId/:skillId", h.Remove)
}

// List returns all member-skill rows, or only one member's when the memberId
// query parameter is present.
func (h *MemberSkillHandler) List(c fiber.Ctx) error {
	var (
		items []domain.MemberSkill
		err   error
	)
	if memberID := c.Query("memberId"); memberID != "" {
		items, err = h.memberSkills.GetByMemberID(c.Context(), memberID)
	} else {
		items, err = h.memberSkills.GetAll(c.Context())
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *MemberSkillHandler) Add(c fiber.Ctx) error {
	var req addMemberSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	err := h.uc.AddMemberSkill(c.Context(), usecase.AddMemberSkillInput{
		MemberID:         req.MemberID,
		SkillID:          req.SkillID,
		ScaleID:          req.ScaleID,
		ProficiencyValue: req.ProficiencyValue,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member skill saved successfully", nil)
}

func (h *MemberSkillHandler) Remove(c fiber.Ctx) error {
	err := h.uc.RemoveMemberSkill(c.Context(), c.Params("memberId"), c.Params("skillId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member skill removed successfully", nil)
}
