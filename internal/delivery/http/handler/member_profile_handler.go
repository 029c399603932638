package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MemberProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewMemberProfileHandler(uc usecase.ProfileUsecase) *MemberProfileHandler {
	return &MemberProfileHandler{uc: uc}
}

func (h *MemberProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/member-profiles")
	grp.Get("/", h.List)
	grp.Get("/member/:memberId", h.GetByMember)
	grp.Get("/:id", h.Get)
	grp.Patch("/:id", h.Update)
}

func (h *MemberProfileHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProfiles(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *MemberProfileHandler) Get(c fiber.Ctx) error {
	p, ok, err := h.uc.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *MemberProfileHandler) GetByMember(c fiber.Ctx) error {
	p, ok, err := h.uc.GetProfileByMemberID(c.Context(), c.Params("memberId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *MemberProfileHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateProfile(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", nil)
}
