package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MemberHandler struct {
	uc usecase.MemberUsecase
}

type createMemberRequest struct {
	CorporateEmail     string `json:"corporateEmail"`
	FullName           string `json:"fullName"`
	HireDate           string `json:"hireDate"`
	Category           string `json:"category"`
	Location           string `json:"location"`
	AvailabilityStatus string `json:"availabilityStatus"`
	PhotoURL           string `json:"photoUrl"`
}

func NewMemberHandler(uc usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

func (h *MemberHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/members")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *MemberHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListMembers(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *MemberHandler) Get(c fiber.Ctx) error {
	m, ok, err := h.uc.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Member not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, m)
}

func (h *MemberHandler) Create(c fiber.Ctx) error {
	var req createMemberRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	m, err := h.uc.CreateMember(c.Context(), usecase.CreateMemberInput{
		CorporateEmail:     req.CorporateEmail,
		FullName:           req.FullName,
		HireDate:           req.HireDate,
		Category:           req.Category,
		Location:           req.Location,
		AvailabilityStatus: req.AvailabilityStatus,
		PhotoURL:           req.PhotoURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Member created successfully", m)
}

func (h *MemberHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateMember(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member updated successfully", nil)
}

func (h *MemberHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteMember(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member deleted successfully", nil)
}
