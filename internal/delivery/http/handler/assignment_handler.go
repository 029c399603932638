package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/domain"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type createAssignmentRequest struct {
	MemberID  string `json:"memberId"`
	ClientID  string `json:"clientId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type completeAssignmentRequest struct {
	EndDate string `json:"endDate"`
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assignments")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Post("/:id/complete", h.Complete)
	grp.Delete("/:id", h.Delete)
}

// List returns all assignments, filterable by memberId or clientId.
func (h *AssignmentHandler) List(c fiber.Ctx) error {
	var (
		items []domain.MemberAssignment
		err   error
	)
	switch {
	case c.Query("memberId") != "":
		items, err = h.uc.ListByMember(c.Context(), c.Query("memberId"))
	case c.Query("clientId") != "":
		items, err = h.uc.ListByClient(c.Context(), c.Query("clientId"))
	default:
		items, err = h.uc.ListAssignments(c.Context())
	}
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	var req createAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	a, err := h.uc.CreateAssignment(c.Context(), usecase.CreateAssignmentInput{
		MemberID:  req.MemberID,
		ClientID:  req.ClientID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Role:      req.Role,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Assignment created successfully", a)
}

func (h *AssignmentHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateAssignment(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Assignment updated successfully", nil)
}

func (h *AssignmentHandler) Complete(c fiber.Ctx) error {
	var req completeAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.CompleteAssignment(c.Context(), c.Params("id"), req.EndDate); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Assignment completed successfully", nil)
}

func (h *AssignmentHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteAssignment(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Assignment deleted successfully", nil)
}
