package handler

import (
	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ClientHandler struct {
	uc usecase.CatalogUsecase
}

type createClientRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

func NewClientHandler(uc usecase.CatalogUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/clients")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ClientHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListClients(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ClientHandler) Get(c fiber.Ctx) error {
	cl, ok, err := h.uc.GetClient(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Client not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cl)
}

func (h *ClientHandler) Create(c fiber.Ctx) error {
	var req createClientRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	cl, err := h.uc.CreateClient(c.Context(), usecase.CreateClientInput{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
		Status:      req.Status,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Client created successfully", cl)
}

func (h *ClientHandler) Update(c fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.uc.UpdateClient(c.Context(), c.Params("id"), patch); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Client updated successfully", nil)
}

func (h *ClientHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteClient(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Client deleted successfully", nil)
}
