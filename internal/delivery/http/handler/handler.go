package handler

import (
	"errors"

	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pkg/response"
	"skills-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase sentinel errors into transport errors.
// Anything unrecognized becomes a 500 with no detail leaked.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Member not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrClientNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Client not found", nil, err)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Assignment not found", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
