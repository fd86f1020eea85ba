// Package handler wires the HTTP routes to the application services.
package handler

import (
	"context"

	"quizai/internal/dto"
	"quizai/internal/logger"
	"quizai/internal/middleware"
	"quizai/internal/service"
	"quizai/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationService is the subset of the generation service the handler
// needs; narrowed for testability.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, userID, courseID string, materialIDs []string) (*service.GenerationResult, error)
}

// GenerateHandler handles quiz-generation HTTP requests
type GenerateHandler struct {
	service   GenerationService
	validator *validation.Validator
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(svc GenerationService) *GenerateHandler {
	return &GenerateHandler{
		service:   svc,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz handles POST /api/generate. It produces a quiz from the
// selected course materials and reports per-material extraction
// failures as warnings.
func (h *GenerateHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(req.CourseID, req.MaterialIDs); len(errs) > 0 {
		return errs
	}

	userID := middleware.UserID(c)
	result, err := h.service.GenerateQuiz(c.Context(), userID, req.CourseID, req.MaterialIDs)
	if err != nil {
		return err
	}

	message := "Quiz generated successfully"
	if !result.Persisted {
		message = "Quiz generated but could not be saved"
		logger.Get().Warn("returning unsaved quiz content",
			zap.String("courseID", req.CourseID))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GenerateQuizResponse{
		Success:  result.Persisted,
		Quiz:     dto.NewQuizResponse(result.Quiz),
		Message:  message,
		Warnings: result.Warnings,
	})
}
