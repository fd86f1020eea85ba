package handler

import (
	"quizai/internal/dto"
	"quizai/internal/middleware"
	"quizai/internal/service"
	"quizai/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz retrieval and submission HTTP requests
type QuizHandler struct {
	quizzes   *service.QuizService
	grading   *service.GradingService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizzes *service.QuizService, grading *service.GradingService) *QuizHandler {
	return &QuizHandler{
		quizzes:   quizzes,
		grading:   grading,
		validator: validation.NewValidator(),
	}
}

// GetQuiz handles GET /api/quizzes/:id.
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizzes.GetQuiz(c.Context(), middleware.UserID(c), quizID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(quiz))
}

// ListQuizzes handles GET /api/quizzes?course_id=.
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	if errs := h.validator.ValidateCourseID(courseID); len(errs) > 0 {
		return errs
	}

	quizzes, err := h.quizzes.ListQuizzesByCourse(c.Context(), middleware.UserID(c), courseID)
	if err != nil {
		return err
	}

	resp := dto.QuizListResponse{Quizzes: make([]dto.QuizResponse, len(quizzes))}
	for i, quiz := range quizzes {
		resp.Quizzes[i] = dto.NewQuizResponse(quiz)
	}
	return c.JSON(resp)
}

// SubmitQuiz handles POST /api/submit. It grades the submitted answers
// against the stored quiz and records the attempt.
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateSubmitQuizRequest(req.QuizID, req.Answers); len(errs) > 0 {
		return errs
	}

	result, err := h.grading.Submit(c.Context(), middleware.UserID(c), req.QuizID, req.Answers)
	if err != nil {
		return err
	}

	attemptID := ""
	if result.Attempt != nil {
		attemptID = result.Attempt.ID
	}
	return c.JSON(dto.NewSubmitQuizResponse(result.Score, result.Total, result.Percentage, result.Results, attemptID))
}
