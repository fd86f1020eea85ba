package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"quizai/internal/domain"
	"quizai/internal/logger"

	"go.uber.org/zap"
)

// GradingResult carries the scored outcome of one quiz submission.
type GradingResult struct {
	Score      int
	Total      int
	Percentage float64
	Results    []domain.AnswerResult
	// Attempt is nil when saving the attempt failed; the scores are
	// still returned.
	Attempt *domain.QuizAttempt
}

// GradingService scores submitted answers against a stored quiz.
type GradingService struct {
	quizzes domain.QuizRepository
}

// NewGradingService creates a new GradingService.
func NewGradingService(quizzes domain.QuizRepository) *GradingService {
	return &GradingService{quizzes: quizzes}
}

// Submit grades the answers against the quiz's stored questions. The
// answers list must match the question count exactly and every index
// must be a valid option.
func (s *GradingService) Submit(ctx context.Context, userID, quizID string, answers []int) (*GradingResult, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Quiz not found")
	}

	if len(answers) != len(quiz.Questions) {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Number of answers (%d) does not match number of questions (%d)",
			len(answers), len(quiz.Questions)))
	}

	score := 0
	results := make([]domain.AnswerResult, len(quiz.Questions))
	for i, question := range quiz.Questions {
		selected := answers[i]
		if selected < 0 || selected >= len(question.Options) {
			return nil, domain.NewValidationError(fmt.Sprintf(
				"Invalid answer index %d for question %d", selected, i+1))
		}

		isCorrect := selected == question.Correct
		if isCorrect {
			score++
		}
		results[i] = domain.AnswerResult{
			QuestionIndex: i,
			Selected:      selected,
			Correct:       question.Correct,
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
		}
	}

	total := len(quiz.Questions)
	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(score)/float64(total)*100*100) / 100
	}

	attempt := &domain.QuizAttempt{
		UserID:     userID,
		QuizID:     quizID,
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Answers:    answers,
		Results:    results,
		CreatedAt:  time.Now(),
	}
	if err := s.quizzes.CreateAttempt(ctx, attempt); err != nil {
		// Scores are still returned to the caller.
		logger.Get().Error("failed to save quiz attempt",
			zap.String("quizID", quizID),
			zap.Error(err))
		attempt = nil
	}

	return &GradingResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Results:    results,
		Attempt:    attempt,
	}, nil
}
