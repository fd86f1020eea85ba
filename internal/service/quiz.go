package service

import (
	"context"

	"quizai/internal/domain"
)

// QuizService exposes read access to persisted quizzes.
type QuizService struct {
	quizzes domain.QuizRepository
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizzes domain.QuizRepository) *QuizService {
	return &QuizService{quizzes: quizzes}
}

// GetQuiz returns the quiz if it exists and belongs to the user.
func (s *QuizService) GetQuiz(ctx context.Context, userID, quizID string) (*domain.Quiz, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Quiz not found")
	}
	return quiz, nil
}

// ListQuizzesByCourse returns the user's quizzes for a course, newest
// first.
func (s *QuizService) ListQuizzesByCourse(ctx context.Context, userID, courseID string) ([]*domain.Quiz, error) {
	quizzes, err := s.quizzes.ListQuizzesByCourse(ctx, courseID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return quizzes, nil
}
