package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quizai/internal/domain"
	"quizai/internal/repository/models"
	"quizai/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("quiz cannot be nil")
	}
	quiz.ID = util.NewULID()

	query := `INSERT INTO quizzes (id, user_id, course_id, title, questions, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := a.db.ExecContext(ctx, query,
		quiz.ID,
		quiz.UserID,
		nullableString(quiz.CourseID),
		quiz.Title,
		toModelQuestions(quiz.Questions),
		quiz.CreatedAt,
		quiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuiz(ctx context.Context, id, userID string) (*domain.Quiz, error) {
	var model models.Quiz
	query := `SELECT id, user_id, course_id, title, questions, created_at, updated_at
	FROM quizzes
	WHERE id = $1 AND user_id = $2`

	err := a.db.GetContext(ctx, &model, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return toDomainQuiz(&model), nil
}

// ListQuizzesByCourse implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzesByCourse(ctx context.Context, courseID, userID string) ([]*domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT id, user_id, course_id, title, questions, created_at, updated_at
	FROM quizzes
	WHERE course_id = $1 AND user_id = $2
	ORDER BY created_at DESC`

	err := a.db.SelectContext(ctx, &rows, query, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, len(rows))
	for i := range rows {
		quizzes[i] = toDomainQuiz(&rows[i])
	}
	return quizzes, nil
}

// CreateAttempt implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt == nil {
		return fmt.Errorf("attempt cannot be nil")
	}
	attempt.ID = util.NewULID()

	results := make(models.AttemptResultList, len(attempt.Results))
	for i, r := range attempt.Results {
		results[i] = models.AttemptResult{
			QuestionIndex: r.QuestionIndex,
			Selected:      r.Selected,
			Correct:       r.Correct,
			IsCorrect:     r.IsCorrect,
			Explanation:   r.Explanation,
		}
	}

	query := `INSERT INTO quiz_attempts (id, user_id, quiz_id, score, total, percentage, answers, results, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := a.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.UserID,
		attempt.QuizID,
		attempt.Score,
		attempt.Total,
		attempt.Percentage,
		models.IntList(attempt.Answers),
		results,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

func toModelQuestions(questions []domain.Question) models.QuestionList {
	list := make(models.QuestionList, len(questions))
	for i, q := range questions {
		list[i] = models.Question{
			Question:    q.Question,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
		}
	}
	return list
}

func toDomainQuiz(model *models.Quiz) *domain.Quiz {
	questions := make([]domain.Question, len(model.Questions))
	for i, q := range model.Questions {
		questions[i] = domain.Question{
			Question:    q.Question,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
		}
	}
	return &domain.Quiz{
		ID:        model.ID,
		UserID:    model.UserID,
		CourseID:  model.CourseID.String,
		Title:     model.Title,
		Questions: questions,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
