package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quizai/internal/domain"
	"quizai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CourseDatabaseAdapter implements domain.CourseRepository using sqlx.DB
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCourseDatabaseAdapter creates a new instance of CourseDatabaseAdapter
func NewCourseDatabaseAdapter(db *sqlx.DB) domain.CourseRepository {
	return &CourseDatabaseAdapter{db: db}
}

// GetCourse implements domain.CourseRepository. Ownership is enforced in
// the query; a course belonging to a different user reads as absent.
func (a *CourseDatabaseAdapter) GetCourse(ctx context.Context, id, userID string) (*domain.Course, error) {
	var model models.Course
	query := `SELECT id, user_id, name, description, created_at, updated_at
	FROM courses
	WHERE id = $1 AND user_id = $2`

	err := a.db.GetContext(ctx, &model, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &domain.Course{
		ID:          model.ID,
		UserID:      model.UserID,
		Name:        model.Name,
		Description: model.Description.String,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}, nil
}
