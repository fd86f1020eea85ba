package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quizai/internal/domain"
	"quizai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// MaterialDatabaseAdapter implements domain.MaterialRepository using sqlx.DB
type MaterialDatabaseAdapter struct {
	db *sqlx.DB
}

// NewMaterialDatabaseAdapter creates a new instance of MaterialDatabaseAdapter
func NewMaterialDatabaseAdapter(db *sqlx.DB) domain.MaterialRepository {
	return &MaterialDatabaseAdapter{db: db}
}

// GetMaterial implements domain.MaterialRepository
func (a *MaterialDatabaseAdapter) GetMaterial(ctx context.Context, id, userID string) (*domain.Material, error) {
	var model models.CourseMaterial
	query := `SELECT id, user_id, course_id, filename, original_filename, file_path, mime_type, file_size, created_at
	FROM course_materials
	WHERE id = $1 AND user_id = $2`

	err := a.db.GetContext(ctx, &model, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}

	return &domain.Material{
		ID:               model.ID,
		UserID:           model.UserID,
		CourseID:         model.CourseID,
		Filename:         model.Filename,
		OriginalFilename: model.OriginalFilename.String,
		FilePath:         model.FilePath,
		MimeType:         model.MimeType.String,
		FileSize:         model.FileSize.Int64,
		CreatedAt:        model.CreatedAt,
	}, nil
}
