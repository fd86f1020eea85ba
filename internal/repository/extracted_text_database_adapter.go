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

// ExtractedTextDatabaseAdapter implements domain.ExtractedTextRepository using sqlx.DB
type ExtractedTextDatabaseAdapter struct {
	db *sqlx.DB
}

// NewExtractedTextDatabaseAdapter creates a new instance of ExtractedTextDatabaseAdapter
func NewExtractedTextDatabaseAdapter(db *sqlx.DB) domain.ExtractedTextRepository {
	return &ExtractedTextDatabaseAdapter{db: db}
}

// GetByMaterialID implements domain.ExtractedTextRepository. Concurrent
// requests may have written duplicate rows for one material; the earliest
// row wins.
func (a *ExtractedTextDatabaseAdapter) GetByMaterialID(ctx context.Context, materialID, userID string) (*domain.ExtractedText, error) {
	var model models.ExtractedText
	query := `SELECT id, course_material_id, user_id, extracted_text, text_length, word_count, extraction_method, created_at
	FROM extracted_texts
	WHERE course_material_id = $1 AND user_id = $2
	ORDER BY created_at ASC
	LIMIT 1`

	err := a.db.GetContext(ctx, &model, query, materialID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get extracted text: %w", err)
	}

	return toDomainExtractedText(&model), nil
}

// Create implements domain.ExtractedTextRepository
func (a *ExtractedTextDatabaseAdapter) Create(ctx context.Context, text *domain.ExtractedText) error {
	if text == nil {
		return fmt.Errorf("extracted text cannot be nil")
	}
	text.ID = util.NewULID()

	query := `INSERT INTO extracted_texts (id, course_material_id, user_id, extracted_text, text_length, word_count, extraction_method, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := a.db.ExecContext(ctx, query,
		text.ID,
		text.MaterialID,
		text.UserID,
		text.Text,
		text.TextLength,
		text.WordCount,
		text.Method,
		text.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create extracted text: %w", err)
	}
	return nil
}

func toDomainExtractedText(model *models.ExtractedText) *domain.ExtractedText {
	return &domain.ExtractedText{
		ID:         model.ID,
		MaterialID: model.CourseMaterialID,
		UserID:     model.UserID,
		Text:       model.ExtractedText,
		TextLength: model.TextLength,
		WordCount:  model.WordCount,
		Method:     model.ExtractionMethod,
		CreatedAt:  model.CreatedAt,
	}
}
