package domain

import "context"

// CourseRepository resolves course ownership.
type CourseRepository interface {
	// GetCourse returns the course if it exists and belongs to userID,
	// nil otherwise.
	GetCourse(ctx context.Context, id, userID string) (*Course, error)
}

// MaterialRepository resolves uploaded material metadata.
type MaterialRepository interface {
	// GetMaterial returns the material if it exists and belongs to
	// userID, nil otherwise.
	GetMaterial(ctx context.Context, id, userID string) (*Material, error)
}

// ExtractedTextRepository stores and retrieves extraction artifacts.
type ExtractedTextRepository interface {
	// GetByMaterialID returns the stored text for a material, or nil
	// when none has been extracted yet.
	GetByMaterialID(ctx context.Context, materialID, userID string) (*ExtractedText, error)
	// Create persists a newly extracted text. Implementations assign
	// the ID.
	Create(ctx context.Context, text *ExtractedText) error
}

// QuizRepository persists quizzes and graded attempts.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuiz(ctx context.Context, id, userID string) (*Quiz, error)
	ListQuizzesByCourse(ctx context.Context, courseID, userID string) ([]*Quiz, error)
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
}

// ObjectStorage retrieves uploaded documents for local processing.
type ObjectStorage interface {
	// DownloadToLocal fetches the object at storagePath into a
	// temporary local file and returns its path. The caller owns the
	// file and must remove it.
	DownloadToLocal(ctx context.Context, storagePath string) (string, error)
}

// TextExtractor turns a local document into normalized text.
type TextExtractor interface {
	// Extract returns the normalized text and the extraction method
	// tag for the file at path, selecting the format from mimeType
	// with a filename-extension fallback.
	Extract(ctx context.Context, path, mimeType string) (text string, method string, err error)
}

// TextGenerator performs one completion round trip against the external
// text-generation service.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
