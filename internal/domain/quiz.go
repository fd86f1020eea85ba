package domain

import (
	"fmt"
	"strings"
	"time"
)

// GeneratedQuestionCount is the number of questions an AI-generated quiz
// must contain, no more, no less.
const GeneratedQuestionCount = 10

// OptionCount is the number of choices each question carries.
const OptionCount = 4

// Question is one multiple-choice item with four options, the index of the
// correct option and an explanation of the correct answer.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Validate checks the Question invariants: all fields non-empty after
// trimming, exactly four options, correct index in [0,3].
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) != OptionCount {
		return NewValidationError(fmt.Sprintf("question must have exactly %d options", OptionCount))
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return NewValidationError("question options must be non-empty")
		}
	}
	if q.Correct < 0 || q.Correct >= OptionCount {
		return NewValidationError(fmt.Sprintf("correct index %d is out of range", q.Correct))
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return NewValidationError("question explanation is required")
	}
	return nil
}

// Quiz is a titled set of questions generated from course materials.
type Quiz struct {
	ID        string
	UserID    string
	CourseID  string
	Title     string
	Questions []Question
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(userID, courseID, title string, questions []Question) *Quiz {
	now := time.Now()
	return &Quiz{
		UserID:    userID,
		CourseID:  courseID,
		Title:     title,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the quiz. AI-generated quizzes carry exactly
// GeneratedQuestionCount questions.
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewValidationError("title is required")
	}
	if len(q.Questions) != GeneratedQuestionCount {
		return NewValidationError(fmt.Sprintf("quiz must have exactly %d questions, got %d", GeneratedQuestionCount, len(q.Questions)))
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return NewValidationError(fmt.Sprintf("question %d: %v", i+1, err))
		}
	}
	return nil
}

// Course groups materials and quizzes for one user.
type Course struct {
	ID          string
	UserID      string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Material identifies an uploaded course document. It is owned by the
// uploading user and immutable once created apart from renames.
type Material struct {
	ID               string
	UserID           string
	CourseID         string
	Filename         string
	OriginalFilename string
	FilePath         string
	MimeType         string
	FileSize         int64
	CreatedAt        time.Time
}

// DisplayName returns the name used in warnings and quiz titles.
func (m *Material) DisplayName() string {
	if m.OriginalFilename != "" {
		return m.OriginalFilename
	}
	return m.Filename
}

// Extraction method tags recorded on extracted_texts rows.
const (
	ExtractionMethodPDF       = "pdf"
	ExtractionMethodDOCX      = "docx"
	ExtractionMethodPlainText = "plain-text"
	// ExtractionMethodMigration marks rows backfilled by the one-off
	// migration of pre-existing materials, where the original method
	// is unknown.
	ExtractionMethodMigration = "migration"
)

// ExtractedText is the normalized plain-text artifact derived from a
// Material. It is created once per material and never mutated in place.
type ExtractedText struct {
	ID         string
	MaterialID string
	UserID     string
	Text       string
	TextLength int
	WordCount  int
	Method     string
	CreatedAt  time.Time
}

// NewExtractedText builds the derived artifact, computing the stored
// character-length and word-count metadata.
func NewExtractedText(materialID, userID, text, method string) *ExtractedText {
	return &ExtractedText{
		MaterialID: materialID,
		UserID:     userID,
		Text:       text,
		TextLength: len(text),
		WordCount:  CountWords(text),
		Method:     method,
		CreatedAt:  time.Now(),
	}
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// AnswerResult is the per-question outcome of a graded attempt.
type AnswerResult struct {
	QuestionIndex int    `json:"questionIndex"`
	Selected      int    `json:"selected"`
	Correct       int    `json:"correct"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// QuizAttempt records one graded submission of a quiz.
type QuizAttempt struct {
	ID         string
	UserID     string
	QuizID     string
	Score      int
	Total      int
	Percentage float64
	Answers    []int
	Results    []AnswerResult
	CreatedAt  time.Time
}
