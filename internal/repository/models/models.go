// Package models holds the database row representations and the custom
// column types used to store JSON payloads in Postgres.
package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Question mirrors the quiz question JSON stored in the quizzes table.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// QuestionList is stored as a JSONB column.
type QuestionList []Question

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuestionList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*q = QuestionList{}
		return nil
	}
	return json.Unmarshal(bytesToParse, q)
}

// IntList is stored as a JSONB column (submitted answer indices).
type IntList []int

// Value implements the driver.Valuer interface
func (s IntList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *IntList) Scan(value interface{}) error {
	if value == nil {
		*s = IntList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("IntList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = IntList{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// AttemptResult mirrors one per-question grading outcome.
type AttemptResult struct {
	QuestionIndex int    `json:"questionIndex"`
	Selected      int    `json:"selected"`
	Correct       int    `json:"correct"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// AttemptResultList is stored as a JSONB column.
type AttemptResultList []AttemptResult

// Value implements the driver.Valuer interface
func (r AttemptResultList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (r *AttemptResultList) Scan(value interface{}) error {
	if value == nil {
		*r = AttemptResultList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AttemptResultList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*r = AttemptResultList{}
		return nil
	}
	return json.Unmarshal(bytesToParse, r)
}

type Course struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type CourseMaterial struct {
	ID               string         `db:"id"`
	UserID           string         `db:"user_id"`
	CourseID         string         `db:"course_id"`
	Filename         string         `db:"filename"`
	OriginalFilename sql.NullString `db:"original_filename"`
	FilePath         string         `db:"file_path"`
	MimeType         sql.NullString `db:"mime_type"`
	FileSize         sql.NullInt64  `db:"file_size"`
	CreatedAt        time.Time      `db:"created_at"`
}

type ExtractedText struct {
	ID               string    `db:"id"`
	CourseMaterialID string    `db:"course_material_id"`
	UserID           string    `db:"user_id"`
	ExtractedText    string    `db:"extracted_text"`
	TextLength       int       `db:"text_length"`
	WordCount        int       `db:"word_count"`
	ExtractionMethod string    `db:"extraction_method"`
	CreatedAt        time.Time `db:"created_at"`
}

type Quiz struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	CourseID  sql.NullString `db:"course_id"`
	Title     string         `db:"title"`
	Questions QuestionList   `db:"questions"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type QuizAttempt struct {
	ID         string            `db:"id"`
	UserID     string            `db:"user_id"`
	QuizID     string            `db:"quiz_id"`
	Score      int               `db:"score"`
	Total      int               `db:"total"`
	Percentage float64           `db:"percentage"`
	Answers    IntList           `db:"answers"`
	Results    AttemptResultList `db:"results"`
	CreatedAt  time.Time         `db:"created_at"`
}
