// Package dto defines the request and response payloads of the HTTP API.
package dto

import "quizai/internal/domain"

// GenerateQuizRequest is the body of POST /api/generate.
type GenerateQuizRequest struct {
	CourseID    string   `json:"course_id"`
	MaterialIDs []string `json:"material_ids"`
}

// QuestionResponse mirrors one generated question.
type QuestionResponse struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// QuizResponse mirrors a persisted (or generated-but-unsaved) quiz.
type QuizResponse struct {
	ID        string             `json:"id,omitempty"`
	CourseID  string             `json:"course_id,omitempty"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt string             `json:"created_at,omitempty"`
}

// GenerateQuizResponse is the body returned by POST /api/generate.
type GenerateQuizResponse struct {
	Success  bool         `json:"success"`
	Quiz     QuizResponse `json:"quiz"`
	Message  string       `json:"message"`
	Warnings []string     `json:"warnings,omitempty"`
}

// QuizListResponse is the body returned by GET /api/quizzes.
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// SubmitQuizRequest is the body of POST /api/submit.
type SubmitQuizRequest struct {
	QuizID  string `json:"quizId"`
	Answers []int  `json:"answers"`
}

// AnswerResultResponse mirrors one graded answer.
type AnswerResultResponse struct {
	QuestionIndex int    `json:"questionIndex"`
	Selected      int    `json:"selected"`
	Correct       int    `json:"correct"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// SubmitQuizResponse is the body returned by POST /api/submit.
type SubmitQuizResponse struct {
	Success    bool                   `json:"success"`
	Score      int                    `json:"score"`
	Total      int                    `json:"total"`
	Percentage float64                `json:"percentage"`
	Results    []AnswerResultResponse `json:"results"`
	AttemptID  string                 `json:"attemptId,omitempty"`
}

// NewQuizResponse converts a domain quiz into its API shape.
func NewQuizResponse(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionResponse{
			Question:    q.Question,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
		}
	}
	resp := QuizResponse{
		ID:        quiz.ID,
		CourseID:  quiz.CourseID,
		Title:     quiz.Title,
		Questions: questions,
	}
	if !quiz.CreatedAt.IsZero() {
		resp.CreatedAt = quiz.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// NewSubmitQuizResponse converts grading output into its API shape.
func NewSubmitQuizResponse(score, total int, percentage float64, results []domain.AnswerResult, attemptID string) SubmitQuizResponse {
	converted := make([]AnswerResultResponse, len(results))
	for i, r := range results {
		converted[i] = AnswerResultResponse{
			QuestionIndex: r.QuestionIndex,
			Selected:      r.Selected,
			Correct:       r.Correct,
			IsCorrect:     r.IsCorrect,
			Explanation:   r.Explanation,
		}
	}
	return SubmitQuizResponse{
		Success:    true,
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Results:    converted,
		AttemptID:  attemptID,
	}
}
