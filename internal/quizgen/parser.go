package quizgen

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"quizai/internal/domain"
)

var (
	codeBlockRE = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	jsonArrayRE = regexp.MustCompile(`(?s)\[.*\]`)
)

// ParseQuizResponse turns the raw model output into a validated question
// list of exactly domain.GeneratedQuestionCount entries. The model is an
// uncontrolled producer, so nothing about the payload's shape is assumed
// before validation. Pure given its input; no I/O.
func ParseQuizResponse(raw string) ([]domain.Question, error) {
	jsonText := strings.TrimSpace(raw)

	// Models frequently wrap the payload in a fenced code block despite
	// instructions not to.
	if m := codeBlockRE.FindStringSubmatch(jsonText); m != nil {
		jsonText = strings.TrimSpace(m[1])
	}

	// Fall back to the first [...] span when prose surrounds the array.
	if m := jsonArrayRE.FindString(jsonText); m != "" {
		jsonText = m
	}

	var parsed any
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, domain.NewMalformedResponseError(err)
	}

	elements, ok := parsed.([]any)
	if !ok {
		return nil, domain.NewError(domain.CodeMalformedResponse, "AI response is not an array", nil)
	}

	questions := make([]domain.Question, 0, len(elements))
	for i, element := range elements {
		q, err := validateQuestion(i+1, element)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	if len(questions) != domain.GeneratedQuestionCount {
		return nil, domain.NewValidationError(fmt.Sprintf("Expected exactly %d questions, but got %d", domain.GeneratedQuestionCount, len(questions)))
	}

	return questions, nil
}

// validateQuestion checks one candidate element. pos is 1-based and is
// reported in every failure message.
func validateQuestion(pos int, element any) (domain.Question, error) {
	var q domain.Question

	obj, ok := element.(map[string]any)
	if !ok {
		return q, domain.NewValidationError(fmt.Sprintf("Question %d is missing or invalid 'question' field", pos))
	}

	questionText, ok := obj["question"].(string)
	if !ok || strings.TrimSpace(questionText) == "" {
		return q, domain.NewValidationError(fmt.Sprintf("Question %d is missing or invalid 'question' field", pos))
	}

	rawOptions, ok := obj["options"].([]any)
	if !ok || len(rawOptions) != domain.OptionCount {
		return q, domain.NewValidationError(fmt.Sprintf("Question %d must have exactly %d options", pos, domain.OptionCount))
	}
	options := make([]string, domain.OptionCount)
	for i, rawOpt := range rawOptions {
		opt, ok := rawOpt.(string)
		if !ok {
			return q, domain.NewValidationError(fmt.Sprintf("Question %d options must all be strings", pos))
		}
		options[i] = strings.TrimSpace(opt)
	}

	correct, err := coerceCorrectIndex(obj["correct"])
	if err != nil || correct < 0 || correct > domain.OptionCount-1 {
		return q, domain.NewValidationError(fmt.Sprintf("Question %d must have 'correct' as a number between 0 and %d", pos, domain.OptionCount-1))
	}

	explanation, ok := obj["explanation"].(string)
	if !ok || strings.TrimSpace(explanation) == "" {
		return q, domain.NewValidationError(fmt.Sprintf("Question %d is missing or invalid 'explanation' field", pos))
	}

	q = domain.Question{
		Question:    strings.TrimSpace(questionText),
		Options:     options,
		Correct:     correct,
		Explanation: strings.TrimSpace(explanation),
	}
	return q, nil
}

// coerceCorrectIndex accepts a JSON number or a numeric string and returns
// it as an integer index. Fractional values are rejected: they could never
// match a selected option.
func coerceCorrectIndex(value any) (int, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("correct is not a number: %T", value)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("correct is not an integer: %v", f)
	}
	return int(f), nil
}
