// Package validation checks incoming request shapes before any
// repository or pipeline work happens.
package validation

import (
	"regexp"
	"strings"

	"quizai/internal/domain"
)

// maxMaterialsPerRequest bounds how many materials one generation
// request may reference.
const maxMaterialsPerRequest = 20

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation request body.
func (v *Validator) ValidateGenerateQuizRequest(courseID string, materialIDs []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(courseID) == "" {
		errors = append(errors, domain.NewMissingFieldError("course_id"))
	} else if !isValidULID(courseID) {
		errors = append(errors, domain.NewInvalidFormatError("course_id", courseID))
	}

	if len(materialIDs) == 0 {
		errors = append(errors, domain.NewMissingFieldError("material_ids"))
	} else if len(materialIDs) > maxMaterialsPerRequest {
		errors = append(errors, domain.NewOutOfRangeError("material_ids", len(materialIDs), 1, maxMaterialsPerRequest))
	} else {
		for _, id := range materialIDs {
			if !isValidULID(id) {
				errors = append(errors, domain.NewInvalidFormatError("material_ids", id))
			}
		}
	}

	return errors
}

// ValidateSubmitQuizRequest validates the quiz submission request body.
// Answer values are range-checked later against the quiz's own questions.
func (v *Validator) ValidateSubmitQuizRequest(quizID string, answers []int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quizId"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quizId", quizID))
	}

	if answers == nil {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	return errors
}

// ValidateQuizID validates a quiz id path parameter.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("id", quizID))
	}

	return errors
}

// ValidateCourseID validates a course id query parameter.
func (v *Validator) ValidateCourseID(courseID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(courseID) == "" {
		errors = append(errors, domain.NewMissingFieldError("course_id"))
	} else if !isValidULID(courseID) {
		errors = append(errors, domain.NewInvalidFormatError("course_id", courseID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
