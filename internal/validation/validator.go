package validation

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"regexp"
	"strings"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAddQuestionRequest checks the admin question form. Rules are
// checked in the order the form presents them so the first entry of the
// returned list is the first violated rule.
func (v *Validator) ValidateAddQuestionRequest(req *dto.AddQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	}

	if len(req.Choices) < 2 {
		errors = append(errors, domain.NewOutOfRangeError("choices", len(req.Choices), 2, maxChoices))
	} else {
		for _, c := range req.Choices {
			if strings.TrimSpace(c) == "" {
				errors = append(errors, domain.NewMissingFieldError("choices"))
				break
			}
		}
		if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Choices) {
			errors = append(errors, domain.NewOutOfRangeError("correct_index", req.CorrectIndex, 0, len(req.Choices)-1))
		}
	}

	if url := strings.TrimSpace(req.ImageURL); url != "" && !isHTTPURL(url) {
		errors = append(errors, domain.NewInvalidFormatError("image_url", url))
	}

	if strings.TrimSpace(req.ExamID) == "" {
		errors = append(errors, domain.NewMissingFieldError("exam_id"))
	}
	if strings.TrimSpace(req.ExamTitle) == "" {
		errors = append(errors, domain.NewMissingFieldError("exam_title"))
	}
	if strings.TrimSpace(req.Section) == "" {
		errors = append(errors, domain.NewMissingFieldError("section"))
	}

	return errors
}

const maxChoices = 10

// isHTTPURL checks the http(s) shape of an image reference. Only the scheme
// is checked; fetching or validating the image itself is out of scope.
func isHTTPURL(s string) bool {
	validURL := regexp.MustCompile(`(?i)^https?://`)
	return validURL.MatchString(s)
}
