package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ciberehd/proposaldb/internal/models"
)

// Word-count targets shown by the on-screen counters. These are independent
// of the character caps enforced by ValidateSubmission.
const (
	SummaryWordLimit    = 300
	ObjectivesWordLimit = 500
)

// BudgetCeiling is the single hard numeric ceiling in the system, inclusive.
const BudgetCeiling = 50000

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// yearrange: 1900 up to the current calendar year
	_ = v.RegisterValidation("yearrange", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1900 && year <= int64(time.Now().Year())
	})

	return v
}

// CountWords counts whitespace-separated tokens after trimming. Empty or
// all-whitespace text counts as zero words.
func CountWords(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// ValidateSubmission checks a draft against the submission gate: required
// identity fields, character caps, email shape, year ranges, budget item
// shape and the budget ceiling, required signatures and file record shape.
// It aggregates every violation rather than stopping at the first; a nil
// return means the draft may be stored.
func ValidateSubmission(draft *models.ProposalDraft) []string {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only occurs for non-struct input, which
		// cannot happen for a typed draft.
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, violationMessage(fe))
	}
	return violations
}

// ValidateDraft applies the full form-level rule set: everything in
// ValidateSubmission plus the required narrative sections and nested contact
// fields the form marks as required. Used by form front ends; the submission
// endpoint deliberately stops at the submission gate.
func ValidateDraft(draft *models.ProposalDraft) []string {
	violations := ValidateSubmission(draft)
	violations = append(violations, narrativeViolations(draft)...)
	violations = append(violations, contactViolations(&draft.ProjectCoordinator, "Project coordinator")...)
	for i := range draft.ResearchTeam.CiberehdGroups {
		violations = append(violations, contactViolations(&draft.ResearchTeam.CiberehdGroups[i], "CIBEREHD group")...)
	}
	return violations
}

func narrativeViolations(draft *models.ProposalDraft) []string {
	var violations []string
	required := []struct {
		value   string
		message string
	}{
		{draft.Summary, "Summary is required"},
		{draft.Objectives, "Objectives are required"},
		{draft.StateOfArt, "State of the art is required"},
		{draft.Workplan, "Workplan is required"},
		{draft.Innovation, "Innovation description is required"},
		{draft.Coordination, "Coordination description is required"},
		{draft.FuturePlan, "Future plan is required"},
		{draft.Appendix, "Appendix is required"},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			violations = append(violations, field.message)
		}
	}
	return violations
}

func contactViolations(c *models.ProjectCoordinator, who string) []string {
	var violations []string
	if strings.TrimSpace(c.Phone) == "" {
		violations = append(violations, who+" phone is required")
	}
	if strings.TrimSpace(c.Institution) == "" {
		violations = append(violations, who+" institution is required")
	}
	return violations
}

// violationMessage maps a failed constraint to the human-readable message the
// portal has always shown for it.
func violationMessage(fe validator.FieldError) string {
	switch fe.Namespace() {
	case "ProposalDraft.Title":
		return "Project title is required"
	case "ProposalDraft.Acronym":
		return "Project acronym is required"
	case "ProposalDraft.Summary":
		return "Summary cannot exceed 300 words"
	case "ProposalDraft.Objectives":
		return "Objectives cannot exceed 500 words"
	case "ProposalDraft.ProjectCoordinator.Name":
		return "Name is required"
	case "ProposalDraft.ProjectCoordinator.Email":
		if fe.Tag() == "email" {
			return "Invalid email format"
		}
		return "Email is required"
	case "ProposalDraft.Signatures.PiCoordinator":
		return "PI Coordinator signature is required"
	case "ProposalDraft.Signatures.PiCiber":
		return "PI of CIBER research group signature is required"
	case "ProposalDraft.Budget.GrandTotal":
		return "Total budget cannot exceed €50,000"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "yearrange":
		return fmt.Sprintf("%s must be between 1900 and %d", fe.Field(), time.Now().Year())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// ValidateStruct runs the tag-based rules on any model carrying validate
// tags, aggregating messages. Used by the budget-item and file sub-resource
// endpoints.
func ValidateStruct(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, violationMessage(fe))
	}
	return violations
}
