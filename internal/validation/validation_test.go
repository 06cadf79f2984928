package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ciberehd/proposaldb/internal/models"
)

// validDraft returns the smallest draft that passes the submission gate.
func validDraft() models.ProposalDraft {
	draft := models.NewDraft()
	draft.Title = "Gut Microbiome Dynamics"
	draft.Acronym = "GUTDYN"
	draft.ProjectCoordinator.Name = "Dr. Ana García"
	draft.ProjectCoordinator.Email = "ana.garcia@ciberehd.org"
	draft.Signatures.PiCoordinator = "Ana García"
	draft.Signatures.PiCiber = "Luis Pérez"
	return draft
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \t\n  "))
	assert.Equal(t, 1, CountWords("word"))
	assert.Equal(t, 3, CountWords("  one   two\nthree  "))
	assert.Equal(t, 2, CountWords("trailing space "))
}

func TestValidateSubmissionMinimalDraft(t *testing.T) {
	draft := validDraft()
	violations := ValidateSubmission(&draft)
	assert.Nil(t, violations, "minimal draft should pass the submission gate, got: %v", violations)
}

func TestValidateSubmissionRequiredFields(t *testing.T) {
	draft := validDraft()
	draft.Title = ""
	draft.Acronym = ""

	violations := ValidateSubmission(&draft)
	assert.Contains(t, violations, "Project title is required")
	assert.Contains(t, violations, "Project acronym is required")
}

func TestValidateSubmissionAggregatesAllViolations(t *testing.T) {
	draft := models.NewDraft()

	violations := ValidateSubmission(&draft)
	// Title, acronym, coordinator name and email, both required signatures.
	assert.GreaterOrEqual(t, len(violations), 6)
	assert.Contains(t, violations, "Project title is required")
	assert.Contains(t, violations, "Name is required")
	assert.Contains(t, violations, "Email is required")
	assert.Contains(t, violations, "PI Coordinator signature is required")
	assert.Contains(t, violations, "PI of CIBER research group signature is required")
}

func TestValidateSubmissionEmailFormat(t *testing.T) {
	draft := validDraft()
	draft.ProjectCoordinator.Email = "not-an-email"

	violations := ValidateSubmission(&draft)
	assert.Contains(t, violations, "Invalid email format")
}

func TestValidateSubmissionBudgetCeiling(t *testing.T) {
	draft := validDraft()
	draft.Budget.Items = []models.BudgetLine{
		{Type: "equipment", Description: "Sequencer", Group: "G01", Year1Amount: 30000, Year2Amount: 25000},
	}
	draft.Budget.Recompute()

	violations := ValidateSubmission(&draft)
	assert.Contains(t, violations, "Total budget cannot exceed €50,000")
}

func TestValidateSubmissionBudgetCeilingInclusive(t *testing.T) {
	draft := validDraft()
	draft.Budget.Items = []models.BudgetLine{
		{Type: "equipment", Description: "Sequencer", Group: "G01", Year1Amount: 25000, Year2Amount: 25000},
	}
	draft.Budget.Recompute()

	violations := ValidateSubmission(&draft)
	assert.Nil(t, violations, "a budget of exactly €50,000 is allowed, got: %v", violations)
}

func TestValidateSubmissionCharacterCaps(t *testing.T) {
	draft := validDraft()
	draft.Summary = strings.Repeat("a", 1801)
	draft.Objectives = strings.Repeat("b", 3001)

	violations := ValidateSubmission(&draft)
	assert.Contains(t, violations, "Summary cannot exceed 300 words")
	assert.Contains(t, violations, "Objectives cannot exceed 500 words")
}

func TestValidateSubmissionYearRange(t *testing.T) {
	draft := validDraft()
	early := 1899
	future := 3000
	draft.ProjectCoordinator.ThesisYear = &early
	draft.ProjectCoordinator.BirthYear = &future

	violations := ValidateSubmission(&draft)
	assert.Len(t, violations, 2)

	// nil year fields are simply omitted
	draft = validDraft()
	violations = ValidateSubmission(&draft)
	assert.Nil(t, violations)

	ok := 1985
	draft.ProjectCoordinator.BirthYear = &ok
	violations = ValidateSubmission(&draft)
	assert.Nil(t, violations)
}

func TestValidateSubmissionBudgetLineShape(t *testing.T) {
	draft := validDraft()
	draft.Budget.Items = []models.BudgetLine{
		{Type: "stationery", Description: "", Group: "G01", Year1Amount: -5},
	}
	draft.Budget.Recompute()

	violations := ValidateSubmission(&draft)
	assert.NotNil(t, violations)
	assert.GreaterOrEqual(t, len(violations), 3)
}

func TestValidateDraftNarratives(t *testing.T) {
	draft := validDraft()
	draft.ProjectCoordinator.Phone = "+34 600 000 000"
	draft.ProjectCoordinator.Institution = "Hospital Clínic"

	violations := ValidateDraft(&draft)
	assert.Contains(t, violations, "Summary is required")
	assert.Contains(t, violations, "Objectives are required")
	assert.Contains(t, violations, "State of the art is required")
	assert.Contains(t, violations, "Workplan is required")
	assert.Contains(t, violations, "Future plan is required")
	assert.Contains(t, violations, "Appendix is required")
}

func TestValidateDraftContactFields(t *testing.T) {
	draft := validDraft()

	violations := ValidateDraft(&draft)
	assert.Contains(t, violations, "Project coordinator phone is required")
	assert.Contains(t, violations, "Project coordinator institution is required")

	draft.ResearchTeam.CiberehdGroups = []models.CiberehdGroup{
		{Name: "Dr. Ruiz", Email: "ruiz@ciberehd.org"},
	}
	violations = ValidateDraft(&draft)
	assert.Contains(t, violations, "CIBEREHD group phone is required")
}

func TestValidateStructBudgetItem(t *testing.T) {
	item := models.BudgetItem{
		ProposalID:  1,
		Type:        "consumable",
		Description: "Antibodies",
		Group:       "G05",
		Year1Amount: 120,
	}
	assert.Nil(t, ValidateStruct(&item))

	item.Type = "miscellaneous"
	violations := ValidateStruct(&item)
	assert.NotNil(t, violations)
}

func TestValidateStructFile(t *testing.T) {
	file := models.File{
		ProposalID: 1,
		Type:       "workplanGantt",
		Filename:   "gantt.pdf",
		Mimetype:   "application/pdf",
		Size:       2048,
		Content:    "JVBERi0xLjQ=",
	}
	assert.Nil(t, ValidateStruct(&file))

	file.Size = 0
	file.Content = ""
	violations := ValidateStruct(&file)
	assert.NotNil(t, violations)
	assert.Len(t, violations, 2)
}
