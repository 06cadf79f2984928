package portal

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/ciberehd/proposaldb/internal/models"
)

// Step indexes the five ordered wizard sections.
type Step int

const (
	StepProjectInformation Step = iota
	StepResearchTeam
	StepProjectDetails
	StepBudget
	StepFinalDetails
)

const lastStep = StepFinalDetails

// MaxFileSize caps attachments at 5 MB, matching the upload control.
const MaxFileSize = 5 * 1024 * 1024

var stepLabels = [...]string{
	"Project Information",
	"Research Team",
	"Project Details",
	"Budget",
	"Final Details",
}

// Label returns the section title shown in the stepper.
func (s Step) Label() string {
	if s < StepProjectInformation || s > lastStep {
		return ""
	}
	return stepLabels[s]
}

// SubmitError is a failed submission pre-check or a submission failure,
// carrying the single message shown to the user.
type SubmitError struct {
	Reason string
}

func (e *SubmitError) Error() string {
	return e.Reason
}

// Pre-check and failure messages, in the wording the form has always used.
const (
	msgProjectInformation = "Please fill in all required fields in Project Information section."
	msgCoordinator        = "Please fill in all required fields for Project Coordinator."
	msgBudgetCeiling      = "Total budget cannot exceed €50,000. Please adjust your budget."
	msgBudgetEmpty        = "Please add at least one budget item."
	msgSignatures         = "Please fill in required signature fields."
	msgSubmissionFailed   = "There was an error submitting your proposal. Please try again."
)

// Wizard is the five-step form state machine. It accumulates a draft in
// memory, keeps the derived budget totals current, and submits the completed
// draft through the API client. It is driven by a single UI goroutine and is
// not safe for concurrent use.
type Wizard struct {
	client *Client

	draft           models.ProposalDraft
	step            Step
	referenceNumber string
}

// NewWizard starts a wizard on step 0 with an empty draft.
func NewWizard(client *Client) *Wizard {
	return &Wizard{
		client: client,
		draft:  models.NewDraft(),
	}
}

// Draft exposes the in-progress draft for field edits. Narrative and nested
// record fields are set directly; list mutations go through the helpers below
// so derived state stays consistent.
func (w *Wizard) Draft() *models.ProposalDraft {
	return &w.draft
}

// Step returns the current step index.
func (w *Wizard) Step() Step {
	return w.step
}

// Next advances one step. It reports false on the final step.
func (w *Wizard) Next() bool {
	if w.step >= lastStep {
		return false
	}
	w.step++
	return true
}

// Previous goes back one step. It reports false on the first step.
func (w *Wizard) Previous() bool {
	if w.step <= StepProjectInformation {
		return false
	}
	w.step--
	return true
}

// GoToStep jumps directly to any step, as the stepper control allows. No
// validation of the current step's fields happens on any transition.
func (w *Wizard) GoToStep(s Step) bool {
	if s < StepProjectInformation || s > lastStep {
		return false
	}
	w.step = s
	return true
}

// AddBudgetItem appends a budget line and rederives all three totals from the
// full item list.
func (w *Wizard) AddBudgetItem(item models.BudgetLine) {
	w.draft.Budget.Items = append(w.draft.Budget.Items, item)
	w.draft.Budget.Recompute()
}

// RemoveBudgetItem removes the line at index and rederives the totals. It
// reports false for an out-of-range index.
func (w *Wizard) RemoveBudgetItem(index int) bool {
	items := w.draft.Budget.Items
	if index < 0 || index >= len(items) {
		return false
	}
	w.draft.Budget.Items = append(items[:index], items[index+1:]...)
	w.draft.Budget.Recompute()
	return true
}

// AddCollaborator appends to the coordinator's collaborator list.
func (w *Wizard) AddCollaborator(collab models.Collaborator) {
	w.draft.ProjectCoordinator.Collaborators = append(w.draft.ProjectCoordinator.Collaborators, collab)
}

// RemoveCollaborator removes the collaborator at index.
func (w *Wizard) RemoveCollaborator(index int) bool {
	list := w.draft.ProjectCoordinator.Collaborators
	if index < 0 || index >= len(list) {
		return false
	}
	w.draft.ProjectCoordinator.Collaborators = append(list[:index], list[index+1:]...)
	return true
}

// AddCiberehdGroup appends a CIBEREHD group to the research team.
func (w *Wizard) AddCiberehdGroup(group models.CiberehdGroup) {
	w.draft.ResearchTeam.CiberehdGroups = append(w.draft.ResearchTeam.CiberehdGroups, group)
}

// RemoveCiberehdGroup removes the CIBEREHD group at index.
func (w *Wizard) RemoveCiberehdGroup(index int) bool {
	list := w.draft.ResearchTeam.CiberehdGroups
	if index < 0 || index >= len(list) {
		return false
	}
	w.draft.ResearchTeam.CiberehdGroups = append(list[:index], list[index+1:]...)
	return true
}

// AddCiberGroup appends a CIBER group to the research team.
func (w *Wizard) AddCiberGroup(group models.CiberGroup) {
	w.draft.ResearchTeam.CiberGroups = append(w.draft.ResearchTeam.CiberGroups, group)
}

// RemoveCiberGroup removes the CIBER group at index.
func (w *Wizard) RemoveCiberGroup(index int) bool {
	list := w.draft.ResearchTeam.CiberGroups
	if index < 0 || index >= len(list) {
		return false
	}
	w.draft.ResearchTeam.CiberGroups = append(list[:index], list[index+1:]...)
	return true
}

// AddExternalGroup appends an external group to the research team.
func (w *Wizard) AddExternalGroup(group models.ExternalGroup) {
	w.draft.ResearchTeam.ExternalGroups = append(w.draft.ResearchTeam.ExternalGroups, group)
}

// RemoveExternalGroup removes the external group at index.
func (w *Wizard) RemoveExternalGroup(index int) bool {
	list := w.draft.ResearchTeam.ExternalGroups
	if index < 0 || index >= len(list) {
		return false
	}
	w.draft.ResearchTeam.ExternalGroups = append(list[:index], list[index+1:]...)
	return true
}

// AttachFile base64-encodes content and appends a file attachment record to
// the draft. No upload happens until final submission.
func (w *Wizard) AttachFile(fileType, filename, mimetype string, content []byte) error {
	if len(content) == 0 {
		return fmt.Errorf("file %s is empty", filename)
	}
	if len(content) > MaxFileSize {
		return fmt.Errorf("file %s exceeds the %dMB limit", filename, MaxFileSize/(1024*1024))
	}
	w.draft.Files = append(w.draft.Files, models.FileAttachment{
		Type:     fileType,
		Filename: filename,
		Mimetype: mimetype,
		Size:     len(content),
		Content:  base64.StdEncoding.EncodeToString(content),
	})
	return nil
}

// RemoveFile removes the attachment at index.
func (w *Wizard) RemoveFile(index int) bool {
	if index < 0 || index >= len(w.draft.Files) {
		return false
	}
	w.draft.Files = append(w.draft.Files[:index], w.draft.Files[index+1:]...)
	return true
}

// ReferenceNumber returns the reference captured from a successful
// submission, or empty.
func (w *Wizard) ReferenceNumber() string {
	return w.referenceNumber
}

// Submit runs the pre-checks in order, stopping at the first failure, then
// posts the draft. The checks run in this order: project information,
// coordinator, budget ceiling, budget item count, signatures. On any failure
// the draft is left untouched for correction and retry.
func (w *Wizard) Submit(ctx context.Context) (string, error) {
	if err := w.precheck(); err != nil {
		return "", err
	}

	proposal, err := w.client.CreateProposal(ctx, &w.draft)
	if err != nil {
		return "", &SubmitError{Reason: msgSubmissionFailed}
	}

	w.referenceNumber = proposal.ReferenceNumber
	return w.referenceNumber, nil
}

func (w *Wizard) precheck() error {
	if w.draft.Title == "" || w.draft.Acronym == "" {
		return &SubmitError{Reason: msgProjectInformation}
	}
	if w.draft.ProjectCoordinator.Name == "" || w.draft.ProjectCoordinator.Email == "" {
		return &SubmitError{Reason: msgCoordinator}
	}
	if w.draft.Budget.GrandTotal > 50000 {
		return &SubmitError{Reason: msgBudgetCeiling}
	}
	if len(w.draft.Budget.Items) == 0 {
		return &SubmitError{Reason: msgBudgetEmpty}
	}
	if w.draft.Signatures.PiCoordinator == "" || w.draft.Signatures.PiCiber == "" {
		return &SubmitError{Reason: msgSignatures}
	}
	return nil
}
