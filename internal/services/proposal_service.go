package services

import (
	"log"

	"github.com/ciberehd/proposaldb/internal/models"
	"github.com/ciberehd/proposaldb/internal/repository"
	"github.com/ciberehd/proposaldb/internal/types"
	"github.com/ciberehd/proposaldb/internal/validation"
)

// ProposalService owns the submission workflow: recompute derived budget
// totals, run the submission gate, delegate to the repository.
type ProposalService struct {
	store repository.ProposalStore
}

// NewProposalService builds a service over the given store.
func NewProposalService(store repository.ProposalStore) *ProposalService {
	return &ProposalService{store: store}
}

// Submit validates a draft and stores it as a pending proposal with its
// reference number assigned. Budget totals are rederived from the item list
// before validation so a tampered grand total cannot sneak past the ceiling.
func (s *ProposalService) Submit(draft *models.ProposalDraft) (*models.Proposal, error) {
	draft.Budget.Recompute()

	if violations := validation.ValidateSubmission(draft); violations != nil {
		return nil, types.NewValidationError(violations)
	}

	proposal, err := s.store.CreateProposal(draft)
	if err != nil {
		log.Printf("create proposal failed: %v", err)
		return nil, err
	}

	log.Printf("proposal %d created, reference %s", proposal.ID, proposal.ReferenceNumber)
	return proposal, nil
}

// List returns every stored proposal, in no particular order.
func (s *ProposalService) List() ([]models.Proposal, error) {
	return s.store.GetAllProposals()
}

// Get returns the proposal with the given id, or repository.ErrNotFound.
func (s *ProposalService) Get(id uint) (*models.Proposal, error) {
	return s.store.GetProposal(id)
}

// GetByReference returns the proposal with the given reference number, or
// repository.ErrNotFound.
func (s *ProposalService) GetByReference(referenceNumber string) (*models.Proposal, error) {
	return s.store.GetProposalByReference(referenceNumber)
}

// UpdateStatus replaces a proposal's status. Restriction of the value to the
// known status set is the API boundary's concern.
func (s *ProposalService) UpdateStatus(id uint, status string) (*models.Proposal, error) {
	proposal, err := s.store.UpdateProposalStatus(id, status)
	if err != nil {
		return nil, err
	}
	log.Printf("proposal %d status set to %s", id, status)
	return proposal, nil
}

// AddBudgetItem validates and persists one budget line as a sub-resource of
// a proposal.
func (s *ProposalService) AddBudgetItem(item *models.BudgetItem) error {
	if violations := validation.ValidateStruct(item); violations != nil {
		return types.NewValidationError(violations)
	}
	return s.store.CreateBudgetItem(item)
}

// BudgetItems lists the budget items persisted for a proposal.
func (s *ProposalService) BudgetItems(proposalID uint) ([]models.BudgetItem, error) {
	return s.store.GetBudgetItemsByProposal(proposalID)
}

// AddFile validates and persists one file attachment as a sub-resource of a
// proposal.
func (s *ProposalService) AddFile(file *models.File) error {
	if violations := validation.ValidateStruct(file); violations != nil {
		return types.NewValidationError(violations)
	}
	return s.store.CreateFile(file)
}

// Files lists the file attachments persisted for a proposal.
func (s *ProposalService) Files(proposalID uint) ([]models.File, error) {
	return s.store.GetFilesByProposal(proposalID)
}
