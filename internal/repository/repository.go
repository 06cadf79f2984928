package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/ciberehd/proposaldb/internal/models"
)

// ErrNotFound is returned by point lookups and status updates when no record
// matches. Callers translate it to a 404.
var ErrNotFound = errors.New("not found")

// ProposalStore is the repository contract for proposals and their
// sub-resources. The process-default implementation is GORM over in-memory
// sqlite; a durable backend substitutes by configuration without changing
// callers.
type ProposalStore interface {
	CreateProposal(draft *models.ProposalDraft) (*models.Proposal, error)
	GetProposal(id uint) (*models.Proposal, error)
	GetProposalByReference(referenceNumber string) (*models.Proposal, error)
	GetAllProposals() ([]models.Proposal, error)
	UpdateProposalStatus(id uint, status string) (*models.Proposal, error)
	CountProposals() (int64, error)

	CreateBudgetItem(item *models.BudgetItem) error
	GetBudgetItemsByProposal(proposalID uint) ([]models.BudgetItem, error)

	CreateFile(file *models.File) error
	GetFilesByProposal(proposalID uint) ([]models.File, error)
}

// FormatReferenceNumber derives the human-readable reference from the
// assigned proposal id: CIBEREHD-<year>-<id zero-padded to 4 digits>.
// Deriving from the id instead of the collection size makes the number
// unique by construction even under concurrent submissions.
func FormatReferenceNumber(id uint, at time.Time) string {
	return fmt.Sprintf("CIBEREHD-%d-%04d", at.Year(), id)
}
