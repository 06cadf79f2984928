package repository

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ciberehd/proposaldb/internal/models"
)

// GormStore implements ProposalStore on a GORM connection. Each entity table
// carries its own auto-increment sequence, so proposal, budget-item and file
// ids advance independently.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection in a ProposalStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateProposal stores a validated draft as a pending proposal. The id is
// assigned by the insert, createdAt is stamped by GORM, and the reference
// number is derived from the assigned id inside the same transaction.
func (s *GormStore) CreateProposal(draft *models.ProposalDraft) (*models.Proposal, error) {
	proposal := &models.Proposal{
		Title:           draft.Title,
		Acronym:         draft.Acronym,
		Summary:         draft.Summary,
		Objectives:      draft.Objectives,
		StateOfArt:      draft.StateOfArt,
		Workplan:        draft.Workplan,
		Innovation:      draft.Innovation,
		Coordination:    draft.Coordination,
		FuturePlan:      draft.FuturePlan,
		IPR:             draft.IPR,
		EthicalApproval: draft.EthicalApproval,
		Appendix:        draft.Appendix,
		Status:          models.StatusPending,

		ProjectCoordinator: datatypes.NewJSONType(draft.ProjectCoordinator),
		ResearchTeam:       datatypes.NewJSONType(draft.ResearchTeam),
		Budget:             datatypes.NewJSONType(draft.Budget),
		Signatures:         datatypes.NewJSONType(draft.Signatures),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(proposal).Error; err != nil {
			return err
		}
		proposal.ReferenceNumber = FormatReferenceNumber(proposal.ID, proposal.CreatedAt)
		return tx.Model(proposal).Update("reference_number", proposal.ReferenceNumber).Error
	})
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

func (s *GormStore) GetProposal(id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := s.db.First(&proposal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

// GetProposalByReference looks a proposal up by its reference number.
// Reference numbers are unique by construction, so at most one row matches.
func (s *GormStore) GetProposalByReference(referenceNumber string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := s.db.Where("reference_number = ?", referenceNumber).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

// GetAllProposals returns the full collection with no ordering guarantee;
// display ordering is a presentation concern.
func (s *GormStore) GetAllProposals() ([]models.Proposal, error) {
	proposals := []models.Proposal{}
	if err := s.db.Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// UpdateProposalStatus replaces only the status field and returns the updated
// record. Membership of the status value is not checked here; the API
// boundary restricts it.
func (s *GormStore) UpdateProposalStatus(id uint, status string) (*models.Proposal, error) {
	proposal, err := s.GetProposal(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(proposal).Update("status", status).Error; err != nil {
		return nil, err
	}
	proposal.Status = status
	return proposal, nil
}

func (s *GormStore) CountProposals() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Proposal{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) CreateBudgetItem(item *models.BudgetItem) error {
	return s.db.Create(item).Error
}

func (s *GormStore) GetBudgetItemsByProposal(proposalID uint) ([]models.BudgetItem, error) {
	items := []models.BudgetItem{}
	if err := s.db.Where("proposal_id = ?", proposalID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) CreateFile(file *models.File) error {
	return s.db.Create(file).Error
}

func (s *GormStore) GetFilesByProposal(proposalID uint) ([]models.File, error) {
	files := []models.File{}
	if err := s.db.Where("proposal_id = ?", proposalID).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
