package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ciberehd/proposaldb/internal/models"
)

func setupStore(t *testing.T) *GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Proposal{}, &models.BudgetItem{}, &models.File{}))
	return NewGormStore(db)
}

func sampleDraft() *models.ProposalDraft {
	draft := models.NewDraft()
	draft.Title = "Liver Fibrosis Biomarkers"
	draft.Acronym = "LIFIB"
	draft.Summary = "A short summary."
	draft.ProjectCoordinator.Name = "Dr. Marta Soler"
	draft.ProjectCoordinator.Email = "marta.soler@ciberehd.org"
	draft.Budget.Items = []models.BudgetLine{
		{Type: "consumable", Description: "ELISA kits", Group: "G12", Year1Amount: 3000, Year2Amount: 2000},
	}
	draft.Budget.Recompute()
	draft.Signatures.PiCoordinator = "Marta Soler"
	draft.Signatures.PiCiber = "Jordi Vila"
	return &draft
}

func TestFormatReferenceNumber(t *testing.T) {
	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "CIBEREHD-2026-0001", FormatReferenceNumber(1, at))
	assert.Equal(t, "CIBEREHD-2026-0042", FormatReferenceNumber(42, at))
	assert.Equal(t, "CIBEREHD-2026-12345", FormatReferenceNumber(12345, at))
}

func TestCreateProposalAssignsReference(t *testing.T) {
	store := setupStore(t)

	proposal, err := store.CreateProposal(sampleDraft())
	require.NoError(t, err)

	assert.Equal(t, uint(1), proposal.ID)
	assert.Equal(t, models.StatusPending, proposal.Status)
	assert.False(t, proposal.CreatedAt.IsZero())

	expected := fmt.Sprintf("CIBEREHD-%d-0001", proposal.CreatedAt.Year())
	assert.Equal(t, expected, proposal.ReferenceNumber)

	// The reference is persisted, not just set on the returned value.
	stored, err := store.GetProposal(proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, stored.ReferenceNumber)
}

func TestSequentialCreatesNumberInOrder(t *testing.T) {
	store := setupStore(t)

	for i := 1; i <= 5; i++ {
		proposal, err := store.CreateProposal(sampleDraft())
		require.NoError(t, err)
		assert.Equal(t, uint(i), proposal.ID)
		expected := fmt.Sprintf("CIBEREHD-%d-%04d", proposal.CreatedAt.Year(), i)
		assert.Equal(t, expected, proposal.ReferenceNumber)
	}

	count, err := store.CountProposals()
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestGetProposalByReference(t *testing.T) {
	store := setupStore(t)

	created, err := store.CreateProposal(sampleDraft())
	require.NoError(t, err)

	found, err := store.GetProposalByReference(created.ReferenceNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Liver Fibrosis Biomarkers", found.Title)

	_, err = store.GetProposalByReference("CIBEREHD-1999-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProposalNotFound(t *testing.T) {
	store := setupStore(t)
	_, err := store.GetProposal(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNestedRecordsRoundTrip(t *testing.T) {
	store := setupStore(t)

	draft := sampleDraft()
	draft.ResearchTeam.CiberGroups = []models.CiberGroup{
		{ResearcherName: "Dr. Ortega", GroupCode: "CB06", ThematicArea: "Hepatology"},
	}
	created, err := store.CreateProposal(draft)
	require.NoError(t, err)

	stored, err := store.GetProposal(created.ID)
	require.NoError(t, err)

	coordinator := stored.ProjectCoordinator.Data()
	assert.Equal(t, "Dr. Marta Soler", coordinator.Name)

	budget := stored.Budget.Data()
	require.Len(t, budget.Items, 1)
	assert.Equal(t, float64(5000), budget.GrandTotal)

	team := stored.ResearchTeam.Data()
	require.Len(t, team.CiberGroups, 1)
	assert.Equal(t, "Hepatology", team.CiberGroups[0].ThematicArea)
}

func TestUpdateProposalStatus(t *testing.T) {
	store := setupStore(t)

	created, err := store.CreateProposal(sampleDraft())
	require.NoError(t, err)

	updated, err := store.UpdateProposalStatus(created.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)

	// Only the status changed.
	stored, err := store.GetProposal(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Equal(t, created.ReferenceNumber, stored.ReferenceNumber)
	assert.Equal(t, created.Title, stored.Title)

	_, err = store.UpdateProposalStatus(99, models.StatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIndependentIDSequences(t *testing.T) {
	store := setupStore(t)

	proposal, err := store.CreateProposal(sampleDraft())
	require.NoError(t, err)

	item := &models.BudgetItem{
		ProposalID:  proposal.ID,
		Type:        "travel",
		Description: "Consortium meeting",
		Group:       "G12",
		Year1Amount: 400,
	}
	require.NoError(t, store.CreateBudgetItem(item))

	file := &models.File{
		ProposalID: proposal.ID,
		Type:       "annexDocumentation",
		Filename:   "annex.pdf",
		Mimetype:   "application/pdf",
		Size:       100,
		Content:    "JVBERi0xLjQ=",
	}
	require.NoError(t, store.CreateFile(file))

	// Each entity advances its own sequence.
	assert.Equal(t, uint(1), proposal.ID)
	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, uint(1), file.ID)
}

func TestSubResourceFiltering(t *testing.T) {
	store := setupStore(t)

	first, err := store.CreateProposal(sampleDraft())
	require.NoError(t, err)
	second, err := store.CreateProposal(sampleDraft())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, store.CreateBudgetItem(&models.BudgetItem{
			ProposalID: first.ID, Type: "service", Description: "Sequencing run", Group: "G12", Year1Amount: 800,
		}))
	}
	require.NoError(t, store.CreateBudgetItem(&models.BudgetItem{
		ProposalID: second.ID, Type: "other", Description: "Publication fees", Group: "G12", Year2Amount: 1500,
	}))
	require.NoError(t, store.CreateFile(&models.File{
		ProposalID: second.ID, Type: "workplanGantt", Filename: "gantt.pdf",
		Mimetype: "application/pdf", Size: 10, Content: "JVBERi0xLjQ=",
	}))

	items, err := store.GetBudgetItemsByProposal(first.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = store.GetBudgetItemsByProposal(second.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	files, err := store.GetFilesByProposal(first.ID)
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = store.GetFilesByProposal(second.ID)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	// Unknown proposals yield empty lists, not errors.
	items, err = store.GetBudgetItemsByProposal(999)
	require.NoError(t, err)
	assert.Empty(t, items)
}
