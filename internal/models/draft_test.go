package models

import "testing"

func TestBudgetRecompute(t *testing.T) {
	b := Budget{
		Items: []BudgetLine{
			{Type: "consumable", Description: "Reagents", Group: "G01", Year1Amount: 1000, Year2Amount: 500},
			{Type: "travel", Description: "Conference", Group: "G02", Year1Amount: 250.50, Year2Amount: 249.50},
		},
	}

	b.Recompute()

	if b.TotalYear1 != 1250.50 {
		t.Errorf("Expected TotalYear1 1250.50, got %v", b.TotalYear1)
	}
	if b.TotalYear2 != 749.50 {
		t.Errorf("Expected TotalYear2 749.50, got %v", b.TotalYear2)
	}
	if b.GrandTotal != 2000 {
		t.Errorf("Expected GrandTotal 2000, got %v", b.GrandTotal)
	}
}

func TestBudgetRecomputeIgnoresStaleTotals(t *testing.T) {
	// Totals are rederived from the item list, never trusted as given.
	b := Budget{
		Items:      []BudgetLine{{Type: "service", Description: "Sequencing", Group: "G03", Year1Amount: 100, Year2Amount: 200}},
		TotalYear1: 99999,
		TotalYear2: 99999,
		GrandTotal: 99999,
	}

	b.Recompute()

	if b.TotalYear1 != 100 || b.TotalYear2 != 200 || b.GrandTotal != 300 {
		t.Errorf("Expected totals 100/200/300, got %v/%v/%v", b.TotalYear1, b.TotalYear2, b.GrandTotal)
	}
}

func TestBudgetRecomputeEmpty(t *testing.T) {
	b := Budget{GrandTotal: 500}
	b.Recompute()
	if b.TotalYear1 != 0 || b.TotalYear2 != 0 || b.GrandTotal != 0 {
		t.Errorf("Expected zero totals for empty item list, got %v/%v/%v", b.TotalYear1, b.TotalYear2, b.GrandTotal)
	}
}

func TestBudgetRecomputeIdempotent(t *testing.T) {
	b := Budget{
		Items: []BudgetLine{{Type: "equipment", Description: "Microscope lease", Group: "G01", Year1Amount: 4000, Year2Amount: 4000}},
	}
	b.Recompute()
	y1, y2, total := b.TotalYear1, b.TotalYear2, b.GrandTotal
	b.Recompute()
	if b.TotalYear1 != y1 || b.TotalYear2 != y2 || b.GrandTotal != total {
		t.Errorf("Recompute changed totals on second call: %v/%v/%v vs %v/%v/%v",
			b.TotalYear1, b.TotalYear2, b.GrandTotal, y1, y2, total)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("Expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "draft", "PENDING", "accepted"} {
		if ValidStatus(s) {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestNewDraftInitializesLists(t *testing.T) {
	d := NewDraft()
	if d.ProjectCoordinator.Collaborators == nil {
		t.Error("Expected collaborators list to be initialized")
	}
	if d.ResearchTeam.CiberehdGroups == nil || d.ResearchTeam.CiberGroups == nil || d.ResearchTeam.ExternalGroups == nil {
		t.Error("Expected research team lists to be initialized")
	}
	if d.Budget.Items == nil {
		t.Error("Expected budget item list to be initialized")
	}
	if d.Files == nil {
		t.Error("Expected files list to be initialized")
	}
}
