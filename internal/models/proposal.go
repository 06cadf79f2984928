package models

import (
	"time"

	"gorm.io/datatypes"
)

// Proposal statuses. The repository stores whatever it is given; the API
// boundary restricts updates to this set.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three known proposal statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Proposal is a submitted grant application record. The nested coordinator,
// team, budget and signature records are stored as typed JSON columns so they
// are validated once at the boundary and never shape-checked again on read.
type Proposal struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Acronym         string    `gorm:"not null" json:"acronym"`
	Summary         string    `gorm:"not null" json:"summary"`
	Objectives      string    `gorm:"not null" json:"objectives"`
	StateOfArt      string    `gorm:"not null" json:"stateOfArt"`
	Workplan        string    `gorm:"not null" json:"workplan"`
	Innovation      string    `gorm:"not null" json:"innovation"`
	Coordination    string    `gorm:"not null" json:"coordination"`
	FuturePlan      string    `gorm:"not null" json:"futurePlan"`
	IPR             string    `json:"ipr"`
	EthicalApproval bool      `gorm:"not null" json:"ethicalApproval"`
	Appendix        string    `gorm:"not null" json:"appendix"`
	Status          string    `gorm:"not null;default:pending" json:"status"`
	ReferenceNumber string    `gorm:"index;size:32" json:"referenceNumber"`
	CreatedAt       time.Time `json:"createdAt"`

	ProjectCoordinator datatypes.JSONType[ProjectCoordinator] `gorm:"type:json" json:"projectCoordinator"`
	ResearchTeam       datatypes.JSONType[ResearchTeam]       `gorm:"type:json" json:"researchTeam"`
	Budget             datatypes.JSONType[Budget]             `gorm:"type:json" json:"budget"`
	Signatures         datatypes.JSONType[Signature]          `gorm:"type:json" json:"signatures"`
}

// TableName overrides the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// BudgetItem is one budget line persisted as a sub-resource of a proposal.
// During composition the same data travels inline as a BudgetLine.
type BudgetItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProposalID  uint    `gorm:"not null;index" json:"proposalId" validate:"required"`
	Type        string  `gorm:"not null" json:"type" validate:"required,oneof=consumable service equipment travel other"`
	Description string  `gorm:"not null" json:"description" validate:"required"`
	Group       string  `gorm:"not null" json:"group" validate:"required"`
	Year1Amount float64 `gorm:"not null" json:"year1Amount" validate:"gte=0"`
	Year2Amount float64 `gorm:"not null" json:"year2Amount" validate:"gte=0"`
}

// TableName overrides the table name for BudgetItem
func (BudgetItem) TableName() string {
	return "budget_items"
}

// File is an uploaded attachment persisted as a sub-resource of a proposal.
// Content carries the file bytes base64-encoded.
type File struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProposalID uint   `gorm:"not null;index" json:"proposalId" validate:"required"`
	Type       string `gorm:"not null" json:"type" validate:"required,oneof=annexDocumentation workplanGantt"`
	Filename   string `gorm:"not null" json:"filename" validate:"required"`
	Mimetype   string `gorm:"not null" json:"mimetype" validate:"required"`
	Size       int    `gorm:"not null" json:"size" validate:"gte=1"`
	Content    string `gorm:"type:text;not null" json:"content" validate:"required"`
}

// TableName overrides the table name for File
func (File) TableName() string {
	return "files"
}
