package models

// Collaborator is one entry in a coordinator's or group's collaborator list.
type Collaborator struct {
	Name      string `json:"name" validate:"required"`
	GroupCode string `json:"groupCode" validate:"required"`
}

// ProjectCoordinator describes the principal investigator leading the
// proposal. CiberehdGroup entries in the research team carry the same shape.
type ProjectCoordinator struct {
	Name            string         `json:"name" validate:"required"`
	HiredByCiberehd *bool          `json:"hiredByCiberehd"`
	ThesisYear      *int           `json:"thesisYear" validate:"omitempty,yearrange"`
	BirthYear       *int           `json:"birthYear" validate:"omitempty,yearrange"`
	AnnexExtension  *bool          `json:"annexExtension"`
	Email           string         `json:"email" validate:"required,email"`
	Phone           string         `json:"phone"`
	Institution     string         `json:"institution"`
	Collaborators   []Collaborator `json:"collaborators" validate:"dive"`
}

// CiberehdGroup is a participating CIBEREHD research group.
type CiberehdGroup = ProjectCoordinator

// CiberGroup is a participating group from another CIBER thematic area.
type CiberGroup struct {
	ResearcherName string `json:"researcherName" validate:"required"`
	GroupCode      string `json:"groupCode" validate:"required"`
	ThematicArea   string `json:"thematicArea" validate:"required"`
}

// ExternalGroup is a participating group outside the CIBER consortium.
type ExternalGroup struct {
	ResearcherName string `json:"researcherName" validate:"required"`
	ResearchGroup  string `json:"researchGroup" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
}

// ResearchTeam groups the participating research groups. Each list is
// independently optional and defaults to empty.
type ResearchTeam struct {
	CiberehdGroups []CiberehdGroup `json:"ciberehdGroups" validate:"dive"`
	CiberGroups    []CiberGroup    `json:"ciberGroups" validate:"dive"`
	ExternalGroups []ExternalGroup `json:"externalGroups" validate:"dive"`
}

// BudgetLine is one budget entry held inline within a draft before
// submission. Persisted sub-resource lines use BudgetItem instead.
type BudgetLine struct {
	Type        string  `json:"type" validate:"required,oneof=consumable service equipment travel other"`
	Description string  `json:"description" validate:"required"`
	Group       string  `json:"group" validate:"required"`
	Year1Amount float64 `json:"year1Amount" validate:"gte=0"`
	Year2Amount float64 `json:"year2Amount" validate:"gte=0"`
}

// Budget holds the item list and its derived totals. The totals are never set
// independently; Recompute derives them from the full item list.
type Budget struct {
	Items      []BudgetLine `json:"items" validate:"dive"`
	TotalYear1 float64      `json:"totalYear1" validate:"gte=0"`
	TotalYear2 float64      `json:"totalYear2" validate:"gte=0"`
	GrandTotal float64      `json:"grandTotal" validate:"gte=0,lte=50000"`
}

// Recompute rederives all three totals from the current item list. It is
// idempotent and always works from the full list, never incrementally.
func (b *Budget) Recompute() {
	var year1, year2 float64
	for _, item := range b.Items {
		year1 += item.Year1Amount
		year2 += item.Year2Amount
	}
	b.TotalYear1 = year1
	b.TotalYear2 = year2
	b.GrandTotal = year1 + year2
}

// Signature holds the signature block. PiCoordinator and PiCiber are
// required, the co-PI fields are optional.
type Signature struct {
	PiCoordinator string `json:"piCoordinator" validate:"required"`
	PiCiber       string `json:"piCiber" validate:"required"`
	CoPi          string `json:"coPi"`
	PiCiber2      string `json:"piCiber2"`
}

// FileAttachment is a file held inline within a draft, with its bytes
// base64-encoded into Content.
type FileAttachment struct {
	Type     string `json:"type" validate:"required,oneof=annexDocumentation workplanGantt"`
	Filename string `json:"filename" validate:"required"`
	Mimetype string `json:"mimetype" validate:"required"`
	Size     int    `json:"size" validate:"gte=1"`
	Content  string `json:"content" validate:"required"`
}

// ProposalDraft is the in-progress proposal accumulated by the form wizard
// and the payload accepted by the create-proposal endpoint. The validate tags
// carry the submission gate; the full form-level rule set (required narrative
// sections, word targets) lives in the validation package.
type ProposalDraft struct {
	Title           string `json:"title" validate:"required"`
	Acronym         string `json:"acronym" validate:"required"`
	Summary         string `json:"summary" validate:"max=1800"`
	Objectives      string `json:"objectives" validate:"max=3000"`
	StateOfArt      string `json:"stateOfArt"`
	Workplan        string `json:"workplan"`
	Innovation      string `json:"innovation"`
	Coordination    string `json:"coordination"`
	FuturePlan      string `json:"futurePlan"`
	IPR             string `json:"ipr"`
	EthicalApproval bool   `json:"ethicalApproval"`
	Appendix        string `json:"appendix"`

	ProjectCoordinator ProjectCoordinator `json:"projectCoordinator"`
	ResearchTeam       ResearchTeam       `json:"researchTeam"`
	Budget             Budget             `json:"budget"`
	Signatures         Signature          `json:"signatures"`
	Files              []FileAttachment   `json:"files" validate:"dive"`
}

// NewDraft returns an empty draft with all lists initialized, matching the
// initial state the form wizard presents.
func NewDraft() ProposalDraft {
	return ProposalDraft{
		ProjectCoordinator: ProjectCoordinator{Collaborators: []Collaborator{}},
		ResearchTeam: ResearchTeam{
			CiberehdGroups: []CiberehdGroup{},
			CiberGroups:    []CiberGroup{},
			ExternalGroups: []ExternalGroup{},
		},
		Budget: Budget{Items: []BudgetLine{}},
		Files:  []FileAttachment{},
	}
}
