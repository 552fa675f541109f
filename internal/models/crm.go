package models

// DealStage is the pipeline stage of a deal.
type DealStage string

const (
	StageLead      DealStage = "lead"
	StageQualified DealStage = "qualified"
	StageProposal  DealStage = "proposal"
	StageWon       DealStage = "won"
	StageLost      DealStage = "lost"
)

// ValidDealStages is the set of all valid deal stages.
var ValidDealStages = []DealStage{
	StageLead,
	StageQualified,
	StageProposal,
	StageWon,
	StageLost,
}

// IsValid returns true if the deal stage is recognized.
func (s DealStage) IsValid() bool {
	for _, v := range ValidDealStages {
		if s == v {
			return true
		}
	}
	return false
}

// PipelineStages are the stages shown as board columns, in display order.
// Lost deals are kept in the collection but have no column.
var PipelineStages = []DealStage{
	StageLead,
	StageQualified,
	StageProposal,
	StageWon,
}

// Deal is a sales pipeline entry.
type Deal struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
	Amount  float64   `json:"amount"`
	Stage   DealStage `json:"stage"`
	Contact string    `json:"contact"`
}

// ContactStatus classifies a CRM contact.
type ContactStatus string

const (
	ContactStatusLead    ContactStatus = "lead"
	ContactStatusDeal    ContactStatus = "deal"
	ContactStatusContact ContactStatus = "contact"
)

// ValidContactStatuses is the set of all valid contact statuses.
var ValidContactStatuses = []ContactStatus{
	ContactStatusLead,
	ContactStatusDeal,
	ContactStatusContact,
}

// IsValid returns true if the contact status is recognized.
func (s ContactStatus) IsValid() bool {
	for _, v := range ValidContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Contact is a CRM relationship record.
type Contact struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Company string        `json:"company"`
	Status  ContactStatus `json:"status"`
	Value   float64       `json:"value"`
}
