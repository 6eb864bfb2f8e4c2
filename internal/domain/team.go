package domain

// TeamType distinguishes externally managed pods from user-created teams.
type TeamType string

const (
	TeamTypePod     TeamType = "POD"
	TeamTypeVirtual TeamType = "VIRTUAL"
)

// Team groups users either as an organizational pod or an ad hoc virtual
// team. Virtual teams are owned by their creator and fully managed through
// the DAL; pods are read-only.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      TeamType `json:"type"`
	MemberIDs []string `json:"memberIds"`
	CreatedBy string   `json:"createdBy,omitempty"`
}

// Pod is a fixed organizational team sourced from the org chart.
type Pod struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}
