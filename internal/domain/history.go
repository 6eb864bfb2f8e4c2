package domain

// ViewType is the kind of entity a history entry points at.
type ViewType string

const (
	ViewTypeUser ViewType = "USER"
	ViewTypeTeam ViewType = "TEAM"
	ViewTypePod  ViewType = "POD"
)

// HistoryLimit caps the per-user view history at the most recent distinct
// entries.
const HistoryLimit = 10

// ViewHistoryItem records that a user opened an entity's page. The per-user
// log is most-recent-first, deduplicated on (ID, Type), and capped at
// HistoryLimit entries.
type ViewHistoryItem struct {
	ID        string   `json:"id"`
	Type      ViewType `json:"type"`
	Name      string   `json:"name"`
	Timestamp int64    `json:"timestamp"`
}
