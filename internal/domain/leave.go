package domain

// LeaveSource identifies which system a leave record originated from.
type LeaveSource string

const (
	LeaveSourceHR      LeaveSource = "HR"
	LeaveSourceOutlook LeaveSource = "OUTLOOK"
	LeaveSourceManual  LeaveSource = "MANUAL"
)

// LeaveStatus is the approval state of a leave record.
type LeaveStatus string

const (
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// LeaveRecord is a single absence. StartDate and EndDate are inclusive ISO
// calendar dates (YYYY-MM-DD); callers guarantee StartDate <= EndDate. Only
// MANUAL records belonging to their owner are mutable.
type LeaveRecord struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Source    LeaveSource `json:"source"`
	Status    LeaveStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
}

// UserLeaves is one row of a team or pod calendar: a member joined with
// their leave records.
type UserLeaves struct {
	User   User          `json:"user"`
	Leaves []LeaveRecord `json:"leaves"`
}

// DateRange bounds a calendar query. Empty From or To means unbounded on
// that side. Dates are ISO YYYY-MM-DD, so lexicographic comparison matches
// chronological order.
type DateRange struct {
	From string
	To   string
}

// Overlaps reports whether the inclusive [start, end] span intersects the
// range. Boundary touches count as overlap.
func (r DateRange) Overlaps(start, end string) bool {
	if r.From != "" && end < r.From {
		return false
	}
	if r.To != "" && start > r.To {
		return false
	}
	return true
}

// IsZero reports whether the range has no bounds at all.
func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}
