package domain

// User is a directory entry owned by the external HR system. Read-only from
// the DAL's point of view.
type User struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeID"`
	Name       string `json:"displayName"`
	Email      string `json:"email"`
	Country    string `json:"country"`
	Avatar     string `json:"avatar"`
	TeamID     string `json:"teamId"`
}
