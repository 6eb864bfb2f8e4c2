package api

import "timeoff/internal/domain"

// Seed dataset mirroring the remote schema. Fresh slices on every call so a
// reset never aliases previously handed-out data.

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "u1", EmployeeID: "E001", Name: "Alice Chen", Email: "alice@company.com", Country: "CN", Avatar: "https://picsum.photos/seed/u1/200", TeamID: "pod1"},
		{ID: "u2", EmployeeID: "E002", Name: "Bob Smith", Email: "bob@company.com", Country: "US", Avatar: "https://picsum.photos/seed/u2/200", TeamID: "pod1"},
		{ID: "u3", EmployeeID: "E003", Name: "Charlie Kim", Email: "charlie@company.com", Country: "CN", Avatar: "https://picsum.photos/seed/u3/200", TeamID: "pod1"},
		{ID: "u4", EmployeeID: "E004", Name: "Diana Prince", Email: "diana@company.com", Country: "US", Avatar: "https://picsum.photos/seed/u4/200", TeamID: "pod2"},
		{ID: "u5", EmployeeID: "E005", Name: "Evan Wright", Email: "evan@company.com", Country: "CN", Avatar: "https://picsum.photos/seed/u5/200", TeamID: "pod2"},
	}
}

func seedTeams() []domain.Team {
	return []domain.Team{
		{ID: "vt1", Name: "Backend Guild", Type: domain.TeamTypeVirtual, MemberIDs: []string{"u2", "u5"}, CreatedBy: "u1"},
	}
}

func seedPods() []domain.Pod {
	return []domain.Pod{
		{ID: "pod1", Name: "Checkout Pod", MemberIDs: []string{"u1", "u2", "u3"}},
		{ID: "pod2", Name: "Inventory Pod", MemberIDs: []string{"u4", "u5"}},
	}
}

func seedLeaves() []domain.LeaveRecord {
	return []domain.LeaveRecord{
		{ID: "l1", UserID: "u1", StartDate: "2026-02-10", EndDate: "2026-02-12", Source: domain.LeaveSourceManual, Status: domain.LeaveStatusApproved, Note: "Ski trip"},
		{ID: "l2", UserID: "u2", StartDate: "2026-02-15", EndDate: "2026-02-20", Source: domain.LeaveSourceOutlook, Status: domain.LeaveStatusApproved, Note: "OOO: Conference"},
		{ID: "l3", UserID: "u3", StartDate: "2026-02-01", EndDate: "2026-02-28", Source: domain.LeaveSourceHR, Status: domain.LeaveStatusApproved, Note: "Sabbatical"},
	}
}

func seedHolidays() []domain.PublicHoliday {
	return []domain.PublicHoliday{
		{Date: "2026-01-01", Name: "New Year's Day", Country: domain.CountryAll},
		{Date: "2026-02-17", Name: "Chinese New Year", Country: "CN"},
		{Date: "2026-02-18", Name: "Chinese New Year", Country: "CN"},
		{Date: "2026-02-19", Name: "Chinese New Year", Country: "CN"},
		{Date: "2026-05-01", Name: "Labor Day", Country: "CN"},
		{Date: "2026-07-04", Name: "Independence Day", Country: "US"},
		{Date: "2026-10-01", Name: "National Day", Country: "CN"},
		{Date: "2026-12-25", Name: "Christmas Day", Country: domain.CountryAll},
	}
}
