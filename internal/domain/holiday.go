package domain

// CountryAll marks a holiday observed in every office location.
const CountryAll = "ALL"

// PublicHoliday is a configured calendar holiday. Country is either
// CountryAll or an ISO country code. IsWorkday marks make-up workdays
// (e.g. Chinese holiday adjustment weekends).
type PublicHoliday struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	IsWorkday bool   `json:"isWorkday,omitempty"`
}
