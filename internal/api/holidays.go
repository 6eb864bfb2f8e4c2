package api

import (
	"context"
	"strconv"

	"timeoff/internal/domain"
)

// Holidays returns the configured public holidays for a calendar year.
func (c *Client) Holidays(ctx context.Context, year int) ([]domain.PublicHoliday, error) {
	holidays, _, err := getJSON(ctx, c, "/holidays?year="+strconv.Itoa(year),
		func(s *mockStore) ([]domain.PublicHoliday, error) { return s.Holidays(year) })
	if err != nil {
		return []domain.PublicHoliday{}, err
	}
	return holidays, nil
}
