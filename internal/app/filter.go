package app

import "hotel_dashboard/internal/domain"

// FilterBookings returns the rows whose hotel category AND arrival month are
// both members of the selection. Pure and idempotent; the result is always a
// subset of rows and rows is never mutated. An empty set for either dimension
// matches nothing — expanding nil selections to "all values" is the service's
// job, not this function's.
func FilterBookings(rows []domain.Booking, sel domain.Selection) []domain.Booking {
	hotels := toSet(sel.Hotels)
	months := toSet(sel.Months)
	out := make([]domain.Booking, 0, len(rows))
	for _, b := range rows {
		if hotels[b.Hotel] && months[b.ArrivalMonth] {
			out = append(out, b)
		}
	}
	return out
}

// DistinctHotels lists the hotel categories present, in first-encountered
// order, for the sidebar control and for default selections.
func DistinctHotels(rows []domain.Booking) []string {
	seen := make(map[string]bool, 4)
	var out []string
	for _, b := range rows {
		if !seen[b.Hotel] {
			seen[b.Hotel] = true
			out = append(out, b.Hotel)
		}
	}
	return out
}

func toSet(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}
