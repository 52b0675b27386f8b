package domain

import "time"

// Booking is one row of the dataset: a single hotel reservation.
type Booking struct {
	Hotel               string
	IsCanceled          bool
	ArrivalYear         int
	ArrivalMonth        string // month name, e.g. "July"
	ArrivalDay          int
	ArrivalDate         *time.Time // derived; nil when year/month/day is not a valid date
	Country             string
	MarketSegment       string
	DistributionChannel string
	LeadTime            int
	ADR                 float64
	WeekNights          int
	WeekendNights       int
	Adults              int
	Children            int
	Babies              int
}

// TotalNights is the derived stay length used by the stay-duration histogram.
func (b Booking) TotalNights() int { return b.WeekNights + b.WeekendNights }

// MonthOrder is the canonical January→December ordering used to reindex
// monthly aggregates regardless of selection order.
var MonthOrder = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex maps a month name to its 1-based calendar index.
func MonthIndex(name string) (int, bool) {
	for i, m := range MonthOrder {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// DeriveArrivalDate composes year/month/day into a calendar date.
// Invalid combinations (unknown month name, day out of range for that
// month/year, non-positive fields) yield nil rather than an error.
func DeriveArrivalDate(year int, month string, day int) *time.Time {
	m, ok := MonthIndex(month)
	if !ok || year <= 0 || day <= 0 || day > 31 {
		return nil
	}
	t := time.Date(year, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject those rows.
	if t.Year() != year || int(t.Month()) != m || t.Day() != day {
		return nil
	}
	return &t
}
