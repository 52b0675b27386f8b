package domain

import "errors"

var (
	// ErrDatasetUnavailable marks a missing or unreadable dataset file, or a
	// file that violates the header contract. Fatal at startup.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrNoRows marks a panel statistic that is undefined on an empty
	// filtered view (rates, shares, distributions).
	ErrNoRows = errors.New("no rows in filtered view")
)
