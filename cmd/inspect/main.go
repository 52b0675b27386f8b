// Command inspect loads the dataset once and reports its shape: row count,
// hotel categories, month coverage, and how many rows fail calendar
// validation. Useful before pointing the dashboard at a new file.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/domain"
	"hotel_dashboard/internal/shared"
	"hotel_dashboard/internal/storage/csvfile"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	rows, err := csvfile.New(cfg.DatasetPath).Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("dataset load failed")
	}

	months := map[string]int{}
	var invalidDates, canceled int
	for _, b := range rows {
		months[b.ArrivalMonth]++
		if b.ArrivalDate == nil {
			invalidDates++
		}
		if b.IsCanceled {
			canceled++
		}
	}
	var missingMonths []string
	for _, m := range domain.MonthOrder {
		if months[m] == 0 {
			missingMonths = append(missingMonths, m)
		}
	}

	log.Info().
		Str("path", cfg.DatasetPath).
		Int("rows", len(rows)).
		Int("canceled", canceled).
		Int("invalid_dates", invalidDates).
		Strs("hotels", app.DistinctHotels(rows)).
		Strs("missing_months", missingMonths).
		Msg("dataset summary")
}
