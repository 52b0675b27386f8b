package csvfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hotel_dashboard/internal/domain"
	"hotel_dashboard/internal/storage/csvfile"
)

const header = "hotel,is_canceled,lead_time,arrival_date_year,arrival_date_month,arrival_date_day_of_month,stays_in_weekend_nights,stays_in_week_nights,adults,children,babies,country,market_segment,distribution_channel,adr"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.csv")
	data := ""
	for _, l := range lines {
		data += l + "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoad_MapsRows(t *testing.T) {
	path := writeCSV(t, header,
		"Resort Hotel,0,342,2015,July,1,0,0,2,0.0,0,PRT,Direct,Direct,75.5",
		"City Hotel,1,7,2015,February,30,1,2,2,,1,GBR,Online TA,TA/TO,98.0",
	)
	rows, err := csvfile.New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	r0 := rows[0]
	if r0.Hotel != "Resort Hotel" || r0.IsCanceled || r0.LeadTime != 342 || r0.ADR != 75.5 {
		t.Fatalf("unexpected first row: %+v", r0)
	}
	if r0.ArrivalDate == nil {
		t.Fatal("valid date row must carry a derived arrival date")
	}
	if y, m, d := r0.ArrivalDate.Date(); y != 2015 || m.String() != "July" || d != 1 {
		t.Fatalf("derived date = %v", r0.ArrivalDate)
	}

	r1 := rows[1]
	if !r1.IsCanceled || r1.Children != 0 || r1.Babies != 1 {
		t.Fatalf("unexpected second row: %+v", r1)
	}
	if r1.ArrivalDate != nil {
		t.Fatalf("February 30 must derive nil, got %v", r1.ArrivalDate)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := csvfile.New(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	if !errors.Is(err, domain.ErrDatasetUnavailable) {
		t.Fatalf("err = %v, want ErrDatasetUnavailable", err)
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeCSV(t, "hotel,is_canceled", "Resort Hotel,0")
	_, err := csvfile.New(path).Load(context.Background())
	if !errors.Is(err, domain.ErrDatasetUnavailable) {
		t.Fatalf("err = %v, want ErrDatasetUnavailable", err)
	}
}

func TestLoad_ExtraColumnsIgnoredShortRowsSkipped(t *testing.T) {
	path := writeCSV(t, header+",reservation_status",
		"Resort Hotel,0,10,2016,May,5,1,3,2,1,0,ESP,Direct,Direct,120.0,Check-Out",
		"City Hotel,1", // ragged; skipped
	)
	rows, err := csvfile.New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Children != 1 || rows[0].TotalNights() != 4 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}
