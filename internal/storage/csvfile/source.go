package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/domain"
)

// Source reads booking records from a CSV file with the fixed header
// contract in columns.go. It holds no state between loads.
type Source struct{ path string }

func New(path string) *Source { return &Source{path: path} }

func (s *Source) Load(ctx context.Context) ([]domain.Booking, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrDatasetUnavailable, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; they are skipped below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", domain.ErrDatasetUnavailable, s.path, err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var (
		out     []domain.Booking
		skipped int
		line    = 1
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s line %d: %v", domain.ErrDatasetUnavailable, s.path, line+1, err)
		}
		line++
		b, ok := mapRecord(idx, rec)
		if !ok {
			skipped++
			continue
		}
		out = append(out, b)
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Str("path", s.path).Msg("short rows skipped during load")
	}
	return out, nil
}

// headerIndex maps required column names to their positions, failing on the
// first missing name so the caller sees the full contract violation.
func headerIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	idx := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, c := range requiredColumns {
		p, ok := pos[c]
		if !ok {
			missing = append(missing, c)
			continue
		}
		idx[c] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns: %s", domain.ErrDatasetUnavailable, strings.Join(missing, ", "))
	}
	return idx, nil
}

// mapRecord turns one CSV row into a Booking. Rows too short for the required
// columns are rejected; malformed numerics degrade to zero values and an
// invalid year/month/day combination degrades to a nil ArrivalDate, matching
// the lenient semantics of the dataset (blank children counts and so on).
func mapRecord(idx map[string]int, rec []string) (domain.Booking, bool) {
	for _, p := range idx {
		if p >= len(rec) {
			return domain.Booking{}, false
		}
	}
	get := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }

	b := domain.Booking{
		Hotel:               get(colHotel),
		IsCanceled:          get(colIsCanceled) == "1",
		ArrivalYear:         atoi(get(colArrivalYear)),
		ArrivalMonth:        get(colArrivalMonth),
		ArrivalDay:          atoi(get(colArrivalDay)),
		Country:             get(colCountry),
		MarketSegment:       get(colMarketSegment),
		DistributionChannel: get(colDistChannel),
		LeadTime:            atoi(get(colLeadTime)),
		ADR:                 atof(get(colADR)),
		WeekNights:          atoi(get(colWeekNights)),
		WeekendNights:       atoi(get(colWeekendNights)),
		Adults:              atoi(get(colAdults)),
		Children:            atoi(get(colChildren)),
		Babies:              atoi(get(colBabies)),
	}
	b.ArrivalDate = domain.DeriveArrivalDate(b.ArrivalYear, b.ArrivalMonth, b.ArrivalDay)
	return b, true
}

// atoi parses a count-like field; the dataset writes some of them as floats
// ("1.0") and leaves others blank.
func atoi(s string) int {
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func atof(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0
}
