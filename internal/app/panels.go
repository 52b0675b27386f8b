package app

import (
	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/domain"
)

const (
	topN          = 10
	histogramBins = 20

	labelNotCanceled = "Not Canceled"
	labelCanceled    = "Canceled"
)

type panelSpec struct {
	title   string
	kind    domain.ChartKind
	compute func(rows []domain.Booking) (*domain.ChartData, error)
}

var panelSpecs = map[domain.PanelID]panelSpec{
	domain.PanelCancellationRate: {"Booking Cancellation Rate", domain.ChartPie, cancellationRate},
	domain.PanelBookingsByHotel:  {"Bookings by Hotel Type", domain.ChartBar, bookingsByHotel},
	domain.PanelMonthlyTrend:     {"Monthly Booking Trends", domain.ChartLine, monthlyTrend},
	domain.PanelTopCountries:     {"Top 10 Countries by Bookings", domain.ChartBar, topCountries},
	domain.PanelLeadTimeByStatus: {"Lead Time vs Cancellation", domain.ChartBox, leadTimeByStatus},
	domain.PanelADRByHotel:       {"ADR by Hotel Type", domain.ChartBox, adrByHotel},
	domain.PanelMarketSegment:    {"Market Segment Share (%)", domain.ChartBar, marketSegmentShare},
	domain.PanelChannelShare:     {"Distribution Channel Share (%)", domain.ChartBar, channelShare},
	domain.PanelStayDuration:     {"Stay Duration (Weekday + Weekend)", domain.ChartHistogram, stayDuration},
	domain.PanelADRByCountry:     {"Top 10 Countries by ADR", domain.ChartBar, adrByCountry},
	domain.PanelGuestComposition: {"Guest Composition", domain.ChartBar, guestComposition},
}

// BuildPanels computes the eleven panels over the filtered view, in fixed
// order. A failing panel is reported in place (Err set, no Data), logged, and
// counted; it never affects its neighbors.
func BuildPanels(rows []domain.Booking) []domain.Panel {
	out := make([]domain.Panel, 0, len(domain.PanelOrder))
	for _, id := range domain.PanelOrder {
		spec := panelSpecs[id]
		p := domain.Panel{ID: id, Title: spec.title, Kind: spec.kind}
		data, err := spec.compute(rows)
		if err != nil {
			log.Error().Str("panel", string(id)).Err(err).Msg("panel computation failed")
			observability.ObservePanelFailure(string(id))
			p.Err = err.Error()
		} else {
			p.Data = data
		}
		out = append(out, p)
	}
	return out
}

// groupCount counts rows per key in first-encountered order. Rows with an
// empty key are treated as missing and dropped.
func groupCount(rows []domain.Booking, key func(domain.Booking) string) []domain.SeriesPoint {
	idx := map[string]int{}
	points := []domain.SeriesPoint{}
	for _, b := range rows {
		k := key(b)
		if k == "" {
			continue
		}
		i, ok := idx[k]
		if !ok {
			i = len(points)
			idx[k] = i
			points = append(points, domain.SeriesPoint{Label: k})
		}
		points[i].Value++
	}
	return points
}

func cancellationRate(rows []domain.Booking) (*domain.ChartData, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoRows
	}
	var canceled int
	for _, b := range rows {
		if b.IsCanceled {
			canceled++
		}
	}
	total := float64(len(rows))
	return &domain.ChartData{Points: []domain.SeriesPoint{
		{Label: labelNotCanceled, Value: round1(float64(len(rows)-canceled) / total * 100)},
		{Label: labelCanceled, Value: round1(float64(canceled) / total * 100)},
	}}, nil
}

func bookingsByHotel(rows []domain.Booking) (*domain.ChartData, error) {
	return &domain.ChartData{Points: groupCount(rows, func(b domain.Booking) string { return b.Hotel })}, nil
}

// monthlyTrend reindexes the per-month counts to the canonical January→
// December order; months absent from the view show as zero.
func monthlyTrend(rows []domain.Booking) (*domain.ChartData, error) {
	counts := map[string]float64{}
	for _, b := range rows {
		counts[b.ArrivalMonth]++
	}
	points := make([]domain.SeriesPoint, 0, len(domain.MonthOrder))
	for _, m := range domain.MonthOrder {
		points = append(points, domain.SeriesPoint{Label: m, Value: counts[m]})
	}
	return &domain.ChartData{Points: points}, nil
}

func topCountries(rows []domain.Booking) (*domain.ChartData, error) {
	points := groupCount(rows, func(b domain.Booking) string { return b.Country })
	sortDescStable(points)
	if len(points) > topN {
		points = points[:topN]
	}
	return &domain.ChartData{Points: points}, nil
}

func leadTimeByStatus(rows []domain.Booking) (*domain.ChartData, error) {
	var kept, dropped []float64
	for _, b := range rows {
		if b.IsCanceled {
			dropped = append(dropped, float64(b.LeadTime))
		} else {
			kept = append(kept, float64(b.LeadTime))
		}
	}
	var boxes []domain.BoxSummary
	if len(kept) > 0 {
		boxes = append(boxes, boxSummary(labelNotCanceled, kept))
	}
	if len(dropped) > 0 {
		boxes = append(boxes, boxSummary(labelCanceled, dropped))
	}
	if len(boxes) == 0 {
		return nil, domain.ErrNoRows
	}
	return &domain.ChartData{Boxes: boxes}, nil
}

func adrByHotel(rows []domain.Booking) (*domain.ChartData, error) {
	byHotel := map[string][]float64{}
	for _, h := range DistinctHotels(rows) {
		byHotel[h] = nil
	}
	for _, b := range rows {
		byHotel[b.Hotel] = append(byHotel[b.Hotel], b.ADR)
	}
	var boxes []domain.BoxSummary
	for _, h := range DistinctHotels(rows) {
		if vals := byHotel[h]; len(vals) > 0 {
			boxes = append(boxes, boxSummary(h, vals))
		}
	}
	if len(boxes) == 0 {
		return nil, domain.ErrNoRows
	}
	return &domain.ChartData{Boxes: boxes}, nil
}

// shareOf turns per-category counts into percentages of the non-missing
// total, ordered by share descending. The percentages sum to 100 up to the
// one-decimal rounding.
func shareOf(rows []domain.Booking, key func(domain.Booking) string) (*domain.ChartData, error) {
	points := groupCount(rows, key)
	var total float64
	for _, p := range points {
		total += p.Value
	}
	if total == 0 {
		return nil, domain.ErrNoRows
	}
	for i := range points {
		points[i].Value = round1(points[i].Value / total * 100)
	}
	sortDescStable(points)
	return &domain.ChartData{Points: points}, nil
}

func marketSegmentShare(rows []domain.Booking) (*domain.ChartData, error) {
	return shareOf(rows, func(b domain.Booking) string { return b.MarketSegment })
}

func channelShare(rows []domain.Booking) (*domain.ChartData, error) {
	return shareOf(rows, func(b domain.Booking) string { return b.DistributionChannel })
}

func stayDuration(rows []domain.Booking) (*domain.ChartData, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoRows
	}
	values := make([]float64, 0, len(rows))
	for _, b := range rows {
		values = append(values, float64(b.TotalNights()))
	}
	return &domain.ChartData{Bins: histogram(values, histogramBins)}, nil
}

func adrByCountry(rows []domain.Booking) (*domain.ChartData, error) {
	type acc struct {
		sum float64
		n   int
	}
	idx := map[string]int{}
	var order []string
	accs := []acc{}
	for _, b := range rows {
		if b.Country == "" {
			continue
		}
		i, ok := idx[b.Country]
		if !ok {
			i = len(accs)
			idx[b.Country] = i
			order = append(order, b.Country)
			accs = append(accs, acc{})
		}
		accs[i].sum += b.ADR
		accs[i].n++
	}
	points := make([]domain.SeriesPoint, 0, len(order))
	for i, c := range order {
		points = append(points, domain.SeriesPoint{Label: c, Value: accs[i].sum / float64(accs[i].n)})
	}
	sortDescStable(points)
	if len(points) > topN {
		points = points[:topN]
	}
	return &domain.ChartData{Points: points}, nil
}

func guestComposition(rows []domain.Booking) (*domain.ChartData, error) {
	var adults, children, babies float64
	for _, b := range rows {
		adults += float64(b.Adults)
		children += float64(b.Children)
		babies += float64(b.Babies)
	}
	return &domain.ChartData{Points: []domain.SeriesPoint{
		{Label: "Adults", Value: adults},
		{Label: "Children", Value: children},
		{Label: "Babies", Value: babies},
	}}, nil
}
