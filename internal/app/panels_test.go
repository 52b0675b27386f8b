package app_test

import (
	"math"
	"testing"

	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/domain"
)

func panelByID(t *testing.T, panels []domain.Panel, id domain.PanelID) domain.Panel {
	t.Helper()
	for _, p := range panels {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("panel %s not found", id)
	return domain.Panel{}
}

func TestBuildPanels_FixedOrderAndCount(t *testing.T) {
	panels := app.BuildPanels(sampleRows())
	if len(panels) != 11 {
		t.Fatalf("panels = %d, want 11", len(panels))
	}
	for i, p := range panels {
		if p.ID != domain.PanelOrder[i] {
			t.Fatalf("panel %d = %s, want %s", i, p.ID, domain.PanelOrder[i])
		}
	}
}

// The worked two-row example: one kept Resort booking and one canceled City
// booking, both in July, with the default all-values selection.
func TestBuildPanels_TwoRowExample(t *testing.T) {
	rows := []domain.Booking{
		{Hotel: "Resort", IsCanceled: false, ArrivalMonth: "July"},
		{Hotel: "City", IsCanceled: true, ArrivalMonth: "July"},
	}
	panels := app.BuildPanels(app.FilterBookings(rows, domain.Selection{
		Hotels: app.DistinctHotels(rows),
		Months: domain.MonthOrder[:],
	}))

	rate := panelByID(t, panels, domain.PanelCancellationRate)
	if rate.Err != "" || len(rate.Data.Points) != 2 {
		t.Fatalf("cancellation panel: %+v", rate)
	}
	if rate.Data.Points[0].Label != "Not Canceled" || rate.Data.Points[0].Value != 50 ||
		rate.Data.Points[1].Label != "Canceled" || rate.Data.Points[1].Value != 50 {
		t.Fatalf("cancellation points: %+v", rate.Data.Points)
	}

	byHotel := panelByID(t, panels, domain.PanelBookingsByHotel)
	if len(byHotel.Data.Points) != 2 {
		t.Fatalf("hotel counts: %+v", byHotel.Data)
	}
	for _, p := range byHotel.Data.Points {
		if p.Value != 1 {
			t.Fatalf("hotel %s count = %v, want 1", p.Label, p.Value)
		}
	}
}

func TestCancellationRate_SumsTo100(t *testing.T) {
	rows := []domain.Booking{
		{IsCanceled: true}, {IsCanceled: false}, {IsCanceled: false},
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelCancellationRate)
	sum := p.Data.Points[0].Value + p.Data.Points[1].Value
	if math.Abs(sum-100) > 0.1 {
		t.Fatalf("percentages sum to %v", sum)
	}
}

func TestMonthlyTrend_CanonicalReindex(t *testing.T) {
	rows := []domain.Booking{
		{ArrivalMonth: "July"}, {ArrivalMonth: "July"}, {ArrivalMonth: "May"},
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelMonthlyTrend)
	if len(p.Data.Points) != 12 {
		t.Fatalf("trend points = %d, want 12", len(p.Data.Points))
	}
	for i, pt := range p.Data.Points {
		if pt.Label != domain.MonthOrder[i] {
			t.Fatalf("point %d label %s, want %s", i, pt.Label, domain.MonthOrder[i])
		}
		want := 0.0
		switch pt.Label {
		case "May":
			want = 1
		case "July":
			want = 2
		}
		if pt.Value != want {
			t.Fatalf("%s = %v, want %v", pt.Label, pt.Value, want)
		}
	}
}

func TestTopCountries_OrderTiesAndLimit(t *testing.T) {
	var rows []domain.Booking
	add := func(c string, n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, domain.Booking{Country: c})
		}
	}
	add("PRT", 3)
	add("GBR", 2)
	add("ESP", 2) // tied with GBR; GBR seen first
	add("FRA", 1)
	p := panelByID(t, app.BuildPanels(rows), domain.PanelTopCountries)
	got := p.Data.Points
	wantOrder := []string{"PRT", "GBR", "ESP", "FRA"}
	for i, w := range wantOrder {
		if got[i].Label != w {
			t.Fatalf("rank %d = %s, want %s (points %+v)", i, got[i].Label, w, got)
		}
	}

	// 12 distinct countries must truncate to 10
	rows = nil
	for _, c := range []string{"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH", "II", "JJ", "KK", "LL"} {
		add(c, 1)
	}
	p = panelByID(t, app.BuildPanels(rows), domain.PanelTopCountries)
	if len(p.Data.Points) != 10 {
		t.Fatalf("top countries = %d entries, want 10", len(p.Data.Points))
	}
}

func TestTopCountries_SkipsMissingCountry(t *testing.T) {
	rows := []domain.Booking{{Country: ""}, {Country: "PRT"}}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelTopCountries)
	if len(p.Data.Points) != 1 || p.Data.Points[0].Label != "PRT" {
		t.Fatalf("points: %+v", p.Data.Points)
	}
}

func TestLeadTimeBoxplot_QuartilesAndOutliers(t *testing.T) {
	rows := []domain.Booking{
		{LeadTime: 1}, {LeadTime: 2}, {LeadTime: 3}, {LeadTime: 4}, {LeadTime: 100},
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelLeadTimeByStatus)
	if len(p.Data.Boxes) != 1 {
		t.Fatalf("boxes: %+v", p.Data.Boxes)
	}
	b := p.Data.Boxes[0]
	if b.Label != "Not Canceled" {
		t.Fatalf("label = %s", b.Label)
	}
	if b.Q1 != 2 || b.Median != 3 || b.Q3 != 4 {
		t.Fatalf("quartiles: %+v", b)
	}
	if b.Min != 1 || b.Max != 4 {
		t.Fatalf("whiskers: %+v", b)
	}
	if len(b.Outliers) != 1 || b.Outliers[0] != 100 {
		t.Fatalf("outliers: %v", b.Outliers)
	}
}

func TestADRByHotel_GroupsInFirstEncounteredOrder(t *testing.T) {
	rows := []domain.Booking{
		{Hotel: "Resort Hotel", ADR: 100},
		{Hotel: "City Hotel", ADR: 80},
		{Hotel: "Resort Hotel", ADR: 120},
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelADRByHotel)
	if len(p.Data.Boxes) != 2 || p.Data.Boxes[0].Label != "Resort Hotel" || p.Data.Boxes[1].Label != "City Hotel" {
		t.Fatalf("boxes: %+v", p.Data.Boxes)
	}
	if p.Data.Boxes[0].Median != 110 {
		t.Fatalf("resort median = %v, want 110", p.Data.Boxes[0].Median)
	}
}

func TestShares_SumTo100AndDescend(t *testing.T) {
	rows := []domain.Booking{
		{MarketSegment: "Online TA", DistributionChannel: "TA/TO"},
		{MarketSegment: "Online TA", DistributionChannel: "TA/TO"},
		{MarketSegment: "Direct", DistributionChannel: "Direct"},
	}
	panels := app.BuildPanels(rows)
	for _, id := range []domain.PanelID{domain.PanelMarketSegment, domain.PanelChannelShare} {
		p := panelByID(t, panels, id)
		var sum float64
		for i, pt := range p.Data.Points {
			sum += pt.Value
			if i > 0 && pt.Value > p.Data.Points[i-1].Value {
				t.Fatalf("%s not descending: %+v", id, p.Data.Points)
			}
		}
		if math.Abs(sum-100) > 0.1 {
			t.Fatalf("%s shares sum to %v", id, sum)
		}
		if p.Data.Points[0].Value != 66.7 || p.Data.Points[1].Value != 33.3 {
			t.Fatalf("%s shares: %+v", id, p.Data.Points)
		}
	}
}

func TestStayDuration_FixedBinCount(t *testing.T) {
	rows := []domain.Booking{
		{WeekNights: 0, WeekendNights: 0},
		{WeekNights: 1, WeekendNights: 0},
		{WeekNights: 1, WeekendNights: 1},
		{WeekNights: 2, WeekendNights: 1},
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelStayDuration)
	if len(p.Data.Bins) != 20 {
		t.Fatalf("bins = %d, want 20", len(p.Data.Bins))
	}
	var total int
	for _, b := range p.Data.Bins {
		total += b.Count
	}
	if total != len(rows) {
		t.Fatalf("binned %d values, want %d", total, len(rows))
	}
	if p.Data.Bins[0].Count != 1 || p.Data.Bins[19].Count != 1 {
		t.Fatalf("edge bins: first=%d last=%d", p.Data.Bins[0].Count, p.Data.Bins[19].Count)
	}
}

func TestADRByCountry_MeanDescendingTop10(t *testing.T) {
	rows := []domain.Booking{
		{Country: "PRT", ADR: 50}, {Country: "PRT", ADR: 150}, // mean 100
		{Country: "GBR", ADR: 120}, // mean 120
		{Country: "ESP", ADR: 100}, // mean 100, tied with PRT; PRT seen first
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelADRByCountry)
	got := p.Data.Points
	if got[0].Label != "GBR" || got[1].Label != "PRT" || got[2].Label != "ESP" {
		t.Fatalf("order: %+v", got)
	}
	if got[1].Value != 100 {
		t.Fatalf("PRT mean = %v, want 100", got[1].Value)
	}
}

func TestGuestComposition_Sums(t *testing.T) {
	rows := []domain.Booking{
		{Adults: 2, Children: 1, Babies: 0},
		{Adults: 1, Children: 0, Babies: 1},
	}
	p := panelByID(t, app.BuildPanels(rows), domain.PanelGuestComposition)
	pts := p.Data.Points
	if pts[0].Value != 3 || pts[1].Value != 1 || pts[2].Value != 1 {
		t.Fatalf("guest sums: %+v", pts)
	}
}

func TestBuildPanels_EmptyView(t *testing.T) {
	panels := app.BuildPanels(nil)
	if len(panels) != 11 {
		t.Fatalf("panels = %d, want 11", len(panels))
	}

	mustFail := map[domain.PanelID]bool{
		domain.PanelCancellationRate: true,
		domain.PanelLeadTimeByStatus: true,
		domain.PanelADRByHotel:       true,
		domain.PanelMarketSegment:    true,
		domain.PanelChannelShare:     true,
		domain.PanelStayDuration:     true,
	}
	for _, p := range panels {
		if mustFail[p.ID] {
			if p.Err == "" || p.Data != nil {
				t.Fatalf("panel %s should fail on empty view: %+v", p.ID, p)
			}
			continue
		}
		if p.Err != "" {
			t.Fatalf("panel %s should survive an empty view: %+v", p.ID, p)
		}
	}

	trend := panelByID(t, panels, domain.PanelMonthlyTrend)
	if len(trend.Data.Points) != 12 {
		t.Fatalf("empty trend must still list 12 months")
	}
}
