package domain

type PanelID string

const (
	PanelCancellationRate PanelID = "cancellation_rate"
	PanelBookingsByHotel  PanelID = "bookings_by_hotel"
	PanelMonthlyTrend     PanelID = "monthly_trend"
	PanelTopCountries     PanelID = "top_countries"
	PanelLeadTimeByStatus PanelID = "lead_time_by_status"
	PanelADRByHotel       PanelID = "adr_by_hotel"
	PanelMarketSegment    PanelID = "market_segment_share"
	PanelChannelShare     PanelID = "distribution_channel_share"
	PanelStayDuration     PanelID = "stay_duration"
	PanelADRByCountry     PanelID = "adr_by_country"
	PanelGuestComposition PanelID = "guest_composition"
)

// PanelOrder is the fixed presentation order of the dashboard.
var PanelOrder = [11]PanelID{
	PanelCancellationRate,
	PanelBookingsByHotel,
	PanelMonthlyTrend,
	PanelTopCountries,
	PanelLeadTimeByStatus,
	PanelADRByHotel,
	PanelMarketSegment,
	PanelChannelShare,
	PanelStayDuration,
	PanelADRByCountry,
	PanelGuestComposition,
}

type ChartKind string

const (
	ChartPie       ChartKind = "pie"
	ChartBar       ChartKind = "bar"
	ChartLine      ChartKind = "line"
	ChartBox       ChartKind = "box"
	ChartHistogram ChartKind = "histogram"
)

// SeriesPoint is one labeled value in a pie/bar/line series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BoxSummary is a five-number summary plus outliers for one boxplot group.
type BoxSummary struct {
	Label    string    `json:"label"`
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers,omitempty"`
}

type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// ChartData carries exactly one of the three series shapes, depending on the
// panel's ChartKind.
type ChartData struct {
	Points []SeriesPoint  `json:"points,omitempty"`
	Boxes  []BoxSummary   `json:"boxes,omitempty"`
	Bins   []HistogramBin `json:"bins,omitempty"`
}

// Panel is one statistic+chart unit. A failed panel carries Err and no Data;
// failures never propagate to other panels.
type Panel struct {
	ID    PanelID    `json:"id"`
	Title string     `json:"title"`
	Kind  ChartKind  `json:"kind"`
	Data  *ChartData `json:"data,omitempty"`
	Err   string     `json:"error,omitempty"`
}

// Dashboard is the full response for one filter selection: the eleven panels
// in PanelOrder, always all present, plus row counts for the header line.
type Dashboard struct {
	Title       string  `json:"title"`
	TotalRows   int     `json:"total_rows"`
	MatchedRows int     `json:"matched_rows"`
	Panels      []Panel `json:"panels"`
	Footer      string  `json:"footer"`
}
