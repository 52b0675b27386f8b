package csvfile

// Header-name contract of the dataset file. Extra columns are ignored;
// a missing required column makes the whole load fail.
const (
	colHotel         = "hotel"
	colIsCanceled    = "is_canceled"
	colArrivalYear   = "arrival_date_year"
	colArrivalMonth  = "arrival_date_month"
	colArrivalDay    = "arrival_date_day_of_month"
	colCountry       = "country"
	colMarketSegment = "market_segment"
	colDistChannel   = "distribution_channel"
	colLeadTime      = "lead_time"
	colADR           = "adr"
	colWeekNights    = "stays_in_week_nights"
	colWeekendNights = "stays_in_weekend_nights"
	colAdults        = "adults"
	colChildren      = "children"
	colBabies        = "babies"
)

var requiredColumns = []string{
	colHotel,
	colIsCanceled,
	colArrivalYear,
	colArrivalMonth,
	colArrivalDay,
	colCountry,
	colMarketSegment,
	colDistChannel,
	colLeadTime,
	colADR,
	colWeekNights,
	colWeekendNights,
	colAdults,
	colChildren,
	colBabies,
}
