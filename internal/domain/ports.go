package domain

import "context"

// DatasetSource reads the full booking table. Implementations are expected to
// be side-effect free beyond the read itself; memoization lives in the
// application layer.
type DatasetSource interface {
	Load(ctx context.Context) ([]Booking, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Selection is the pair of multi-value filter choices. A nil slice means "not
// restricted" and is expanded by the service to every distinct value present;
// an empty non-nil slice selects nothing.
type Selection struct {
	Hotels []string
	Months []string
}

// FilterOptions lists the values the two sidebar controls can offer: hotel
// categories in first-encountered dataset order, months in canonical order.
type FilterOptions struct {
	Hotels []string `json:"hotels"`
	Months []string `json:"months"`
}
