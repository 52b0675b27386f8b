package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/domain"
)

const (
	dashboardTitle  = "Hotel Booking Dashboard"
	dashboardFooter = "Descriptive analytics over a static booking dataset"
)

// DashboardService owns the memoized dataset and answers filter and
// dashboard queries. The dataset is read at most once per process (or until
// Invalidate); concurrent first requests share a single load through
// singleflight. Computed dashboards are cached per selection, cache-aside.
type DashboardService struct {
	src      domain.DatasetSource
	cache    domain.Cache
	cacheTTL time.Duration

	sf     singleflight.Group
	mu     sync.RWMutex
	rows   []domain.Booking
	loaded bool
}

func NewDashboardService(src domain.DatasetSource, cache domain.Cache, ttl time.Duration) *DashboardService {
	return &DashboardService{src: src, cache: cache, cacheTTL: ttl}
}

// Dataset returns the loaded, preprocessed table, reading the file on first
// use only.
func (s *DashboardService) Dataset(ctx context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	if s.loaded {
		rows := s.rows
		s.mu.RUnlock()
		return rows, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.sf.Do("dataset", func() (any, error) {
		s.mu.RLock()
		if s.loaded {
			rows := s.rows
			s.mu.RUnlock()
			return rows, nil
		}
		s.mu.RUnlock()

		start := time.Now()
		rows, err := s.src.Load(ctx)
		if err != nil {
			return nil, err
		}
		observability.ObserveDatasetLoad(len(rows), time.Since(start))

		s.mu.Lock()
		s.rows = rows
		s.loaded = true
		s.mu.Unlock()
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Booking), nil
}

// Invalidate drops the memoized dataset so the next query re-reads the file.
func (s *DashboardService) Invalidate() {
	s.mu.Lock()
	s.rows = nil
	s.loaded = false
	s.mu.Unlock()
}

// Filters lists the values the two sidebar controls offer.
func (s *DashboardService) Filters(ctx context.Context) (domain.FilterOptions, error) {
	rows, err := s.Dataset(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return domain.FilterOptions{
		Hotels: DistinctHotels(rows),
		Months: domain.MonthOrder[:],
	}, nil
}

// Dashboard computes (or serves from cache) the full panel set for one
// selection. Nil selection slices default to every value present.
func (s *DashboardService) Dashboard(ctx context.Context, sel domain.Selection) (domain.Dashboard, error) {
	rows, err := s.Dataset(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	norm := s.normalize(sel, rows)

	key := "dashboard:" + selectionKey(norm)
	var cached domain.Dashboard
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	filtered := FilterBookings(rows, norm)
	d := domain.Dashboard{
		Title:       dashboardTitle,
		TotalRows:   len(rows),
		MatchedRows: len(filtered),
		Panels:      BuildPanels(filtered),
		Footer:      dashboardFooter,
	}
	_ = s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds()))
	return d, nil
}

// normalize expands nil dimensions to the full default set and deduplicates
// while keeping the caller's order. Empty non-nil slices stay empty.
func (s *DashboardService) normalize(sel domain.Selection, rows []domain.Booking) domain.Selection {
	if sel.Hotels == nil {
		sel.Hotels = DistinctHotels(rows)
	}
	if sel.Months == nil {
		sel.Months = domain.MonthOrder[:]
	}
	return domain.Selection{Hotels: dedupe(sel.Hotels), Months: dedupe(sel.Months)}
}

func dedupe(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// selectionKey is order-insensitive within each dimension so equivalent
// selections share one cache entry.
func selectionKey(sel domain.Selection) string {
	hotels := append([]string(nil), sel.Hotels...)
	months := append([]string(nil), sel.Months...)
	sort.Strings(hotels)
	sort.Strings(months)
	sum := sha1.Sum([]byte(strings.Join(hotels, "\x1f") + "\x1e" + strings.Join(months, "\x1f")))
	return hex.EncodeToString(sum[:])
}
