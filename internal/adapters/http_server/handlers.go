package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/domain"
)

type Handlers struct{ Q *app.DashboardService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", servePage)
	s.mux.Get("/v1/filters", h.getFilters)
	s.mux.Get("/v1/dashboard", h.getDashboard)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// selection parses one multi-select dimension. An absent parameter means "no
// restriction" (nil); a present parameter, even with no usable values, is an
// explicit selection — `hotel=` selects nothing. Repeated parameters and
// comma-separated values both work.
func selection(q url.Values, name string) []string {
	raw, ok := q[name]
	if !ok {
		return nil
	}
	out := []string{}
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (h *Handlers) getFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Q.Filters(r.Context())
	if err != nil {
		serviceProblem(w, err)
		return
	}
	writeJSON(w, r, opts)
}

func (h *Handlers) getDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := domain.Selection{
		Hotels: selection(q, "hotel"),
		Months: selection(q, "month"),
	}
	d, err := h.Q.Dashboard(r.Context(), sel)
	if err != nil {
		serviceProblem(w, err)
		return
	}
	writeJSON(w, r, d)
}

func serviceProblem(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		writeProblem(w, http.StatusServiceUnavailable, "Dataset Unavailable", err.Error())
		return
	}
	writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
}
