package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hjkwon/stockroom/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/daily", h.daily)
	r.Get("/weekly", h.weekly)
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	var rng report.DateRange

	if s := r.URL.Query().Get("from"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}

		rng.From = &from
	}

	if s := r.URL.Query().Get("to"); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}

		// Inclusive end date.
		to = to.AddDate(0, 0, 1)
		rng.To = &to
	}

	totals, err := h.svc.Daily(r.Context(), rng)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if totals == nil {
		totals = []report.DailyOutbound{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totals); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) weekly(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Weekly(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
