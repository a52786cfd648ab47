package summary

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/daya-2619/fitnesstracking/internal/httperr"
	"github.com/daya-2619/fitnesstracking/internal/middleware"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
	"github.com/daya-2619/fitnesstracking/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=summary_test

type summarizer interface {
	Summarize(ctx context.Context, ownerID string, start, end time.Time, kind Kind) (*Summary, error)
	SummarizeByDay(ctx context.Context, ownerID string, startDate time.Time, windowDays int, kind Kind) ([]DailySummary, error)
	WeeklyTrends(ctx context.Context, ownerID string, startDate time.Time, kind Kind) ([]DailySummary, error)
}

type Handler struct {
	aggregator summarizer
}

func NewHandler(aggregator summarizer) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/summary/{kind}", h.HandleRange).Methods("GET", "OPTIONS").Name("summary-range")
	r.HandleFunc("/summary/{kind}/daily", h.HandleDaily).Methods("GET", "OPTIONS").Name("summary-daily")
	r.HandleFunc("/summary/{kind}/weekly", h.HandleWeekly).Methods("GET", "OPTIONS").Name("summary-weekly")
}

// HandleRange summarizes ?from= through ?to=, both inclusive. A plain date
// in to covers that whole UTC day.
func (h *Handler) HandleRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.range")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	from, ok := timeParam(w, r, "from", pkg.ParseTime)
	if !ok {
		return
	}
	to, ok := timeParam(w, r, "to", pkg.ParseRangeEnd)
	if !ok {
		return
	}

	summary, err := h.aggregator.Summarize(ctx, ownerID, from, to, Kind(mux.Vars(r)["kind"]))
	if err != nil {
		httperr.Write(w, err, "summarize")
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.daily")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	start, ok := timeParam(w, r, "start", pkg.ParseTime)
	if !ok {
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		http.Error(w, "error, days NaN", http.StatusBadRequest)
		return
	}

	daily, err := h.aggregator.SummarizeByDay(ctx, ownerID, start, days, Kind(mux.Vars(r)["kind"]))
	if err != nil {
		httperr.Write(w, err, "summarize by day")
		return
	}
	pkg.WriteJSON(w, daily, http.StatusOK)
}

func (h *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.weekly")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	start, ok := timeParam(w, r, "start", pkg.ParseTime)
	if !ok {
		return
	}

	weekly, err := h.aggregator.WeeklyTrends(ctx, ownerID, start, Kind(mux.Vars(r)["kind"]))
	if err != nil {
		httperr.Write(w, err, "weekly trends")
		return
	}
	pkg.WriteJSON(w, weekly, http.StatusOK)
}

func timeParam(w http.ResponseWriter, r *http.Request, name string, parse func(string) (time.Time, error)) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		http.Error(w, "error, "+name+" empty", http.StatusBadRequest)
		return time.Time{}, false
	}
	t, err := parse(raw)
	if err != nil {
		http.Error(w, "error, invalid "+name, http.StatusBadRequest)
		return time.Time{}, false
	}
	return t, true
}
