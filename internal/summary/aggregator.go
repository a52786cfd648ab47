package summary

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/nutrition"
	"github.com/daya-2619/fitnesstracking/internal/sleep"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/metrics"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
	"github.com/daya-2619/fitnesstracking/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=summary_test

const (
	day = 24 * time.Hour
	// bounds a shared load once it no longer follows any caller's context
	sharedLoadTimeout = 30 * time.Second
)

type mealSource interface {
	ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]nutrition.Meal, error)
}

type sessionSource interface {
	ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]sleep.Session, error)
}

type Aggregator struct {
	meals          mealSource
	sessions       sessionSource
	metricsManager *metrics.Manager
	// coalesces identical summaries computed at the same time
	group singleflight.Group
}

func NewAggregator(meals mealSource, sessions sessionSource, metricsManager *metrics.Manager) *Aggregator {
	return &Aggregator{
		meals:          meals,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

// Summarize reduces the owner's records of the given kind with
// start <= timestamp <= end. Meals are placed by date, sleep sessions by start time.
func (a *Aggregator) Summarize(ctx context.Context, ownerID string, start, end time.Time, kind Kind) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", string(kind)))

	if err := kind.validate(); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, apperr.Invalid("from", "must not be after to")
	}
	start, end = start.UTC(), end.UTC()

	key := fmt.Sprintf("range|%s|%s|%d|%d", kind, ownerID, start.UnixNano(), end.UnixNano())
	result, err, shared := a.coalesce(ctx, key, func(loadCtx context.Context) (any, error) {
		defer a.observe(kind, "range", time.Now())

		r, err := a.load(loadCtx, ownerID, start, end, kind)
		if err != nil {
			return nil, err
		}
		return r.summarize(start, end), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Tracef("summary %s shared between concurrent requests", key)
	}

	return result.(*Summary), nil
}

// SummarizeByDay returns one summary per UTC calendar day of the window that
// starts on the day of startDate, in ascending order. Days without records
// are left out.
func (a *Aggregator) SummarizeByDay(ctx context.Context, ownerID string, startDate time.Time, windowDays int, kind Kind) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.daily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", string(kind)))
	span.SetAttributes(attribute.Int("days", windowDays))

	if err := kind.validate(); err != nil {
		return nil, err
	}
	if windowDays < 1 || windowDays > MaxWindowDays {
		return nil, apperr.Invalidf("days", "must be between 1 and %d", MaxWindowDays)
	}

	from := startDate.UTC().Truncate(day)
	to := from.Add(time.Duration(windowDays)*day - time.Nanosecond)

	key := fmt.Sprintf("daily|%s|%s|%d|%d", kind, ownerID, from.UnixNano(), windowDays)
	result, err, _ := a.coalesce(ctx, key, func(loadCtx context.Context) (any, error) {
		defer a.observe(kind, "daily", time.Now())

		r, err := a.load(loadCtx, ownerID, from, to, kind)
		if err != nil {
			return nil, err
		}
		return r.byDay(), nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]DailySummary), nil
}

// WeeklyTrends is SummarizeByDay over the seven days starting at startDate.
func (a *Aggregator) WeeklyTrends(ctx context.Context, ownerID string, startDate time.Time, kind Kind) ([]DailySummary, error) {
	return a.SummarizeByDay(ctx, ownerID, startDate, weekDays, kind)
}

// coalesce runs fn once for all concurrent callers of key. The shared run is
// detached from the caller that started it, so one caller going away does not
// fail the others. Each caller still stops waiting when its own ctx ends.
func (a *Aggregator) coalesce(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error, bool) {
	ch := a.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()
		return fn(loadCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err, res.Shared
	case <-ctx.Done():
		return nil, ctx.Err(), false
	}
}

func (a *Aggregator) observe(kind Kind, bucketing string, start time.Time) {
	if a.metricsManager == nil {
		return
	}
	a.metricsManager.CounterSummaries.With(prometheus.Labels{"kind": string(kind), "bucketing": bucketing}).Inc()
	a.metricsManager.HistSummaryDuration.Observe(time.Since(start).Seconds())
}

func (a *Aggregator) load(ctx context.Context, ownerID string, from, to time.Time, kind Kind) (records, error) {
	switch kind {
	case KindNutrition:
		meals, err := a.meals.ListRange(ctx, ownerID, from, to)
		if err != nil {
			return records{}, fmt.Errorf("load meals: %w", err)
		}
		return records{kind: kind, meals: meals}, nil
	default:
		sessions, err := a.sessions.ListRange(ctx, ownerID, from, to)
		if err != nil {
			return records{}, fmt.Errorf("load sleep sessions: %w", err)
		}
		return records{kind: kind, sessions: sessions}, nil
	}
}

// records holds the loaded records of one kind.
type records struct {
	kind     Kind
	meals    []nutrition.Meal
	sessions []sleep.Session
}

func (r records) summarize(from, to time.Time) *Summary {
	s := &Summary{
		Kind: r.kind,
		From: from,
		To:   to,
	}
	switch r.kind {
	case KindNutrition:
		s.Count = len(r.meals)
		s.Nutrition = reduceMeals(r.meals)
	case KindSleep:
		s.Count = len(r.sessions)
		s.Sleep = reduceSessions(r.sessions)
	}
	return s
}

func (r records) byDay() []DailySummary {
	buckets := map[time.Time]*records{}
	var days []time.Time
	bucket := func(ts time.Time) *records {
		d := ts.UTC().Truncate(day)
		b, ok := buckets[d]
		if !ok {
			b = &records{kind: r.kind}
			buckets[d] = b
			days = append(days, d)
		}
		return b
	}

	for _, m := range r.meals {
		b := bucket(m.Date)
		b.meals = append(b.meals, m)
	}
	for _, s := range r.sessions {
		b := bucket(s.StartTime)
		b.sessions = append(b.sessions, s)
	}

	slices.SortFunc(days, time.Time.Compare)
	daily := make([]DailySummary, 0, len(days))
	for _, d := range days {
		daily = append(daily, DailySummary{
			Date:    d.Format(pkg.DateLayout),
			Summary: *buckets[d].summarize(d, d.Add(day-time.Nanosecond)),
		})
	}
	return daily
}
