// Package summary reduces nutrition and sleep records of one owner into
// range and per-day summaries. Summaries are computed on demand and never stored.
package summary

import (
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const (
	MaxWindowDays = 366
	weekDays      = 7
)

type Kind string

const (
	KindNutrition Kind = "nutrition"
	KindSleep     Kind = "sleep"
)

func (k Kind) validate() error {
	switch k {
	case KindNutrition, KindSleep:
		return nil
	}
	return apperr.Invalidf("kind", "unknown summary kind [%s]", k)
}

// Metric is the sum and arithmetic mean of one numeric field. Mean is nil
// when nothing was summed.
type Metric struct {
	Sum  float64  `json:"sum"`
	Mean *float64 `json:"mean"`
}

type NutritionSummary struct {
	Calories    Metric `json:"calories"`
	Protein     Metric `json:"protein"`
	Carbs       Metric `json:"carbs"`
	Fat         Metric `json:"fat"`
	Fiber       Metric `json:"fiber"`
	Sugar       Metric `json:"sugar"`
	Sodium      Metric `json:"sodium"`
	Cholesterol Metric `json:"cholesterol"`
}

type SleepSummary struct {
	Duration Metric `json:"duration"`
	Quality  Metric `json:"quality"`

	MinQuality     *int     `json:"minQuality"`
	MaxQuality     *int     `json:"maxQuality"`
	DurationStdDev *float64 `json:"durationStdDev"`

	// means over the sessions that have the value
	MeanScore      *float64 `json:"meanScore"`
	MeanEfficiency *float64 `json:"meanEfficiency"`
	MeanDeep       *float64 `json:"meanDeep"`
	MeanREM        *float64 `json:"meanRem"`
}

// Summary covers the records whose timestamp lies in [From, To]. Exactly one
// of Nutrition and Sleep is set, matching Kind.
type Summary struct {
	Kind      Kind              `json:"kind"`
	From      time.Time         `json:"from"`
	To        time.Time         `json:"to"`
	Count     int               `json:"count"`
	Nutrition *NutritionSummary `json:"nutrition,omitempty"`
	Sleep     *SleepSummary     `json:"sleep,omitempty"`
}

// DailySummary is the summary of a single UTC calendar day.
type DailySummary struct {
	Date string `json:"date"`
	Summary
}
