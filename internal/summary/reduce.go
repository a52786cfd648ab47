package summary

import (
	"math"

	"github.com/daya-2619/fitnesstracking/internal/nutrition"
	"github.com/daya-2619/fitnesstracking/internal/sleep"
)

// accumulator tracks the values of one field over the records that have it.
type accumulator struct {
	values []float64
	sum    float64
}

func (a *accumulator) add(v float64) {
	a.values = append(a.values, v)
	a.sum += v
}

func (a *accumulator) mean() *float64 {
	if len(a.values) == 0 {
		return nil
	}
	m := a.sum / float64(len(a.values))
	return &m
}

func (a *accumulator) metric() Metric {
	return Metric{Sum: a.sum, Mean: a.mean()}
}

// stdDev is the population standard deviation, nil without values.
func (a *accumulator) stdDev() *float64 {
	mean := a.mean()
	if mean == nil {
		return nil
	}
	var sq float64
	for _, v := range a.values {
		d := v - *mean
		sq += d * d
	}
	sd := math.Sqrt(sq / float64(len(a.values)))
	return &sd
}

func reduceMeals(meals []nutrition.Meal) *NutritionSummary {
	var calories, protein, carbs, fat, fiber, sugar, sodium, cholesterol accumulator
	for _, m := range meals {
		calories.add(m.Totals.Calories)
		protein.add(m.Totals.Protein)
		carbs.add(m.Totals.Carbs)
		fat.add(m.Totals.Fat)
		fiber.add(m.Totals.Fiber)
		sugar.add(m.Totals.Sugar)
		sodium.add(m.Totals.Sodium)
		cholesterol.add(m.Totals.Cholesterol)
	}

	return &NutritionSummary{
		Calories:    calories.metric(),
		Protein:     protein.metric(),
		Carbs:       carbs.metric(),
		Fat:         fat.metric(),
		Fiber:       fiber.metric(),
		Sugar:       sugar.metric(),
		Sodium:      sodium.metric(),
		Cholesterol: cholesterol.metric(),
	}
}

func reduceSessions(sessions []sleep.Session) *SleepSummary {
	var duration, quality, score, efficiency, deep, rem accumulator
	var minQuality, maxQuality *int

	for _, s := range sessions {
		duration.add(s.Duration)
		quality.add(float64(s.Quality))
		score.add(float64(s.Score))
		if s.Efficiency != nil {
			efficiency.add(*s.Efficiency)
		}
		if s.Stages.Deep != nil {
			deep.add(s.Stages.Deep.Duration)
		}
		if s.Stages.REM != nil {
			rem.add(s.Stages.REM.Duration)
		}

		q := s.Quality
		if minQuality == nil || q < *minQuality {
			minQuality = &q
		}
		if maxQuality == nil || q > *maxQuality {
			maxQuality = &q
		}
	}

	return &SleepSummary{
		Duration:       duration.metric(),
		Quality:        quality.metric(),
		MinQuality:     minQuality,
		MaxQuality:     maxQuality,
		DurationStdDev: duration.stdDev(),
		MeanScore:      score.mean(),
		MeanEfficiency: efficiency.mean(),
		MeanDeep:       deep.mean(),
		MeanREM:        rem.mean(),
	}
}
