package sleep

import "time"

type DataSource string

const (
	DataSourceManual   DataSource = "manual"
	DataSourceWearable DataSource = "wearable"
	DataSourceApp      DataSource = "app"
	DataSourceOther    DataSource = "other"
)

func (d DataSource) Valid() bool {
	switch d {
	case DataSourceManual, DataSourceWearable, DataSourceApp, DataSourceOther:
		return true
	}
	return false
}

type DisturbanceType string

const (
	DisturbanceNoise       DisturbanceType = "noise"
	DisturbanceLight       DisturbanceType = "light"
	DisturbanceTemperature DisturbanceType = "temperature"
	DisturbancePain        DisturbanceType = "pain"
	DisturbanceAnxiety     DisturbanceType = "anxiety"
	DisturbanceBathroom    DisturbanceType = "bathroom"
	DisturbancePartner     DisturbanceType = "partner"
	DisturbanceChild       DisturbanceType = "child"
	DisturbancePet         DisturbanceType = "pet"
	DisturbanceOther       DisturbanceType = "other"
)

var disturbanceTypes = map[DisturbanceType]bool{
	DisturbanceNoise:       true,
	DisturbanceLight:       true,
	DisturbanceTemperature: true,
	DisturbancePain:        true,
	DisturbanceAnxiety:     true,
	DisturbanceBathroom:    true,
	DisturbancePartner:     true,
	DisturbanceChild:       true,
	DisturbancePet:         true,
	DisturbanceOther:       true,
}

func (t DisturbanceType) Valid() bool {
	return disturbanceTypes[t]
}

type Category string

const (
	CategoryExcellent Category = "excellent"
	CategoryGood      Category = "good"
	CategoryFair      Category = "fair"
	CategoryPoor      Category = "poor"
	CategoryVeryPoor  Category = "very-poor"
)

// Stage is the time spent in one sleep stage, in hours.
// Percentage is derived from all present stages.
type Stage struct {
	Duration   float64  `json:"duration"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// Stages is the stage breakdown of a session. A nil stage means there is
// no data for it, which is not the same as a zero duration.
type Stages struct {
	Deep  *Stage `json:"deep,omitempty"`
	Light *Stage `json:"light,omitempty"`
	REM   *Stage `json:"rem,omitempty"`
	Awake *Stage `json:"awake,omitempty"`
}

func (s Stages) all() []*Stage {
	return []*Stage{s.Deep, s.Light, s.REM, s.Awake}
}

// HeartRate during the session, in beats per minute.
type HeartRate struct {
	Min     *int `json:"min,omitempty"`
	Max     *int `json:"max,omitempty"`
	Average *int `json:"average,omitempty"`
	Resting *int `json:"resting,omitempty"`
}

type GoalsAchievement struct {
	Duration bool `json:"duration"`
	Quality  bool `json:"quality"`
}

type Goals struct {
	TargetDuration *float64 `json:"targetDuration,omitempty"`
	TargetQuality  *int     `json:"targetQuality,omitempty"`

	// derived
	Achieved GoalsAchievement `json:"achieved"`
}

type Disturbance struct {
	Type        DisturbanceType `json:"type"`
	Description string          `json:"description,omitempty"`
	Time        *time.Time      `json:"time,omitempty"`
	// minutes
	Duration *float64 `json:"duration,omitempty"`
}

// Session is one sleep session. The stage percentages, Efficiency, Debt,
// Score, Category and Goals.Achieved are derived by Recompute and are never
// set directly. Duration is derived too, but a duration posted with a new
// session is kept as its SuppliedDuration.
type Session struct {
	ID        int       `json:"id"`
	OwnerID   string    `json:"ownerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	// SuppliedDuration, in hours, takes precedence over EndTime - StartTime.
	SuppliedDuration *float64 `json:"suppliedDuration,omitempty"`

	Quality      int           `json:"quality"`
	Stages       Stages        `json:"stages"`
	HeartRate    *HeartRate    `json:"heartRate,omitempty"`
	Goals        *Goals        `json:"goals,omitempty"`
	Disturbances []Disturbance `json:"disturbances,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	DataSource   DataSource    `json:"dataSource"`

	// derived
	Duration   float64  `json:"duration"`
	Efficiency *float64 `json:"efficiency,omitempty"`
	Debt       *float64 `json:"debt,omitempty"`
	Score      int      `json:"score"`
	Category   Category `json:"category"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
