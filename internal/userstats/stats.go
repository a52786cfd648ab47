package userstats

import "time"

const (
	achievementPoints = 10
	pointsPerLevel    = 100
)

type AchievementType string

const (
	AchievementStreak  AchievementType = "streak"
	AchievementWorkout AchievementType = "workout"
	AchievementGoal    AchievementType = "goal"
	AchievementSocial  AchievementType = "social"
	AchievementSpecial AchievementType = "special"
)

func (t AchievementType) Valid() bool {
	switch t {
	case AchievementStreak, AchievementWorkout, AchievementGoal, AchievementSocial, AchievementSpecial:
		return true
	}
	return false
}

type Achievement struct {
	ID          string          `json:"id"`
	Type        AchievementType `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	EarnedAt    time.Time       `json:"earnedAt"`
}

// WorkoutCompletion carries the deltas of one finished workout. Missing
// deltas count as zero.
type WorkoutCompletion struct {
	CaloriesBurned *float64  `json:"caloriesBurned,omitempty"`
	Steps          *int64    `json:"steps,omitempty"`
	Distance       *float64  `json:"distance,omitempty"`
	CompletedAt    time.Time `json:"completedAt"`
}

// Stats are the cumulative counters of one user. They change only through
// RecordWorkout and AwardAchievement.
type Stats struct {
	OwnerID             string  `json:"ownerId"`
	TotalWorkouts       int     `json:"totalWorkouts"`
	TotalCaloriesBurned float64 `json:"totalCaloriesBurned"`
	TotalSteps          int64   `json:"totalSteps"`
	TotalDistance       float64 `json:"totalDistance"`

	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	// UTC midnight of the last day with a workout
	LastWorkoutDay *time.Time `json:"lastWorkoutDay,omitempty"`

	Points       int           `json:"points"`
	Level        int           `json:"level"`
	Achievements []Achievement `json:"achievements"`

	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewStats returns the stats of a user that has not done anything yet.
func NewStats(ownerID string) *Stats {
	return &Stats{
		OwnerID:      ownerID,
		Level:        1,
		Achievements: []Achievement{},
	}
}
