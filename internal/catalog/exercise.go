package catalog

import "time"

type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryCore        Category = "core"
	CategoryFlexibility Category = "flexibility"
	CategoryBalance     Category = "balance"
	CategorySports      Category = "sports"
	CategoryYoga        Category = "yoga"
	CategoryPilates     Category = "pilates"
)

var categories = map[Category]bool{
	CategoryStrength:    true,
	CategoryCardio:      true,
	CategoryCore:        true,
	CategoryFlexibility: true,
	CategoryBalance:     true,
	CategorySports:      true,
	CategoryYoga:        true,
	CategoryPilates:     true,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Equipment string

const (
	EquipmentBodyweight      Equipment = "bodyweight"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentKettlebell      Equipment = "kettlebell"
	EquipmentResistanceBands Equipment = "resistance-bands"
	EquipmentMachine         Equipment = "machine"
	EquipmentCardio          Equipment = "cardio-equipment"
	EquipmentOther           Equipment = "other"
)

var equipment = map[Equipment]bool{
	EquipmentBodyweight:      true,
	EquipmentDumbbells:       true,
	EquipmentBarbell:         true,
	EquipmentKettlebell:      true,
	EquipmentResistanceBands: true,
	EquipmentMachine:         true,
	EquipmentCardio:          true,
	EquipmentOther:           true,
}

var muscleGroups = map[string]bool{
	"chest":       true,
	"back":        true,
	"shoulders":   true,
	"biceps":      true,
	"triceps":     true,
	"forearms":    true,
	"quadriceps":  true,
	"hamstrings":  true,
	"glutes":      true,
	"calves":      true,
	"core":        true,
	"full-body":   true,
	"cardio":      true,
	"flexibility": true,
}

// Review is the single review of one reviewer.
type Review struct {
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Rating is derived from the reviews. Average is 0 when there are none.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Exercise struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Category          Category   `json:"category"`
	Difficulty        Difficulty `json:"difficulty"`
	MuscleGroups      []string   `json:"muscleGroups"`
	Equipment         Equipment  `json:"equipment"`
	Description       string     `json:"description,omitempty"`
	CaloriesPerMinute *float64   `json:"caloriesPerMinute,omitempty"`

	Reviews    []Review `json:"reviews"`
	Rating     Rating   `json:"rating"`
	UsageCount int      `json:"usageCount"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
