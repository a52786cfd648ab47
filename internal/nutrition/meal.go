package nutrition

import (
	"strings"
	"time"
)

type Slot string

const (
	SlotBreakfast   Slot = "breakfast"
	SlotLunch       Slot = "lunch"
	SlotDinner      Slot = "dinner"
	SlotSnack       Slot = "snack"
	SlotPreWorkout  Slot = "pre-workout"
	SlotPostWorkout Slot = "post-workout"
)

var slots = map[Slot]bool{
	SlotBreakfast:   true,
	SlotLunch:       true,
	SlotDinner:      true,
	SlotSnack:       true,
	SlotPreWorkout:  true,
	SlotPostWorkout: true,
}

// Canonical lower-cases the slot and maps the legacy "snacks" to "snack".
func (s Slot) Canonical() Slot {
	c := Slot(strings.ToLower(strings.TrimSpace(string(s))))
	if c == "snacks" {
		return SlotSnack
	}
	return c
}

func (s Slot) Valid() bool {
	return slots[s]
}

type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tbsp"
	UnitTeaspoon   Unit = "tsp"
	UnitPiece      Unit = "piece"
	UnitSlice      Unit = "slice"
	UnitServing    Unit = "serving"
)

var units = map[Unit]bool{
	UnitGram:       true,
	UnitKilogram:   true,
	UnitMilliliter: true,
	UnitLiter:      true,
	UnitCup:        true,
	UnitTablespoon: true,
	UnitTeaspoon:   true,
	UnitPiece:      true,
	UnitSlice:      true,
	UnitServing:    true,
}

func (u Unit) Valid() bool {
	return units[u]
}

// Nutrients holds macro nutrient amounts, either per unit of a food or as totals.
// Calories in kcal, sodium and cholesterol in mg, everything else in grams.
type Nutrients struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

func (n Nutrients) Scale(f float64) Nutrients {
	return Nutrients{
		Calories:    n.Calories * f,
		Protein:     n.Protein * f,
		Carbs:       n.Carbs * f,
		Fat:         n.Fat * f,
		Fiber:       n.Fiber * f,
		Sugar:       n.Sugar * f,
		Sodium:      n.Sodium * f,
		Cholesterol: n.Cholesterol * f,
	}
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories:    n.Calories + o.Calories,
		Protein:     n.Protein + o.Protein,
		Carbs:       n.Carbs + o.Carbs,
		Fat:         n.Fat + o.Fat,
		Fiber:       n.Fiber + o.Fiber,
		Sugar:       n.Sugar + o.Sugar,
		Sodium:      n.Sodium + o.Sodium,
		Cholesterol: n.Cholesterol + o.Cholesterol,
	}
}

type FoodItem struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`

	// PerUnit is the nutrient content of one unit of the food.
	PerUnit Nutrients `json:"perUnit"`

	// Micronutrients per unit, keyed by name, e.g. "vitaminC" or "iron".
	Micronutrients map[string]float64 `json:"micronutrients,omitempty"`
	Notes          string             `json:"notes,omitempty"`

	// derived
	Totals              Nutrients          `json:"totals"`
	MicronutrientTotals map[string]float64 `json:"micronutrientTotals,omitempty"`
}

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

// Meal is one logged meal with its foods. Totals, MicronutrientTotals and
// TimeOfDay are derived from the foods and the date and are never set directly.
type Meal struct {
	ID      int        `json:"id"`
	OwnerID string     `json:"ownerId"`
	Date    time.Time  `json:"date"`
	Slot    Slot       `json:"mealType"`
	Foods   []FoodItem `json:"foods"`
	Notes   string     `json:"notes,omitempty"`
	Tags    []string   `json:"tags,omitempty"`

	// HungerBefore and FullnessAfter are self reported, 1 to 10.
	HungerBefore  *int `json:"hungerBefore,omitempty"`
	FullnessAfter *int `json:"fullnessAfter,omitempty"`

	// derived
	Totals              Nutrients          `json:"totals"`
	MicronutrientTotals map[string]float64 `json:"micronutrientTotals,omitempty"`
	TimeOfDay           TimeOfDay          `json:"timeOfDay"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
