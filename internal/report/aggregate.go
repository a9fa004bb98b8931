package report

import (
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
)

// Totals is the summed nutrient values for one user and one date.
type Totals struct {
	Calories float64
	Proteins float64
	Fats     float64
	Carbs    float64
}

// Aggregate sums the nutrient fields across the given entries. A zero
// Totals for an empty input is a valid result; whether "no entries" means
// anything is the caller's call.
func Aggregate(entries []database.Entry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Proteins += e.Proteins
		t.Fats += e.Fats
		t.Carbs += e.Carbs
	}
	return t
}
