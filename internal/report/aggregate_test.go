package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
)

func TestAggregateEmptyIsZero(t *testing.T) {
	totals := Aggregate(nil)
	assert.Equal(t, Totals{}, totals)

	totals = Aggregate([]database.Entry{})
	assert.Equal(t, Totals{}, totals)
}

func TestAggregateSingleEntry(t *testing.T) {
	entries := []database.Entry{
		{Product: "яблоко", AmountGrams: 200, Calories: 104, Proteins: 0.5, Fats: 0.3, Carbs: 28},
	}

	totals := Aggregate(entries)
	assert.Equal(t, 104.0, totals.Calories)
	assert.Equal(t, 0.5, totals.Proteins)
	assert.Equal(t, 0.3, totals.Fats)
	assert.Equal(t, 28.0, totals.Carbs)
}

func TestAggregateSumsAllFields(t *testing.T) {
	entries := []database.Entry{
		{Calories: 100, Proteins: 10, Fats: 5, Carbs: 20},
		{Calories: 150, Proteins: 2.5, Fats: 1.25, Carbs: 30.5},
	}

	totals := Aggregate(entries)
	assert.InDelta(t, 250.0, totals.Calories, 0.01)
	assert.InDelta(t, 12.5, totals.Proteins, 0.01)
	assert.InDelta(t, 6.25, totals.Fats, 0.01)
	assert.InDelta(t, 50.5, totals.Carbs, 0.01)
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := database.Entry{Calories: 104.37, Proteins: 0.52, Fats: 0.31, Carbs: 27.96}
	b := database.Entry{Calories: 129.5, Proteins: 2.66, Fats: 0.28, Carbs: 27.9}
	c := database.Entry{Calories: 330, Proteins: 62, Fats: 7.24, Carbs: 0}

	forward := Aggregate([]database.Entry{a, b, c})
	backward := Aggregate([]database.Entry{c, b, a})
	assert.InDelta(t, forward.Calories, backward.Calories, 0.01)
	assert.InDelta(t, forward.Proteins, backward.Proteins, 0.01)
	assert.InDelta(t, forward.Fats, backward.Fats, 0.01)
	assert.InDelta(t, forward.Carbs, backward.Carbs, 0.01)
}

func TestAggregateManySmallAdditionsNoVisibleDrift(t *testing.T) {
	var entries []database.Entry
	for i := 0; i < 48; i++ {
		entries = append(entries, database.Entry{Calories: 10.01, Proteins: 0.33, Fats: 0.17, Carbs: 2.49})
	}

	totals := Aggregate(entries)
	assert.InDelta(t, 480.48, totals.Calories, 0.01)
	assert.InDelta(t, 15.84, totals.Proteins, 0.01)
	assert.InDelta(t, 8.16, totals.Fats, 0.01)
	assert.InDelta(t, 119.52, totals.Carbs, 0.01)
}
