package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDosageScore_Explanation(t *testing.T) {
	base := DosageScore{MinMg: 100, OptimalMg: 200, MaxMg: 400}

	tests := []struct {
		reason ScoreReason
		want   string
	}{
		{ReasonBelowMinimum, "Below minimum effective dose (100mg)"},
		{ReasonAtMinimum, "At minimum effective dose (100mg)"},
		{ReasonAboveMaximum, "Exceeds maximum safe dose (400mg)"},
		{ReasonAtMaximum, "At maximum safe dose (400mg)"},
		{ReasonAtOptimal, "At optimal dose (200mg)"},
		{ReasonBetweenMinAndOptimal, "Between minimum (100mg) and optimal (200mg)"},
		{ReasonBetweenOptimalAndMax, "Between optimal (200mg) and maximum (400mg)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			s := base
			s.Reason = tt.reason
			assert.Equal(t, tt.want, s.Explanation())
		})
	}
}

func TestIngredientFilter_Allows(t *testing.T) {
	var nilFilter IngredientFilter
	assert.True(t, nilFilter.Allows("Caffeine Anhydrous"))
	assert.Nil(t, NewIngredientFilter())

	f := NewIngredientFilter("Caffeine Anhydrous", "Beta-Alanine")
	assert.True(t, f.Allows("Caffeine Anhydrous"))
	assert.True(t, f.Allows("Beta-Alanine"))
	assert.False(t, f.Allows("caffeine anhydrous"))
	assert.False(t, f.Allows("Creatine Monohydrate"))
}

func TestProductEvaluation_SkippedNames(t *testing.T) {
	e := ProductEvaluation{SkippedIngredients: []SkippedIngredient{
		{Name: "A", Reason: SkipMissingCost},
		{Name: "B", Reason: SkipMissingDosage},
		{Name: "C", Reason: SkipMissingCost},
	}}

	assert.Equal(t, []string{"A", "C"}, e.SkippedNames(SkipMissingCost))
	assert.Equal(t, []string{"B"}, e.SkippedNames(SkipMissingDosage))
}
