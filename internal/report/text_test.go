package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dosewise/backend/internal/domain"
)

func TestFormatEvaluation(t *testing.T) {
	out := FormatEvaluation(sampleEvaluation(), true)

	for _, want := range []string{
		"Product Evaluation Report: Example Pre-Workout\n",
		"Cost per serving: $1.33\n",
		"Total theoretical value: $0.23\n",
		"Cost-effectiveness score: 0.17\n",
		"(Analyzed 2 of 4 ingredients)\n",
		"Ingredient Analysis:\n",
		"\nCaffeine Anhydrous:\n  Amount: 200mg\n  Dosage Score: 1.00\n  Reason: At optimal dose (200mg)\n  Cost/mg: $0.000250\n  Value Contribution: $0.05\n",
		"  Amount: 3200.5mg\n",
		"  Reason: Between optimal (3200mg) and maximum (6400mg)\n",
		"Skipped Ingredients:\n",
		"Missing cost data:\n  - Creatine Monohydrate\n",
		"Missing dosage data:\n  - Citrulline\n",
	} {
		assert.Contains(t, out, want)
	}

	assert.Less(t, strings.Index(out, "Ingredient Analysis"), strings.Index(out, "Skipped Ingredients"))
}

func TestFormatEvaluation_HideIngredients(t *testing.T) {
	out := FormatEvaluation(sampleEvaluation(), false)

	assert.NotContains(t, out, "Ingredient Analysis")
	assert.NotContains(t, out, "Dosage Score")
	assert.Contains(t, out, "Skipped Ingredients")
}

func TestFormatEvaluation_NothingSkipped(t *testing.T) {
	eval := sampleEvaluation()
	eval.SkippedIngredients = []domain.SkippedIngredient{}

	out := FormatEvaluation(eval, true)
	assert.NotContains(t, out, "Skipped Ingredients")
	assert.NotContains(t, out, "Missing")
}

func TestFormatEvaluation_OnlyMissingDosage(t *testing.T) {
	eval := sampleEvaluation()
	eval.SkippedIngredients = []domain.SkippedIngredient{{Name: "Citrulline", Reason: domain.SkipMissingDosage}}

	out := FormatEvaluation(eval, true)
	assert.NotContains(t, out, "Missing cost data")
	assert.Contains(t, out, "Missing dosage data")
}
