package domain

import "fmt"

// ScoreReason classifies which branch of the dosage rule produced a score.
type ScoreReason string

const (
	ReasonBelowMinimum         ScoreReason = "below_minimum"
	ReasonAtMinimum            ScoreReason = "at_minimum"
	ReasonAboveMaximum         ScoreReason = "above_maximum"
	ReasonAtMaximum            ScoreReason = "at_maximum"
	ReasonAtOptimal            ScoreReason = "at_optimal"
	ReasonBetweenMinAndOptimal ScoreReason = "between_min_and_optimal"
	ReasonBetweenOptimalAndMax ScoreReason = "between_optimal_and_max"
)

// SkipReason explains why an ingredient was left out of a product's totals.
type SkipReason string

const (
	SkipMissingCost   SkipReason = "missing_cost"
	SkipMissingDosage SkipReason = "missing_dosage"
)

// IngredientCost is the market-inferred cost of one milligram of an ingredient.
type IngredientCost struct {
	Name       string  `json:"name"`
	CostPerMg  float64 `json:"cost_per_mg"`
	SampleSize int     `json:"sample_size"` // listings used in the weighted mean
}

// CostTable maps an ingredient name to its inferred cost.
type CostTable map[string]IngredientCost

// DosageScore is the effectiveness multiplier for an ingredient dose.
type DosageScore struct {
	Name      string      `json:"name"`
	Score     float64     `json:"score"`
	AmountMg  float64     `json:"amount_mg"`
	MinMg     float64     `json:"min_mg"`
	OptimalMg float64     `json:"optimal_mg"`
	MaxMg     float64     `json:"max_mg"`
	Reason    ScoreReason `json:"reason"`
}

// Explanation renders the reason as a sentence for reports.
func (s DosageScore) Explanation() string {
	switch s.Reason {
	case ReasonBelowMinimum:
		return fmt.Sprintf("Below minimum effective dose (%gmg)", s.MinMg)
	case ReasonAtMinimum:
		return fmt.Sprintf("At minimum effective dose (%gmg)", s.MinMg)
	case ReasonAboveMaximum:
		return fmt.Sprintf("Exceeds maximum safe dose (%gmg)", s.MaxMg)
	case ReasonAtMaximum:
		return fmt.Sprintf("At maximum safe dose (%gmg)", s.MaxMg)
	case ReasonAtOptimal:
		return fmt.Sprintf("At optimal dose (%gmg)", s.OptimalMg)
	case ReasonBetweenMinAndOptimal:
		return fmt.Sprintf("Between minimum (%gmg) and optimal (%gmg)", s.MinMg, s.OptimalMg)
	case ReasonBetweenOptimalAndMax:
		return fmt.Sprintf("Between optimal (%gmg) and maximum (%gmg)", s.OptimalMg, s.MaxMg)
	default:
		return string(s.Reason)
	}
}

// IngredientEvaluation is one analyzed ingredient of a product.
type IngredientEvaluation struct {
	Name              string      `json:"name"`
	AmountMg          float64     `json:"amount_mg"`
	DosageScore       DosageScore `json:"dosage_score"`
	ValueContribution float64     `json:"value_contribution"`
	CostPerMg         float64     `json:"cost_per_mg"`
}

// SkippedIngredient is an ingredient without cost or dosage data.
type SkippedIngredient struct {
	Name   string     `json:"name"`
	Reason SkipReason `json:"reason"`
}

// ProductEvaluation is the complete valuation of one product.
type ProductEvaluation struct {
	Name                   string                 `json:"name"`
	CostPerServing         float64                `json:"cost_per_serving"`
	TotalValue             float64                `json:"total_value"`
	CostEffectivenessScore float64                `json:"cost_effectiveness_score"`
	Ingredients            []IngredientEvaluation `json:"ingredients"`
	AnalyzedIngredients    int                    `json:"analyzed_ingredients"`
	TotalIngredients       int                    `json:"total_ingredients"`
	SkippedIngredients     []SkippedIngredient    `json:"skipped_ingredients"`
}

// SkippedNames returns the names skipped for reason, in product order.
func (e ProductEvaluation) SkippedNames(reason SkipReason) []string {
	var names []string
	for _, s := range e.SkippedIngredients {
		if s.Reason == reason {
			names = append(names, s.Name)
		}
	}
	return names
}

// IngredientFilter restricts an evaluation to a set of ingredient names.
// A nil or empty filter admits every ingredient.
type IngredientFilter map[string]struct{}

// NewIngredientFilter builds a filter from names.
func NewIngredientFilter(names ...string) IngredientFilter {
	if len(names) == 0 {
		return nil
	}
	f := make(IngredientFilter, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}
	return f
}

// Allows reports whether name passes the filter.
func (f IngredientFilter) Allows(name string) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[name]
	return ok
}

// EvaluationRequest asks for the valuation of one product, optionally
// restricted to a subset of its ingredients.
type EvaluationRequest struct {
	Product     string   `json:"product" binding:"required"`
	Ingredients []string `json:"ingredients,omitempty"`
}
