package usecase

import (
	"fmt"

	"github.com/dosewise/backend/internal/domain"
)

// EvaluateProduct values a product's ingredients against the cost and dosage
// tables. Ingredients rejected by filter are left out entirely but still count
// toward TotalIngredients. Ingredients lacking a cost or dosage entry are
// recorded as skipped, cost checked first.
func EvaluateProduct(
	product domain.Product,
	costs domain.CostTable,
	dosages domain.DosageTable,
	filter domain.IngredientFilter,
) (domain.ProductEvaluation, error) {
	costPerServing, err := product.CostPerServing()
	if err != nil {
		return domain.ProductEvaluation{}, fmt.Errorf("evaluate %q: %w", product.Name, err)
	}

	eval := domain.ProductEvaluation{
		Name:               product.Name,
		CostPerServing:     costPerServing,
		Ingredients:        []domain.IngredientEvaluation{},
		TotalIngredients:   len(product.Ingredients),
		SkippedIngredients: []domain.SkippedIngredient{},
	}

	for _, ing := range product.Ingredients {
		if !filter.Allows(ing.Name) {
			continue
		}

		cost, ok := costs[ing.Name]
		if !ok {
			eval.SkippedIngredients = append(eval.SkippedIngredients, domain.SkippedIngredient{
				Name:   ing.Name,
				Reason: domain.SkipMissingCost,
			})
			continue
		}

		dosage, ok := dosages[ing.Name]
		if !ok {
			eval.SkippedIngredients = append(eval.SkippedIngredients, domain.SkippedIngredient{
				Name:   ing.Name,
				Reason: domain.SkipMissingDosage,
			})
			continue
		}

		score := ScoreIngredient(ing.Name, ing.AmountMg, dosage)
		contribution := ing.AmountMg * cost.CostPerMg * score.Score

		eval.TotalValue += contribution
		eval.AnalyzedIngredients++
		eval.Ingredients = append(eval.Ingredients, domain.IngredientEvaluation{
			Name:              ing.Name,
			AmountMg:          ing.AmountMg,
			DosageScore:       score,
			ValueContribution: contribution,
			CostPerMg:         cost.CostPerMg,
		})
	}

	if costPerServing > 0 {
		eval.CostEffectivenessScore = eval.TotalValue / costPerServing
	}

	return eval, nil
}
