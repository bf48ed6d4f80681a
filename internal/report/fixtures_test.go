package report

import "github.com/dosewise/backend/internal/domain"

func sampleEvaluation() domain.ProductEvaluation {
	return domain.ProductEvaluation{
		Name:                   "Example Pre-Workout",
		CostPerServing:         1.333,
		TotalValue:             0.2278,
		CostEffectivenessScore: 0.1709,
		Ingredients: []domain.IngredientEvaluation{
			{
				Name:     "Caffeine Anhydrous",
				AmountMg: 200,
				DosageScore: domain.DosageScore{
					Name: "Caffeine Anhydrous", Score: 1, AmountMg: 200,
					MinMg: 100, OptimalMg: 200, MaxMg: 400, Reason: domain.ReasonAtOptimal,
				},
				CostPerMg:         0.00025,
				ValueContribution: 0.05,
			},
			{
				Name:     "Beta-Alanine",
				AmountMg: 3200.5,
				DosageScore: domain.DosageScore{
					Name: "Beta-Alanine", Score: 0.625, AmountMg: 3200.5,
					MinMg: 1600, OptimalMg: 3200, MaxMg: 6400, Reason: domain.ReasonBetweenOptimalAndMax,
				},
				CostPerMg:         0.00004,
				ValueContribution: 0.1778,
			},
		},
		AnalyzedIngredients: 2,
		TotalIngredients:    4,
		SkippedIngredients: []domain.SkippedIngredient{
			{Name: "Creatine Monohydrate", Reason: domain.SkipMissingCost},
			{Name: "Citrulline", Reason: domain.SkipMissingDosage},
		},
	}
}
