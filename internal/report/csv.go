package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dosewise/backend/internal/domain"
)

// Row status values of the CSV export
const (
	StatusAnalyzed = "analyzed"
	StatusSkipped  = "skipped"
)

// CSVHeader lists the export columns in order.
var CSVHeader = []string{
	"product",
	"cost_per_serving",
	"total_value",
	"cost_effectiveness_score",
	"ingredient",
	"status",
	"amount_mg",
	"dosage_score",
	"reason",
	"cost_per_mg",
	"value_contribution",
}

// WriteCSV writes one row per analyzed or skipped ingredient of every evaluation.
// A product with neither gets a single row with empty ingredient columns.
func WriteCSV(w io.Writer, evals []domain.ProductEvaluation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, eval := range evals {
		for _, row := range csvRows(eval) {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row for %q: %w", eval.Name, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRows(eval domain.ProductEvaluation) [][]string {
	product := []string{
		eval.Name,
		money(eval.CostPerServing),
		money(eval.TotalValue),
		money(eval.CostEffectivenessScore),
	}
	row := func(cols ...string) []string {
		return append(append([]string(nil), product...), cols...)
	}

	rows := make([][]string, 0, len(eval.Ingredients)+len(eval.SkippedIngredients))
	for _, ing := range eval.Ingredients {
		rows = append(rows, row(
			ing.Name,
			StatusAnalyzed,
			amount(ing.AmountMg),
			money(ing.DosageScore.Score),
			string(ing.DosageScore.Reason),
			unitCost(ing.CostPerMg),
			money(ing.ValueContribution),
		))
	}
	for _, s := range eval.SkippedIngredients {
		rows = append(rows, row(s.Name, StatusSkipped, "", "", string(s.Reason), "", ""))
	}

	if len(rows) == 0 {
		rows = append(rows, row("", "", "", "", "", "", ""))
	}
	return rows
}
