package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dosewise/backend/internal/domain"
)

// WriteRanking prints evaluations as an aligned table in the given order, best first.
func WriteRanking(w io.Writer, evals []domain.ProductEvaluation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tPRODUCT\tCOST/SERVING\tVALUE\tSCORE\tANALYZED")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 2),
		strings.Repeat("-", 24),
		strings.Repeat("-", 12),
		strings.Repeat("-", 8),
		strings.Repeat("-", 6),
		strings.Repeat("-", 8))

	for i, eval := range evals {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t$%s\t%s\t%d/%d\n",
			i+1,
			eval.Name,
			money(eval.CostPerServing),
			money(eval.TotalValue),
			money(eval.CostEffectivenessScore),
			eval.AnalyzedIngredients,
			eval.TotalIngredients)
	}

	return tw.Flush()
}

// WriteCosts prints the inferred per-mg cost of every ingredient.
func WriteCosts(w io.Writer, costs []domain.IngredientCost) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "INGREDIENT\tCOST/MG\tLISTINGS")
	for _, c := range costs {
		fmt.Fprintf(tw, "%s\t$%s\t%d\n", c.Name, unitCost(c.CostPerMg), c.SampleSize)
	}

	return tw.Flush()
}
