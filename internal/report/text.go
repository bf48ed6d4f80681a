package report

import (
	"fmt"
	"strings"

	"github.com/dosewise/backend/internal/domain"
)

const ruleWidth = 50

// FormatEvaluation renders a product evaluation as a plain-text report.
// The per-ingredient block is left out when showIngredients is false.
func FormatEvaluation(eval domain.ProductEvaluation, showIngredients bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Product Evaluation Report: %s\n", eval.Name)
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&b, "Cost per serving: $%s\n", money(eval.CostPerServing))
	fmt.Fprintf(&b, "Total theoretical value: $%s\n", money(eval.TotalValue))
	fmt.Fprintf(&b, "Cost-effectiveness score: %s\n", money(eval.CostEffectivenessScore))
	fmt.Fprintf(&b, "(Analyzed %d of %d ingredients)\n", eval.AnalyzedIngredients, eval.TotalIngredients)

	if showIngredients && len(eval.Ingredients) > 0 {
		b.WriteString("\nIngredient Analysis:\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, ing := range eval.Ingredients {
			fmt.Fprintf(&b, "\n%s:\n", ing.Name)
			fmt.Fprintf(&b, "  Amount: %s%s\n", amount(ing.AmountMg), domain.CanonicalUnit)
			fmt.Fprintf(&b, "  Dosage Score: %s\n", money(ing.DosageScore.Score))
			fmt.Fprintf(&b, "  Reason: %s\n", ing.DosageScore.Explanation())
			fmt.Fprintf(&b, "  Cost/mg: $%s\n", unitCost(ing.CostPerMg))
			fmt.Fprintf(&b, "  Value Contribution: $%s\n", money(ing.ValueContribution))
		}
	}

	if len(eval.SkippedIngredients) > 0 {
		b.WriteString("\nSkipped Ingredients:\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		writeNameList(&b, "Missing cost data:", eval.SkippedNames(domain.SkipMissingCost))
		writeNameList(&b, "Missing dosage data:", eval.SkippedNames(domain.SkipMissingDosage))
	}

	return b.String()
}

func writeNameList(b *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteString("\n" + title + "\n")
	for _, name := range names {
		fmt.Fprintf(b, "  - %s\n", name)
	}
}
