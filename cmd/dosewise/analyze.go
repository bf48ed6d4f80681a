package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dosewise/backend/internal/cli"
	"github.com/dosewise/backend/internal/domain"
	"github.com/dosewise/backend/internal/report"
)

func analyzeCmd(opts *globalOptions) *cobra.Command {
	var hideIngredients bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Interactively evaluate products one at a time",
		Long: `Pick a product from the catalog, optionally narrow the analysis to some of its
ingredients, and read its cost-effectiveness report. Enter 0 to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				showIngredients := a.cfg.Report.ShowIngredients && !hideIngredients
				return runAnalyze(cmd, a, showIngredients)
			})
		},
	}

	cmd.Flags().BoolVar(&hideIngredients, "hide-ingredients", false, "hide the per-ingredient analysis in reports")
	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, showIngredients bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	prompter := cli.NewPrompter(cmd.InOrStdin(), out)

	fmt.Fprintln(out, cli.FormatTitle("DoseWise Cost-Effectiveness Analyzer"))
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, cli.FormatSubtle("Loading data..."))

	products, err := a.service.Products(ctx)
	if err != nil {
		return dataHint(err)
	}
	if len(products) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No products found in the data directory."))
		return nil
	}

	for {
		prompter.ListProducts(products)

		product, ok, err := prompter.ChooseProduct(ctx, products)
		if err != nil {
			return endOfInput(err)
		}
		if !ok {
			break
		}

		ingredients, err := prompter.ChooseIngredients(ctx, product)
		if err != nil {
			return endOfInput(err)
		}

		fmt.Fprintln(out, "\n"+cli.FormatSubtle("Analyzing product..."))
		eval, err := a.service.Evaluate(ctx, &domain.EvaluationRequest{
			Product:     product.Name,
			Ingredients: ingredients,
		})
		if err != nil {
			fmt.Fprintln(out, cli.FormatError(err.Error()))
		} else {
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderReport(strings.TrimRight(report.FormatEvaluation(*eval, showIngredients), "\n")))
		}

		again, err := prompter.Confirm(ctx, "\nAnalyze another product? (y/n): ")
		if err != nil {
			return endOfInput(err)
		}
		if !again {
			break
		}
	}

	fmt.Fprintln(out, "\nThank you for using DoseWise!")
	return nil
}

// endOfInput treats a closed stdin as a normal exit
func endOfInput(err error) error {
	if errors.Is(err, cli.ErrInputClosed) {
		return nil
	}
	return err
}
