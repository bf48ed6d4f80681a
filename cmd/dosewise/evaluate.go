package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dosewise/backend/internal/domain"
	"github.com/dosewise/backend/internal/report"
)

func evaluateCmd(opts *globalOptions) *cobra.Command {
	var (
		ingredients     []string
		format          string
		hideIngredients bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <product>",
		Short: "Evaluate one product by exact name",
		Example: `  dosewise evaluate "Example Pre-Workout"
  dosewise evaluate "Example Pre-Workout" -i "Caffeine Anhydrous" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withApp(cmd, opts, func(a *app) error {
				ctx := cmd.Context()
				eval, err := a.service.Evaluate(ctx, &domain.EvaluationRequest{
					Product:     args[0],
					Ingredients: ingredients,
				})
				if err != nil {
					if errors.Is(err, domain.ErrProductNotFound) {
						if suggestions := a.service.SuggestProducts(ctx, args[0]); len(suggestions) > 0 {
							return fmt.Errorf("%w\ndid you mean: %s", err, strings.Join(suggestions, ", "))
						}
					}
					return dataHint(err)
				}

				if format == formatJSON {
					return writeJSON(cmd.OutOrStdout(), eval)
				}
				showIngredients := a.cfg.Report.ShowIngredients && !hideIngredients
				_, err = fmt.Fprint(cmd.OutOrStdout(), report.FormatEvaluation(*eval, showIngredients))
				return err
			})
		},
	}

	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "restrict the analysis to this ingredient (repeatable)")
	cmd.Flags().StringVar(&format, "format", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&hideIngredients, "hide-ingredients", false, "hide the per-ingredient analysis")
	return cmd
}
