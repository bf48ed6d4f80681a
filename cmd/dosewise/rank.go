package main

import (
	"github.com/spf13/cobra"

	"github.com/dosewise/backend/internal/report"
)

func rankCmd(opts *globalOptions) *cobra.Command {
	var (
		ingredients []string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every product by cost-effectiveness, best first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withApp(cmd, opts, func(a *app) error {
				rankings, err := a.service.Rank(cmd.Context(), ingredients)
				if err != nil {
					return dataHint(err)
				}

				if format == formatJSON {
					return writeJSON(cmd.OutOrStdout(), rankings)
				}
				return report.WriteRanking(cmd.OutOrStdout(), rankings)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "restrict the analysis to this ingredient (repeatable)")
	cmd.Flags().StringVar(&format, "format", formatText, "output format (text, json)")
	return cmd
}
