package main

import (
	"github.com/spf13/cobra"

	"github.com/dosewise/backend/internal/report"
)

func costsCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Show the cost per mg inferred from single-ingredient listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			return withApp(cmd, opts, func(a *app) error {
				costs, err := a.service.Costs(cmd.Context())
				if err != nil {
					return dataHint(err)
				}

				if format == formatJSON {
					return writeJSON(cmd.OutOrStdout(), costs)
				}
				return report.WriteCosts(cmd.OutOrStdout(), costs)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format (text, json)")
	return cmd
}
