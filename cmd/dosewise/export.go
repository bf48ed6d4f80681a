package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dosewise/backend/internal/cli"
	"github.com/dosewise/backend/internal/report"
)

func exportCmd(opts *globalOptions) *cobra.Command {
	var (
		output      string
		ingredients []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every product evaluation as CSV",
		Long: `Write one CSV row per analyzed or skipped ingredient of every product, in
catalog order. Use --output - to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				evals, err := a.service.EvaluateAll(cmd.Context(), ingredients)
				if err != nil {
					return dataHint(err)
				}

				if output == "-" {
					return report.WriteCSV(cmd.OutOrStdout(), evals)
				}

				if err := writeFile(output, func(w io.Writer) error {
					return report.WriteCSV(w, evals)
				}); err != nil {
					return err
				}

				a.logger.Debug("export written", "file", output, "products", len(evals))
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("exported %d products to %s", len(evals), output)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "evaluations.csv", "CSV file to write, - for stdout")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "restrict the analysis to this ingredient (repeatable)")
	return cmd
}

func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
