package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosewise/backend/internal/cli"
	"github.com/dosewise/backend/internal/infrastructure/datafile"
)

func initCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create example data files",
		Long: `Write example products.json, singles.json and dosages.json files into the data
directory. Existing files are left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			written, err := datafile.WriteExamples(cfg.Data.Dir, force)
			if err != nil {
				if errors.Is(err, datafile.ErrExamplesExist) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range written {
				fmt.Fprintln(out, cli.FormatSuccess("wrote "+path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing data files")
	return cmd
}
