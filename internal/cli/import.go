package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/csvio"
	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Create one pta per CSV row",
		Long: `Reads a CSV file whose header names pta fields (procedure_number,
taxpayer, ...) and creates a new pta for every row. An id column is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			ctx := cmd.Context()
			backend, err := OpenBackend(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			stats, err := csvio.Import(ctx, ptas.NewService(backend.Repo), f)
			if err != nil {
				return err
			}
			log.Printf("import complete: %d created, %d skipped", stats.Created, stats.Skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", stats.Created)
			return nil
		},
	}
}
