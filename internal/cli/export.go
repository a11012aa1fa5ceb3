package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/csvio"
	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every pta as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			backend, err := OpenBackend(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close %s: %w", output, cerr)
					}
				}()
				w = f
			}

			n, err := csvio.Export(ctx, ptas.NewService(backend.Repo), w)
			if err != nil {
				return err
			}
			log.Printf("exported %d ptas", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file to write (default stdout)")
	return cmd
}
