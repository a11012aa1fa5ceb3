// Package cli wires the ptashelf commands: serve, migrate, export and import.
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/leopoldovcfonseca/ptashelf/internal/platform/config"
)

type rootOptions struct {
	envFile string
	cfg     config.Config
}

// NewRootCommand builds the ptashelf command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "ptashelf",
		Short: "Keep track of tax procedure (PTA) records",
		Long: `ptashelf serves an HTML and JSON interface for PTA records stored in
memory, PostgreSQL, SQLite or MongoDB (DATA_BACKEND).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
	)
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
