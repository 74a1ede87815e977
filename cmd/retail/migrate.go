package main

import (
	"fmt"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/deppfellow/go-retail/internal/database"
	"github.com/deppfellow/go-retail/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema and query routine migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				names, err := database.MigrationNames()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)
			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the embedded migrations in apply order and exit")
	return cmd
}
