package main

import (
	"fmt"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/deppfellow/go-retail/internal/database"
	"github.com/deppfellow/go-retail/internal/lib/utils"
	"github.com/deppfellow/go-retail/internal/logger"
	"github.com/deppfellow/go-retail/internal/repository"
	"github.com/deppfellow/go-retail/internal/service"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print reports straight from the database",
	}

	cmd.AddCommand(newTopProductsCommand())
	return cmd
}

func newTopProductsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-products",
		Short: "Best-selling products by units sold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)

			db, err := database.New(cfg, &log, nil)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			repos := repository.NewRepositoriesWithDB(db.Pool)
			top, err := service.NewReportService(repos.Reports).TopProducts(cmd.Context(), limit)
			if err != nil {
				return err
			}

			return utils.PrintJSON(cmd.OutOrStdout(), top)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", service.DefaultLimit, "number of products to list (max 100)")
	return cmd
}
