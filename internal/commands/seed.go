package commands

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/hesabdar/internal/core/services"
	"github.com/SscSPs/hesabdar/internal/repositories/database/pgsql"
	"github.com/SscSPs/hesabdar/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default Persian chart of accounts into an empty ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := bootstrap()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize database pool: %w", err)
			}
			defer dbPool.Close()

			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
			created, err := container.Account.SeedDefaultChart(cmd.Context())
			if err != nil {
				return err
			}

			if created == 0 {
				logger.Info("Chart of accounts already present, nothing seeded")
			} else {
				logger.Info("Default chart of accounts seeded", slog.Int("accounts", created))
			}
			return nil
		},
	}
}
