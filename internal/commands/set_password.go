package commands

import (
	"fmt"

	"github.com/SscSPs/hesabdar/internal/core/services"
	"github.com/SscSPs/hesabdar/internal/repositories/database/pgsql"
	"github.com/SscSPs/hesabdar/pkg/database"
	"github.com/spf13/cobra"
)

func newSetPasswordCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "set-password <password>",
		Short: "Reset the operator password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := bootstrap()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if username == "" {
				username = cfg.AdminUsername
			}

			dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize database pool: %w", err)
			}
			defer dbPool.Close()

			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
			if err := container.Auth.SetPassword(cmd.Context(), username, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "operator username (defaults to ADMIN_USERNAME)")

	return cmd
}
