package commands

import (
	"fmt"

	"github.com/SscSPs/hesabdar/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or revert database migrations",
		Long:      "Applies every pending migration (up, the default) or reverts the most recent one (down).",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateUp
			if len(args) == 1 {
				direction = database.MigrateDirection(args[0])
			}

			logger, cfg, err := bootstrap()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
		},
	}
	return cmd
}
