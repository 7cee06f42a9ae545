package commands

import (
	"log/slog"
	"os"

	"github.com/SscSPs/hesabdar/internal/platform/config"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hesabdar_backend",
		Short: "Double-entry bookkeeping ledger with Persian voice and receipt input",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newSetPasswordCommand(),
	)

	return rootCmd
}

// bootstrap builds the JSON logger and loads configuration shared by every subcommand.
func bootstrap() (*slog.Logger, *config.Config, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return logger, cfg, nil
}
