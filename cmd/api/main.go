package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-catalog/internal/config"
	"library-catalog/pkg/logger"
)

func main() {
	// .env is optional; production uses real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Library catalog HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd())
	root.RunE = newServeCmd().RunE
	return root
}

// loadConfig reads configuration and initializes logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	return cfg, nil
}
