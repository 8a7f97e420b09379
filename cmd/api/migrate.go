package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-catalog/internal/infrastructure/database"
	"library-catalog/pkg/container"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(ctx context.Context, m *database.Migrator) error {
				return m.Up(ctx)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE: withMigrator(func(ctx context.Context, m *database.Migrator) error {
				return m.Down(ctx)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: withMigrator(func(ctx context.Context, m *database.Migrator) error {
				states, err := m.Status(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tAPPLIED\tFILE")
				for _, s := range states {
					fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
				}
				return w.Flush()
			}),
		},
	)
	return cmd
}

// withMigrator builds the container and runs fn against its migrator.
func withMigrator(fn func(context.Context, *database.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := container.NewContainer(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Cleanup()

		m, err := app.Migrator()
		if err != nil {
			return err
		}
		defer m.Close()

		return fn(ctx, m)
	}
}

func migrateUp(ctx context.Context, app *container.Container) error {
	m, err := app.Migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.Info().Msg("Database schema is up to date")
	return nil
}
