package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrator applies the embedded schema for one dialect.
type Migrator struct {
	provider *goose.Provider
	closeDB  func() error
}

// NewPostgresMigrator runs migrations over a database/sql handle borrowed
// from the pool. Closing it leaves the pool open.
func NewPostgresMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	m, err := newMigrator(goose.DialectPostgres, db, "migrations/postgres")
	if err != nil {
		db.Close()
		return nil, err
	}
	m.closeDB = db.Close
	return m, nil
}

// NewSQLiteMigrator runs migrations on db. The caller keeps ownership of db.
func NewSQLiteMigrator(db *sql.DB) (*Migrator, error) {
	return newMigrator(goose.DialectSQLite3, db, "migrations/sqlite")
}

func newMigrator(dialect goose.Dialect, db *sql.DB, dir string) (*Migrator, error) {
	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("open migrations %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}

	return &Migrator{provider: provider, closeDB: func() error { return nil }}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("duration", r.Duration).
			Msg("Migration applied")
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	log.Info().Int64("version", r.Source.Version).Msg("Migration rolled back")
	return nil
}

// MigrationState is one row of Status output.
type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate status: %w", err)
	}

	out := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationState{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

func (m *Migrator) Close() error {
	return m.closeDB()
}
