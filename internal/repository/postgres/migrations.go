package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// migrations are applied in order; each runs once and is recorded in schema_migrations
var migrations = []struct {
	version string
	sql     string
}{
	{
		version: "001_create_sed_plots",
		sql: `
		CREATE TABLE IF NOT EXISTS sed_plots (
			id           UUID PRIMARY KEY,
			galaxy_index INTEGER NOT NULL,
			ra           DOUBLE PRECISION NOT NULL,
			dec          DOUBLE PRECISION NOT NULL,
			point_count  INTEGER NOT NULL,
			format       VARCHAR(8) NOT NULL,
			storage_key  TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		version: "002_index_sed_plots_galaxy",
		sql:     `CREATE INDEX IF NOT EXISTS idx_sed_plots_galaxy ON sed_plots (galaxy_index, created_at DESC)`,
	},
}

// Migrate brings the schema up to date
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := applyMigration(ctx, db, m.version, m.sql); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Info().Int("count", len(migrations)).Msg("Database migrations up to date")
	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, version, stmt string) error {
	var exists bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		log.Debug().Str("migration", version).Msg("Migration already applied, skipping")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return err
	}

	log.Info().Str("migration", version).Msg("Applied migration")
	return tx.Commit()
}
