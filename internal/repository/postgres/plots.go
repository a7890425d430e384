package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RMahshie/sedview/internal/repository"
	"github.com/RMahshie/sedview/pkg/models"
)

// PostgresPlotRepository implements PlotRepository for PostgreSQL
type PostgresPlotRepository struct {
	db *sql.DB
}

// NewPostgresPlotRepository creates a new PostgreSQL plot repository
func NewPostgresPlotRepository(db *sql.DB) repository.PlotRepository {
	return &PostgresPlotRepository{db: db}
}

// Create inserts a new plot record
func (r *PostgresPlotRepository) Create(ctx context.Context, plot *models.PlotRecord) error {
	query := `
		INSERT INTO sed_plots (id, galaxy_index, ra, dec, point_count, format, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		plot.ID,
		plot.GalaxyIndex,
		plot.RA,
		plot.Dec,
		plot.PointCount,
		plot.Format,
		plot.StorageKey,
		plot.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert plot: %w", err)
	}

	return nil
}

// GetByID retrieves a plot record by ID
func (r *PostgresPlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlotRecord, error) {
	query := `
		SELECT id, galaxy_index, ra, dec, point_count, format, storage_key, created_at
		FROM sed_plots
		WHERE id = $1`

	var plot models.PlotRecord
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plot.ID,
		&plot.GalaxyIndex,
		&plot.RA,
		&plot.Dec,
		&plot.PointCount,
		&plot.Format,
		&plot.StorageKey,
		&plot.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plot %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &plot, nil
}

// ListByGalaxy retrieves the plots rendered for a galaxy, newest first
func (r *PostgresPlotRepository) ListByGalaxy(ctx context.Context, galaxyIndex int) ([]*models.PlotRecord, error) {
	query := `
		SELECT id, galaxy_index, ra, dec, point_count, format, storage_key, created_at
		FROM sed_plots
		WHERE galaxy_index = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, galaxyIndex)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []*models.PlotRecord
	for rows.Next() {
		var plot models.PlotRecord
		err := rows.Scan(
			&plot.ID,
			&plot.GalaxyIndex,
			&plot.RA,
			&plot.Dec,
			&plot.PointCount,
			&plot.Format,
			&plot.StorageKey,
			&plot.CreatedAt)
		if err != nil {
			return nil, err
		}
		plots = append(plots, &plot)
	}

	return plots, rows.Err()
}

// Delete removes a plot record
func (r *PostgresPlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sed_plots WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("plot %s: %w", id, repository.ErrNotFound)
	}

	return nil
}
