package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/sedview/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// PlotRepository defines the interface for rendered plot metadata
type PlotRepository interface {
	Create(ctx context.Context, plot *models.PlotRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PlotRecord, error)
	ListByGalaxy(ctx context.Context, galaxyIndex int) ([]*models.PlotRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
