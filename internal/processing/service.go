package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sedview/internal/plotting"
	"github.com/RMahshie/sedview/internal/repository"
	"github.com/RMahshie/sedview/internal/sed"
	"github.com/RMahshie/sedview/internal/storage"
	"github.com/RMahshie/sedview/pkg/models"
)

// SEDService answers galaxy, SED and plot queries against a loaded catalogue
type SEDService interface {
	CatalogueSize() int
	Galaxy(index int) (models.CatalogueRow, error)
	SED(index int) (models.SED, error)
	Shortlist(lim float64, max int) []models.CatalogueRow
	RenderPlot(ctx context.Context, index int, format string) (*models.PlotRecord, string, error)
	Plot(ctx context.Context, id uuid.UUID) (*models.PlotRecord, string, error)
	Plots(ctx context.Context, index int) ([]*models.PlotRecord, error)
	DeletePlot(ctx context.Context, id uuid.UUID) error
}

type sedService struct {
	catalogue  sed.Catalogue
	bands      []models.BandDescriptor
	s3         storage.S3Service
	repository repository.PlotRepository
	plotOpts   plotting.Options
}

// NewSEDService creates a service over an already loaded catalogue
func NewSEDService(cat sed.Catalogue, s3Service storage.S3Service, repo repository.PlotRepository, plotOpts plotting.Options) SEDService {
	return &sedService{
		catalogue:  cat,
		bands:      sed.Bands(),
		s3:         s3Service,
		repository: repo,
		plotOpts:   plotOpts,
	}
}

func (s *sedService) CatalogueSize() int {
	return s.catalogue.Len()
}

func (s *sedService) Galaxy(index int) (models.CatalogueRow, error) {
	return sed.SelectGalaxy(s.catalogue, index)
}

func (s *sedService) SED(index int) (models.SED, error) {
	row, err := sed.SelectGalaxy(s.catalogue, index)
	if err != nil {
		return models.SED{}, err
	}
	return sed.BuildSED(row, s.bands), nil
}

func (s *sedService) Shortlist(lim float64, max int) []models.CatalogueRow {
	return sed.ShortList(s.catalogue, lim, max)
}

// RenderPlot draws the galaxy's SED, stores the image and records it.
// It returns the record and a download URL for the image.
func (s *sedService) RenderPlot(ctx context.Context, index int, format string) (*models.PlotRecord, string, error) {
	// Step 1: Build the SED
	spectrum, err := s.SED(index)
	if err != nil {
		return nil, "", err
	}

	// Step 2: Render
	opts := s.plotOpts
	if format != "" {
		opts.Format = format
	}
	img, err := plotting.Render(spectrum, opts)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render galaxy %d: %w", index, err)
	}

	// Step 3: Upload
	plotID := uuid.New()
	key := fmt.Sprintf("plots/%d/%s.%s", index, plotID, opts.Format)
	if err := s.s3.UploadFile(ctx, key, img, storage.ContentTypeFor(opts.Format)); err != nil {
		return nil, "", err
	}
	log.Info().Int("galaxy", index).Str("key", key).Int("bytes", len(img)).Msg("SED plot uploaded")

	// Step 4: Record
	record := &models.PlotRecord{
		ID:          plotID.String(),
		GalaxyIndex: index,
		RA:          spectrum.RA,
		Dec:         spectrum.Dec,
		PointCount:  len(spectrum.Points),
		Format:      opts.Format,
		StorageKey:  key,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repository.Create(ctx, record); err != nil {
		// Don't leave an orphaned image behind
		if delErr := s.s3.DeleteFile(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("Failed to remove orphaned plot")
		}
		return nil, "", err
	}

	url, err := s.s3.GenerateDownloadURL(ctx, key)
	if err != nil {
		// A record nobody can download is removed along with its image
		s.discard(ctx, plotID, key)
		return nil, "", err
	}

	return record, url, nil
}

func (s *sedService) discard(ctx context.Context, id uuid.UUID, key string) {
	if err := s.repository.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("plotID", id.String()).Msg("Failed to remove plot record")
	}
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to remove orphaned plot")
	}
}

// Plot returns a stored plot record with a fresh download URL
func (s *sedService) Plot(ctx context.Context, id uuid.UUID) (*models.PlotRecord, string, error) {
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	url, err := s.s3.GenerateDownloadURL(ctx, record.StorageKey)
	if err != nil {
		return nil, "", err
	}

	return record, url, nil
}

// Plots lists the plots rendered for a galaxy, newest first
func (s *sedService) Plots(ctx context.Context, index int) ([]*models.PlotRecord, error) {
	if _, err := sed.SelectGalaxy(s.catalogue, index); err != nil {
		return nil, err
	}

	plots, err := s.repository.ListByGalaxy(ctx, index)
	if err != nil {
		return nil, fmt.Errorf("failed to list plots for galaxy %d: %w", index, err)
	}
	if plots == nil {
		plots = []*models.PlotRecord{}
	}
	return plots, nil
}

// DeletePlot removes a stored image and then its record
func (s *sedService) DeletePlot(ctx context.Context, id uuid.UUID) error {
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Keep the record if the image survives so the delete can be retried
	if err := s.s3.DeleteFile(ctx, record.StorageKey); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("plotID", record.ID).Int("galaxy", record.GalaxyIndex).Msg("SED plot deleted")
	return nil
}
