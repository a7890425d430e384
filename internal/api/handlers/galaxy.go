package handlers

import (
	"context"
	"errors"
	"math"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sedview/internal/plotting"
	"github.com/RMahshie/sedview/internal/processing"
	"github.com/RMahshie/sedview/internal/repository"
	"github.com/RMahshie/sedview/internal/sed"
	"github.com/RMahshie/sedview/pkg/models"
)

// ShortlistDefaults apply when a list request leaves min_flux or limit unset.
// An unset min_flux arrives as -1.
type ShortlistDefaults struct {
	MinFlux float64
	Max     int
}

// GalaxyHandler handles galaxy, SED and plot HTTP requests
type GalaxyHandler struct {
	svc      processing.SEDService
	defaults ShortlistDefaults
}

// NewGalaxyHandler creates a new galaxy handler
func NewGalaxyHandler(svc processing.SEDService, defaults ShortlistDefaults) *GalaxyHandler {
	return &GalaxyHandler{
		svc:      svc,
		defaults: defaults,
	}
}

// ListGalaxies returns the galaxies with full core band coverage
func (h *GalaxyHandler) ListGalaxies(ctx context.Context, req *models.ListGalaxiesRequest) (*models.ListGalaxiesResponse, error) {
	// Zero is a valid limit; only a negative one falls back to the default
	minFlux := req.MinFlux
	if minFlux < 0 {
		minFlux = h.defaults.MinFlux
	}
	limit := req.Limit
	if limit == 0 {
		limit = h.defaults.Max
	}

	rows := h.svc.Shortlist(minFlux, limit)
	galaxies := make([]models.GalaxySummary, 0, len(rows))
	for _, row := range rows {
		galaxies = append(galaxies, summarize(row))
	}

	log.Info().Float64("minFlux", minFlux).Int("limit", limit).Int("matched", len(galaxies)).Msg("Galaxy shortlist built")
	return &models.ListGalaxiesResponse{
		Body: models.ListGalaxiesResponseBody{
			Total:    h.svc.CatalogueSize(),
			MinFlux:  minFlux,
			Galaxies: galaxies,
		},
	}, nil
}

// GetGalaxy returns a single catalogue row
func (h *GalaxyHandler) GetGalaxy(ctx context.Context, req *models.GetGalaxyRequest) (*models.GetGalaxyResponse, error) {
	row, err := h.svc.Galaxy(req.Index)
	if err != nil {
		return nil, toHTTPError(err)
	}

	// JSON cannot carry NaN or Inf
	fluxes := make(map[string]float64, len(row.Fluxes))
	for k, v := range row.Fluxes {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			fluxes[k] = v
		}
	}

	return &models.GetGalaxyResponse{
		Body: models.GetGalaxyResponseBody{
			GalaxySummary: summarize(row),
			Fluxes:        fluxes,
		},
	}, nil
}

// GetSED returns the spectral energy distribution of a galaxy
func (h *GalaxyHandler) GetSED(ctx context.Context, req *models.GetSEDRequest) (*models.GetSEDResponse, error) {
	spectrum, err := h.svc.SED(req.Index)
	if err != nil {
		return nil, toHTTPError(err)
	}

	log.Info().Int("galaxy", req.Index).Int("points", len(spectrum.Points)).Msg("SED assembled")
	return &models.GetSEDResponse{Body: &spectrum}, nil
}

// RenderPlot renders and stores a log-log plot of a galaxy's SED
func (h *GalaxyHandler) RenderPlot(ctx context.Context, req *models.RenderPlotRequest) (*models.RenderPlotResponse, error) {
	log.Info().Int("galaxy", req.Index).Str("format", req.Body.Format).Msg("Plot render request received")

	record, url, err := h.svc.RenderPlot(ctx, req.Index, req.Body.Format)
	if err != nil {
		return nil, toHTTPError(err)
	}

	log.Info().Str("plotID", record.ID).Int("galaxy", record.GalaxyIndex).Msg("Plot rendered successfully")
	return &models.RenderPlotResponse{
		Body: models.PlotResponseBody{Plot: record, DownloadURL: url},
	}, nil
}

// GetPlot returns a stored plot and a fresh download URL
func (h *GalaxyHandler) GetPlot(ctx context.Context, req *models.GetPlotRequest) (*models.GetPlotResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid plot ID", err)
	}

	record, url, err := h.svc.Plot(ctx, id)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &models.GetPlotResponse{
		Body: models.PlotResponseBody{Plot: record, DownloadURL: url},
	}, nil
}

// ListPlots returns the plots rendered for a galaxy
func (h *GalaxyHandler) ListPlots(ctx context.Context, req *models.ListPlotsRequest) (*models.ListPlotsResponse, error) {
	plots, err := h.svc.Plots(ctx, req.Index)
	if err != nil {
		return nil, toHTTPError(err)
	}

	resp := &models.ListPlotsResponse{}
	resp.Body.GalaxyIndex = req.Index
	resp.Body.Plots = plots
	return resp, nil
}

// DeletePlot removes a stored plot and its image
func (h *GalaxyHandler) DeletePlot(ctx context.Context, req *models.DeletePlotRequest) (*struct{}, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid plot ID", err)
	}

	if err := h.svc.DeletePlot(ctx, id); err != nil {
		return nil, toHTTPError(err)
	}

	return nil, nil
}

func summarize(row models.CatalogueRow) models.GalaxySummary {
	return models.GalaxySummary{
		Index:  row.Index,
		RA:     row.RA,
		Dec:    row.Dec,
		RAHMS:  sed.RAToHMS(row.RA).String(),
		DecDMS: sed.DecToDMS(row.Dec).String(),
	}
}

// toHTTPError maps service errors to user-facing API errors
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, sed.ErrIndexOutOfRange):
		return huma.Error404NotFound("Galaxy index out of range. Please choose another galaxy.", err)
	case errors.Is(err, repository.ErrNotFound):
		return huma.Error404NotFound("Plot not found", err)
	case errors.Is(err, plotting.ErrNothingToPlot):
		return huma.Error422UnprocessableEntity("Galaxy has no measured fluxes to plot", err)
	default:
		log.Error().Err(err).Msg("Request failed")
		return huma.Error500InternalServerError("Request failed. Please try again.", err)
	}
}
