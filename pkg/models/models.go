package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status   string    `json:"status" example:"healthy" doc:"Service health status"`
		Version  string    `json:"version" example:"1.0.0" doc:"API version"`
		Galaxies int       `json:"galaxies" doc:"Number of rows in the loaded catalogue"`
		Time     time.Time `json:"time" doc:"Current server time"`
	}
}

// ListGalaxiesRequest represents a request for the catalogue shortlist
type ListGalaxiesRequest struct {
	MinFlux float64 `query:"min_flux" default:"-1" doc:"Every core band must exceed this flux; a negative value uses the configured limit"`
	Limit   int     `query:"limit" minimum:"0" maximum:"1000" doc:"Maximum galaxies to return; defaults to the configured maximum"`
}

// ListGalaxiesResponseBody is the body of the shortlist response
type ListGalaxiesResponseBody struct {
	Total    int             `json:"total" doc:"Number of rows in the catalogue"`
	MinFlux  float64         `json:"min_flux" doc:"Flux limit applied"`
	Galaxies []GalaxySummary `json:"galaxies" doc:"Galaxies with full core band coverage"`
}

// ListGalaxiesResponse represents the catalogue shortlist
type ListGalaxiesResponse struct {
	Body ListGalaxiesResponseBody
}

// GalaxySummary is a galaxy position without its fluxes
type GalaxySummary struct {
	Index  int     `json:"index" doc:"Catalogue index"`
	RA     float64 `json:"ra" doc:"Right ascension in degrees"`
	Dec    float64 `json:"dec" doc:"Declination in degrees"`
	RAHMS  string  `json:"ra_hms" doc:"Right ascension as hours, minutes, seconds"`
	DecDMS string  `json:"dec_dms" doc:"Declination as degrees, arcminutes, arcseconds"`
}

// GetGalaxyRequest represents a request for a single catalogue row
type GetGalaxyRequest struct {
	Index int `path:"index" doc:"Catalogue index of the galaxy"`
}

// GetGalaxyResponseBody is the body of the galaxy response
type GetGalaxyResponseBody struct {
	GalaxySummary
	Fluxes map[string]float64 `json:"fluxes" doc:"Raw flux values keyed by column; missing values are omitted"`
}

// GetGalaxyResponse represents a single catalogue row
type GetGalaxyResponse struct {
	Body GetGalaxyResponseBody
}

// GetSEDRequest represents a request for a galaxy's SED
type GetSEDRequest struct {
	Index int `path:"index" doc:"Catalogue index of the galaxy"`
}

// GetSEDResponse represents a galaxy's SED
type GetSEDResponse struct {
	Body *SED
}

// RenderPlotRequest represents a request to render a galaxy's SED
type RenderPlotRequest struct {
	Index int `path:"index" doc:"Catalogue index of the galaxy"`
	Body  struct {
		Format string `json:"format,omitempty" enum:"png,svg" doc:"Image format; defaults to the configured format"`
	} `required:"false"`
}

// PlotResponseBody is the body returned for a rendered plot
type PlotResponseBody struct {
	Plot        *PlotRecord `json:"plot" doc:"Stored plot metadata"`
	DownloadURL string      `json:"download_url" doc:"Pre-signed URL for the image"`
}

// RenderPlotResponse represents a freshly rendered plot
type RenderPlotResponse struct {
	Body PlotResponseBody
}

// GetPlotRequest represents a request for a stored plot
type GetPlotRequest struct {
	ID string `path:"id" doc:"Plot ID"`
}

// GetPlotResponse represents a stored plot
type GetPlotResponse struct {
	Body PlotResponseBody
}

// ListPlotsRequest represents a request for the plots rendered for a galaxy
type ListPlotsRequest struct {
	Index int `path:"index" doc:"Catalogue index of the galaxy"`
}

// ListPlotsResponse represents the plots rendered for a galaxy, newest first
type ListPlotsResponse struct {
	Body struct {
		GalaxyIndex int           `json:"galaxy_index" doc:"Catalogue index of the galaxy"`
		Plots       []*PlotRecord `json:"plots" doc:"Stored plot metadata, newest first"`
	}
}

// DeletePlotRequest represents a request to remove a stored plot
type DeletePlotRequest struct {
	ID string `path:"id" doc:"Plot ID"`
}
