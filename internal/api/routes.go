package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/sedview/internal/api/handlers"
	"github.com/RMahshie/sedview/internal/api/middleware"
	"github.com/RMahshie/sedview/internal/processing"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, svc processing.SEDService, defaults handlers.ShortlistDefaults, limiter *middleware.RateLimiter) {
	// Initialize handlers
	galaxyHandler := handlers.NewGalaxyHandler(svc, defaults)

	// Register galaxy routes
	huma.Register(api, huma.Operation{
		OperationID: "listGalaxies",
		Method:      http.MethodGet,
		Path:        "/api/galaxies",
		Summary:     "List galaxies",
		Description: "Returns galaxies with flux above a limit in every core band",
		Tags:        []string{"Galaxies"},
	}, galaxyHandler.ListGalaxies)

	huma.Register(api, huma.Operation{
		OperationID: "getGalaxy",
		Method:      http.MethodGet,
		Path:        "/api/galaxies/{index}",
		Summary:     "Get galaxy",
		Description: "Returns the catalogue row at an index with sexagesimal coordinates",
		Tags:        []string{"Galaxies"},
	}, galaxyHandler.GetGalaxy)

	huma.Register(api, huma.Operation{
		OperationID: "getSED",
		Method:      http.MethodGet,
		Path:        "/api/galaxies/{index}/sed",
		Summary:     "Get spectral energy distribution",
		Description: "Returns the galaxy's flux densities in microJansky per nanometre, sorted by wavelength",
		Tags:        []string{"Galaxies"},
	}, galaxyHandler.GetSED)

	// Register plot routes
	huma.Register(api, huma.Operation{
		OperationID:   "renderPlot",
		Method:        http.MethodPost,
		Path:          "/api/galaxies/{index}/plot",
		Summary:       "Render SED plot",
		Description:   "Renders a log-log SED plot, stores it and returns a download URL",
		Tags:          []string{"Plots"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   huma.Middlewares{limiter.Huma(api)},
	}, galaxyHandler.RenderPlot)

	huma.Register(api, huma.Operation{
		OperationID: "getPlot",
		Method:      http.MethodGet,
		Path:        "/api/plots/{id}",
		Summary:     "Get SED plot",
		Description: "Returns a stored plot with a fresh download URL",
		Tags:        []string{"Plots"},
	}, galaxyHandler.GetPlot)

	huma.Register(api, huma.Operation{
		OperationID: "listPlots",
		Method:      http.MethodGet,
		Path:        "/api/galaxies/{index}/plots",
		Summary:     "List SED plots",
		Description: "Returns the plots rendered for a galaxy, newest first",
		Tags:        []string{"Plots"},
	}, galaxyHandler.ListPlots)

	huma.Register(api, huma.Operation{
		OperationID:   "deletePlot",
		Method:        http.MethodDelete,
		Path:          "/api/plots/{id}",
		Summary:       "Delete SED plot",
		Description:   "Removes a stored plot image and its record",
		Tags:          []string{"Plots"},
		DefaultStatus: http.StatusNoContent,
	}, galaxyHandler.DeletePlot)
}
