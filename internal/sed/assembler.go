package sed

import (
	"math"
	"sort"

	"github.com/RMahshie/sedview/pkg/models"
)

// MissingSentinel is the placeholder the catalogue writes for an unmeasured flux
const MissingSentinel = -99.0

// IsMissing reports whether a raw flux value stands for "no measurement"
func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v == MissingSentinel
}

// BuildSED assembles the spectral energy distribution of a single row.
//
// Bands whose flux is absent or missing, or that overflows when converted,
// are skipped. Every other flux is
// converted to microJansky and divided by the band wavelength. The points are
// returned sorted by wavelength regardless of the order of bands.
func BuildSED(row models.CatalogueRow, bands []models.BandDescriptor) models.SED {
	points := make([]models.SEDPoint, 0, len(bands))
	for _, band := range bands {
		raw, ok := row.Fluxes[band.TableKey]
		if !ok || IsMissing(raw) {
			continue
		}
		flux := raw * band.Unit.Factor()
		density := flux / band.WavelengthNM
		// Huge mJy values overflow once scaled to microJansky
		if math.IsInf(flux, 0) || math.IsInf(density, 0) {
			continue
		}
		points = append(points, models.SEDPoint{
			Band:         band.Name,
			WavelengthNM: band.WavelengthNM,
			FluxMicroJy:  flux,
			FluxDensity:  density,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].WavelengthNM < points[j].WavelengthNM
	})

	return models.SED{
		GalaxyIndex: row.Index,
		RA:          row.RA,
		Dec:         row.Dec,
		Points:      points,
	}
}
