package sed

import (
	"errors"
	"fmt"

	"github.com/RMahshie/sedview/pkg/models"
)

// ErrIndexOutOfRange is returned when a galaxy index falls outside the catalogue
var ErrIndexOutOfRange = errors.New("galaxy index out of range")

// Catalogue is an ordered, read-only sequence of galaxy rows
type Catalogue []models.CatalogueRow

// Len returns the number of rows in the catalogue
func (c Catalogue) Len() int {
	return len(c)
}

// SelectGalaxy returns the row at index without modifying the catalogue
func SelectGalaxy(cat Catalogue, index int) (models.CatalogueRow, error) {
	if index < 0 || index >= len(cat) {
		return models.CatalogueRow{}, fmt.Errorf("%w: index %d, catalogue has %d rows", ErrIndexOutOfRange, index, len(cat))
	}
	return cat[index], nil
}

// coreBandKeys must all be above the flux limit for a row to be shortlisted
var coreBandKeys = []string{
	"u_flux", "g_flux", "r_flux", "z_flux", "J_flux", "K_flux",
	"F_MIPS_24", "F_PACS_100", "F_PACS_160", "F_SPIRE_250",
}

// RowIsValid reports whether a row has usable coverage from the optical to
// the far infrared. Channel 1 may come from either SWIRE or SERVS.
func RowIsValid(row models.CatalogueRow, lim float64) bool {
	for _, key := range coreBandKeys {
		if !above(row, key, lim) {
			return false
		}
	}
	return above(row, "ch1_swire_flux", lim) || above(row, ServsChannel1Key, lim)
}

func above(row models.CatalogueRow, key string, lim float64) bool {
	v, ok := row.Fluxes[key]
	// NaN compares false, so it never passes
	return ok && v > lim
}

// ShortList returns up to max valid rows in catalogue order. A max of zero or
// less means no cap.
func ShortList(cat Catalogue, lim float64, max int) []models.CatalogueRow {
	var out []models.CatalogueRow
	for _, row := range cat {
		if max > 0 && len(out) >= max {
			break
		}
		if RowIsValid(row, lim) {
			out = append(out, row)
		}
	}
	return out
}
