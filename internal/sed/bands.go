package sed

import "github.com/RMahshie/sedview/pkg/models"

// bandTable is the photometric band reference for the catalogue, ordered by wavelength
var bandTable = []models.BandDescriptor{
	{Name: "u", TableKey: "u_flux", Unit: models.MicroJansky, WavelengthNM: 365},
	{Name: "g", TableKey: "g_flux", Unit: models.MicroJansky, WavelengthNM: 475},
	{Name: "r", TableKey: "r_flux", Unit: models.MicroJansky, WavelengthNM: 658},
	{Name: "i", TableKey: "i_rcs_flux", Unit: models.MicroJansky, WavelengthNM: 806},
	{Name: "z", TableKey: "z_flux", Unit: models.MicroJansky, WavelengthNM: 900},
	{Name: "J", TableKey: "J_flux", Unit: models.MicroJansky, WavelengthNM: 1240},
	{Name: "K", TableKey: "K_flux", Unit: models.MicroJansky, WavelengthNM: 2190},
	{Name: "SWIRE 1", TableKey: "ch1_swire_flux", Unit: models.MicroJansky, WavelengthNM: 3600},
	{Name: "SWIRE 2", TableKey: "ch2_swire_flux", Unit: models.MicroJansky, WavelengthNM: 4500},
	{Name: "SWIRE 3", TableKey: "ch3_swire_flux", Unit: models.MicroJansky, WavelengthNM: 5800},
	{Name: "SWIRE 4", TableKey: "ch4_swire_flux", Unit: models.MicroJansky, WavelengthNM: 8000},
	{Name: "MIPS", TableKey: "F_MIPS_24", Unit: models.MicroJansky, WavelengthNM: 24000},
	{Name: "PACS 1", TableKey: "F_PACS_100", Unit: models.MilliJansky, WavelengthNM: 100000},
	{Name: "PACS 2", TableKey: "F_PACS_160", Unit: models.MilliJansky, WavelengthNM: 160000},
	{Name: "SPIRE 1", TableKey: "F_SPIRE_250", Unit: models.MilliJansky, WavelengthNM: 250000},
	{Name: "SPIRE 2", TableKey: "F_SPIRE_350", Unit: models.MilliJansky, WavelengthNM: 350000},
	{Name: "SPIRE 3", TableKey: "F_SPIRE_500", Unit: models.MilliJansky, WavelengthNM: 500000},
}

// ServsChannel1Key is the SERVS IRAC channel 1 column, accepted in place of SWIRE 1 when shortlisting
const ServsChannel1Key = "ch1_servs_flux"

// Bands returns a copy of the band reference table
func Bands() []models.BandDescriptor {
	out := make([]models.BandDescriptor, len(bandTable))
	copy(out, bandTable)
	return out
}

// BandKeys returns the catalogue column keys of every band, in table order
func BandKeys() []string {
	keys := make([]string, len(bandTable))
	for i, b := range bandTable {
		keys[i] = b.TableKey
	}
	return keys
}
