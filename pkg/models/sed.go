package models

import (
	"fmt"
	"math"
)

// FluxUnit is the unit a catalogue column reports its flux in
type FluxUnit string

const (
	MicroJansky FluxUnit = "uJy"
	MilliJansky FluxUnit = "mJy"
)

// Factor returns the multiplier that converts a value in this unit to microJansky
func (u FluxUnit) Factor() float64 {
	switch u {
	case MilliJansky:
		return 1000
	default:
		return 1
	}
}

// BandDescriptor describes one photometric band of the catalogue
type BandDescriptor struct {
	Name         string   `json:"name" doc:"Band name"`
	TableKey     string   `json:"table_key" doc:"Catalogue column holding the band flux"`
	Unit         FluxUnit `json:"unit" enum:"uJy,mJy" doc:"Unit of the catalogue column"`
	WavelengthNM float64  `json:"wavelength_nm" doc:"Effective wavelength in nanometres"`
}

// CatalogueRow holds one galaxy's measurements
type CatalogueRow struct {
	Index  int                `json:"index" doc:"Position of the row in the catalogue"`
	RA     float64            `json:"ra" doc:"Right ascension in degrees"`
	Dec    float64            `json:"dec" doc:"Declination in degrees"`
	Fluxes map[string]float64 `json:"fluxes" doc:"Raw flux values keyed by column name"`
}

// SEDPoint is a single sample of a spectral energy distribution
type SEDPoint struct {
	Band         string  `json:"band" doc:"Band the point was measured in"`
	WavelengthNM float64 `json:"wavelength_nm" doc:"Wavelength in nanometres"`
	FluxMicroJy  float64 `json:"flux_ujy" doc:"Flux normalized to microJansky"`
	FluxDensity  float64 `json:"flux_density" doc:"Spectral flux density in uJy/nm"`
}

// SED is a galaxy's spectral energy distribution, ordered by wavelength
type SED struct {
	GalaxyIndex int        `json:"galaxy_index" doc:"Catalogue index of the galaxy"`
	RA          float64    `json:"ra" doc:"Right ascension in degrees"`
	Dec         float64    `json:"dec" doc:"Declination in degrees"`
	Points      []SEDPoint `json:"points" doc:"SED points sorted by wavelength"`
}

// Sexagesimal is an angle split into whole units, minutes and seconds.
// Unit is "h" for right ascension and "d" for declination.
type Sexagesimal struct {
	Sign    int     `json:"sign" enum:"-1,1" doc:"Sign of the angle"`
	Whole   int     `json:"whole" doc:"Hours or degrees"`
	Minutes int     `json:"minutes" doc:"Minutes"`
	Seconds float64 `json:"seconds" doc:"Seconds"`
	Unit    string  `json:"unit" enum:"h,d" doc:"h for hours, d for degrees"`
}

func (s Sexagesimal) String() string {
	if s.Unit == "h" {
		whole, minutes, seconds := s.rounded(2)
		return fmt.Sprintf("%02dh%02dm%05.2fs", whole, minutes, seconds)
	}
	sign := "+"
	if s.Sign < 0 {
		sign = "-"
	}
	whole, minutes, seconds := s.rounded(1)
	return fmt.Sprintf("%s%02dd%02dm%04.1fs", sign, whole, minutes, seconds)
}

// rounded rounds seconds to the given number of decimals and carries a
// resulting 60 into minutes and whole units. Hours wrap at 24.
func (s Sexagesimal) rounded(decimals int) (int, int, float64) {
	scale := math.Pow(10, float64(decimals))
	whole, minutes := s.Whole, s.Minutes
	seconds := math.Round(s.Seconds*scale) / scale
	if seconds >= 60 {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes = 0
		whole++
	}
	if s.Unit == "h" && whole >= 24 {
		whole -= 24
	}
	return whole, minutes, seconds
}
