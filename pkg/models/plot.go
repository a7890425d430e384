package models

import "time"

// PlotRecord describes a rendered SED plot stored in object storage
type PlotRecord struct {
	ID          string    `json:"id" doc:"Plot unique identifier"`
	GalaxyIndex int       `json:"galaxy_index" doc:"Catalogue index of the plotted galaxy"`
	RA          float64   `json:"ra" doc:"Right ascension in degrees"`
	Dec         float64   `json:"dec" doc:"Declination in degrees"`
	PointCount  int       `json:"point_count" doc:"Number of SED points in the plot"`
	Format      string    `json:"format" enum:"png,svg" doc:"Image format"`
	StorageKey  string    `json:"storage_key" doc:"Object storage key of the image"`
	CreatedAt   time.Time `json:"created_at" doc:"When the plot was rendered"`
}
