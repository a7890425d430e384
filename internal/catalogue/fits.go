package catalogue

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/astrogo/fitsio"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sedview/internal/sed"
	"github.com/RMahshie/sedview/pkg/models"
)

const (
	raColumn  = "RA"
	decColumn = "DEC"
)

// Load fetches the catalogue from source and decodes it
func Load(ctx context.Context, f Fetcher, source string) (sed.Catalogue, error) {
	data, err := f.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	cat, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	log.Info().Str("source", source).Int("rows", cat.Len()).Msg("Catalogue loaded")
	return cat, nil
}

// Decode reads the binary table in the first extension of a FITS file
func Decode(r io.Reader) (sed.Catalogue, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open FITS file: %w", err)
	}
	defer f.Close()

	hdus := f.HDUs()
	if len(hdus) < 2 {
		return nil, fmt.Errorf("FITS file has no table extension")
	}
	table, ok := hdus[1].(*fitsio.Table)
	if !ok {
		return nil, fmt.Errorf("FITS extension 1 is not a table")
	}

	rows, err := table.Read(0, table.NumRows())
	if err != nil {
		return nil, fmt.Errorf("failed to read FITS table: %w", err)
	}
	defer rows.Close()

	wanted := append(sed.BandKeys(), sed.ServsChannel1Key)

	cat := make(sed.Catalogue, 0, table.NumRows())
	for rows.Next() {
		// An empty map is filled with every column of the row
		cells := make(map[string]interface{})
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(cat), err)
		}

		row, err := rowFromCells(len(cat), cells, wanted)
		if err != nil {
			return nil, err
		}
		cat = append(cat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate FITS table: %w", err)
	}

	return cat, nil
}

// rowFromCells builds a catalogue row from decoded table cells. RA and DEC
// must be present; absent flux columns are left out of the row.
func rowFromCells(index int, cells map[string]interface{}, fluxKeys []string) (models.CatalogueRow, error) {
	row := models.CatalogueRow{Index: index, Fluxes: make(map[string]float64, len(fluxKeys))}

	var ok bool
	if row.RA, ok = cellFloat(cells[raColumn]); !ok {
		return row, fmt.Errorf("row %d: column %s missing or not numeric", index, raColumn)
	}
	if row.Dec, ok = cellFloat(cells[decColumn]); !ok {
		return row, fmt.Errorf("row %d: column %s missing or not numeric", index, decColumn)
	}

	for _, key := range fluxKeys {
		if v, ok := cellFloat(cells[key]); ok {
			row.Fluxes[key] = v
		}
	}
	return row, nil
}

// cellFloat widens a scanned cell, or a pointer to one, to float64
func cellFloat(cell interface{}) (float64, bool) {
	if cell == nil {
		return 0, false
	}
	v := reflect.Indirect(reflect.ValueOf(cell))
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}
