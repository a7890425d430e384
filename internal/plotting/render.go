// Package plotting draws spectral energy distributions on log-log axes.
package plotting

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/RMahshie/sedview/internal/sed"
	"github.com/RMahshie/sedview/pkg/models"
)

// ErrNothingToPlot is returned when an SED has no point that fits on a log axis
var ErrNothingToPlot = errors.New("SED has no positive points to plot")

// Options controls the rendered image
type Options struct {
	Format   string // png or svg
	WidthIn  float64
	HeightIn float64
}

// DefaultOptions returns a 6x4 inch PNG
func DefaultOptions() Options {
	return Options{Format: "png", WidthIn: 6, HeightIn: 4}
}

// Render draws s as wavelength against spectral flux density on log-log axes
func Render(s models.SED, opts Options) ([]byte, error) {
	if opts.Format != "png" && opts.Format != "svg" {
		return nil, fmt.Errorf("unsupported plot format %q", opts.Format)
	}
	if opts.WidthIn <= 0 || opts.HeightIn <= 0 {
		def := DefaultOptions()
		opts.WidthIn, opts.HeightIn = def.WidthIn, def.HeightIn
	}

	pts := make(plotter.XYs, 0, len(s.Points))
	for _, p := range s.Points {
		// Log axes cannot show zero or negative values
		if p.WavelengthNM <= 0 || p.FluxDensity <= 0 {
			log.Debug().Int("galaxy", s.GalaxyIndex).Str("band", p.Band).Float64("flux_density", p.FluxDensity).Msg("Leaving non-positive point off the plot")
			continue
		}
		pts = append(pts, plotter.XY{X: p.WavelengthNM, Y: p.FluxDensity})
	}
	if len(pts) == 0 {
		return nil, ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Galaxy %d  RA %s  Dec %s", s.GalaxyIndex, sed.RAToHMS(s.RA), sed.DecToDMS(s.Dec))
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Spectral flux density (uJy/nm)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build SED line: %w", err)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build SED scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, scatter)

	w, err := p.WriterTo(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s canvas: %w", opts.Format, err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}

	return buf.Bytes(), nil
}
