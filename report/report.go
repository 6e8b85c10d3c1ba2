// Package report combines low points and basins into the two puzzle answers
// and renders them as text, JSON or YAML.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbasin/basin"
	"github.com/katalvlaran/lvbasin/heightmap"
	"github.com/katalvlaran/lvbasin/internal/ctxlog"
)

// DefaultTop is how many of the largest basins are multiplied together.
const DefaultTop = 3

var (
	// ErrTooFewBasins indicates the grid has fewer basins than requested.
	ErrTooFewBasins = errors.New("report: not enough basins")
	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("report: unknown output format")
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options tunes Compute.
type Options struct {
	// Top is how many of the largest basins feed Product. Zero means DefaultTop.
	Top int
	// Fill options are passed to every basin flood fill.
	Fill []basin.Option
}

// Report holds both answers and the figures that produced them.
type Report struct {
	Rows       int               `json:"rows" yaml:"rows"`
	Cols       int               `json:"cols" yaml:"cols"`
	LowPoints  []heightmap.Coord `json:"low_points" yaml:"low_points"`
	RiskSum    int               `json:"risk_sum" yaml:"risk_sum"`
	Basins     []basin.Basin     `json:"basins" yaml:"basins"`
	Largest    []int             `json:"largest" yaml:"largest"`
	Product    int               `json:"product" yaml:"product"`
	Components int               `json:"components" yaml:"components"`
}

// Compute finds the low points of hm, sums their risk, sizes one basin per
// low point and multiplies the opts.Top largest sizes.
// Returns ErrTooFewBasins if there are fewer low points than opts.Top.
func Compute(ctx context.Context, hm *heightmap.Heightmap, opts Options) (*Report, error) {
	log := ctxlog.FromContext(ctx)
	top := opts.Top
	if top <= 0 {
		top = DefaultTop
	}

	lows := hm.LowPoints()
	rep := &Report{
		Rows:       hm.Rows(),
		Cols:       hm.Cols(),
		LowPoints:  lows,
		RiskSum:    hm.RiskSum(lows),
		Components: len(hm.Grid().ConnectedComponents()),
	}
	log.Debug("Low points located.", "rows", rep.Rows, "cols", rep.Cols, "low_points", len(lows), "risk_sum", rep.RiskSum)

	sizer := basin.NewSizer(hm.Grid(), opts.Fill...)
	basins, err := sizer.SizeAll(ctx, lows)
	if err != nil {
		return nil, fmt.Errorf("report: size basins: %w", err)
	}
	rep.Basins = basins
	log.Debug("Basins sized.", "basins", len(basins), "components", rep.Components)

	if len(basins) < top {
		return nil, fmt.Errorf("%w: found %d, need %d", ErrTooFewBasins, len(basins), top)
	}
	rep.Largest = basin.Largest(basins, top)
	rep.Product = basin.Product(rep.Largest)

	return rep, nil
}

// Write renders rep to w in the given format.
func Write(w io.Writer, rep *Report, format Format) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintf(w,
			"The sum of the risk levels of all low points on the heightmap is %d\n"+
				"If you multiply together the sizes of the %d largest basins you get %d\n",
			rep.RiskSum, len(rep.Largest), rep.Product)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
