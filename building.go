package skyline

import (
	"image"
	"math/rand"

	"github.com/mbikovitsky/skyline/internal/poisson"
	"github.com/mbikovitsky/skyline/internal/sample"
)

// Columns renders the building into its columns, left to right.
// This is a pure function of the building - same building, same columns.
func (b *Building) Columns() []Column {
	cols := make([]Column, b.Width)
	for i := range cols {
		cols[i] = b.column(i)
	}
	return cols
}

// column renders the i-th column of the building.
// Column length is exactly Height (or 0), never resized afterwards.
func (b *Building) column(i int) Column {
	if b.Height == 0 {
		return Column{}
	}

	col := make(Column, b.Height)

	if i == 0 || i == b.Width-1 { // outer edges are solid border
		for j := range col {
			col[j] = Border
		}
		return col
	}

	col[0] = Border // roof line
	for _, w := range b.Windows {
		if w.X == i {
			col[w.Y] = Window
		}
	}
	return col
}

// buildingGenerator emits an endless series of random buildings --
// essentially drawing a height (never repeating the last one), a width
// & scattering some windows about the body.
type buildingGenerator struct {
	rng     *rand.Rand
	heights *sample.NoRepeat

	widths     Range
	maxWindows int
	spacing    int
}

// newBuildingGenerator preps a generator from validated config.
func newBuildingGenerator(rng *rand.Rand, cfg *GeneratorConfig) *buildingGenerator {
	return &buildingGenerator{
		rng:        rng,
		heights:    sample.NewNoRepeat(cfg.Heights.Min, cfg.Heights.Max),
		widths:     cfg.Widths,
		maxWindows: cfg.MaxWindows,
		spacing:    cfg.WindowSpacing,
	}
}

// Next returns a fresh building.
func (g *buildingGenerator) Next() *Building {
	b := &Building{
		Height: g.heights.Next(g.rng),
		Width:  sample.Uniform(g.rng, g.widths.Min, g.widths.Max),
	}
	b.Windows = g.windows(b)
	return b
}

// windows scatters window positions within the building body.
// Candidates are blue noise over the body inset 2 columns either side
// & 3 rows vertically, then a random subset capped at maxWindows.
// Buildings too small for the inset silently get no windows.
func (g *buildingGenerator) windows(b *Building) []image.Point {
	if g.maxWindows < 1 || b.Width < 5 || b.Height < 4 {
		return nil
	}

	body := image.Rect(0, 0, b.Width-4, b.Height-3)
	chosen := poisson.Subset(g.rng, poisson.Sample(g.rng, body, g.spacing), g.maxWindows)

	taken := map[int]bool{}
	windows := []image.Point{}
	for _, p := range chosen {
		if taken[p.X] { // at most one window per column
			continue
		}
		taken[p.X] = true
		windows = append(windows, p.Add(image.Pt(2, 2)))
	}
	return windows
}
