package skyline

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange implies a configured range cannot support generation
	// (eg. a height range with fewer than two distinct values can never
	// satisfy the no-immediate-repeat rule).
	ErrInvalidRange = errors.New("range cannot support generation")

	// ErrOverflow implies configured parameters would push coordinate
	// arithmetic outside of what ints can represent.
	ErrOverflow = errors.New("parameters overflow integer arithmetic")
)

// maxDiscRadius keeps radius*radius within int64 when we rasterise discs.
const maxDiscRadius = math.MaxInt32

// Range is an inclusive range [Min, Max] of integers.
type Range struct {
	Min int
	Max int
}

// Distinct returns how many distinct values the range holds.
func (r Range) Distinct() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// GeneratorConfig holds configuration for a skyline Generator.
// Many settings have no sane zero value so it's probably safest to
// set them all ..
type GeneratorConfig struct {
	// Heights buildings may take (in rows). Requires at least two
	// distinct values so consecutive buildings never share a height.
	// A height of 0 is legal & yields an invisible "gap" building.
	Heights Range

	// Widths buildings may take (in columns). Min must be at least 1,
	// a width 0 building occupies no space at all.
	Widths Range

	// MaxWindows caps how many windows a single building receives.
	// 0 disables windows entirely.
	MaxWindows int

	// WindowSpacing is the min distance between window candidates
	// (blue noise). Must be at least 1.
	WindowSpacing int

	// Seed for the internal RNG. 0 means "pick one" (time based).
	Seed int64
}

// validate checks the config can actually drive an endless stream.
// All errors are caught here, before the first column is made.
func (c *GeneratorConfig) validate() error {
	if c.Heights.Min < 0 {
		return errors.Wrapf(ErrInvalidRange, "heights [%d,%d] must be non-negative", c.Heights.Min, c.Heights.Max)
	}
	if c.Heights.Distinct() < 2 {
		return errors.Wrapf(ErrInvalidRange, "heights [%d,%d] need at least 2 distinct values", c.Heights.Min, c.Heights.Max)
	}
	if c.Widths.Min < 1 || c.Widths.Distinct() < 1 {
		return errors.Wrapf(ErrInvalidRange, "widths [%d,%d] need at least 1 value >= 1", c.Widths.Min, c.Widths.Max)
	}
	if c.MaxWindows < 0 {
		return errors.Wrapf(ErrInvalidRange, "max windows %d must be non-negative", c.MaxWindows)
	}
	if c.WindowSpacing < 1 {
		return errors.Wrapf(ErrInvalidRange, "window spacing %d must be at least 1", c.WindowSpacing)
	}
	// candidates are thrown up to 2*spacing past the body rectangle
	if c.WindowSpacing > (math.MaxInt-c.Widths.Max)/2 || c.WindowSpacing > (math.MaxInt-c.Heights.Max)/2 {
		return errors.Wrapf(ErrOverflow, "window spacing %d overflows the sampling domain", c.WindowSpacing)
	}
	return nil
}

// SkyConfig holds configuration for the static sky decoration
// (stars & a moon) behind a skyline.
type SkyConfig struct {
	// Width & Height of the sky canvas in pixels, required
	Width  int
	Height int

	// Stars is how many stars to keep of those scattered.
	Stars int

	// StarSpacing is the min distance between stars (blue noise).
	// Must be at least 1.
	StarSpacing int

	// MoonRadius in pixels. 0 means no moon.
	MoonRadius int

	// MoonCentre of the moon disc. May sit partially off canvas,
	// off-canvas pixels are clipped from the baked map.
	MoonCentre image.Point

	// Seed for the internal RNG. 0 means "pick one" (time based).
	Seed int64
}

// validate checks the sky config, including the arithmetic preconditions
// of the disc rasteriser & star sampler.
func (c *SkyConfig) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(ErrInvalidRange, "canvas %dx%d has no area", c.Width, c.Height)
	}
	if c.Stars < 0 {
		return errors.Wrapf(ErrInvalidRange, "star count %d must be non-negative", c.Stars)
	}
	if c.StarSpacing < 1 {
		return errors.Wrapf(ErrInvalidRange, "star spacing %d must be at least 1", c.StarSpacing)
	}
	if c.MoonRadius < 0 {
		return errors.Wrapf(ErrInvalidRange, "moon radius %d must be non-negative", c.MoonRadius)
	}
	if c.MoonRadius > maxDiscRadius {
		return errors.Wrapf(ErrOverflow, "moon radius %d too large to rasterise", c.MoonRadius)
	}
	if c.MoonCentre.X > math.MaxInt-c.MoonRadius || c.MoonCentre.X < math.MinInt+c.MoonRadius {
		return errors.Wrapf(ErrOverflow, "moon centre x %d +- radius %d overflows", c.MoonCentre.X, c.MoonRadius)
	}
	if c.MoonCentre.Y > math.MaxInt-c.MoonRadius || c.MoonCentre.Y < math.MinInt+c.MoonRadius {
		return errors.Wrapf(ErrOverflow, "moon centre y %d +- radius %d overflows", c.MoonCentre.Y, c.MoonRadius)
	}
	if c.StarSpacing > (math.MaxInt-c.Width)/2 || c.StarSpacing > (math.MaxInt-c.Height)/2 {
		return errors.Wrapf(ErrOverflow, "star spacing %d overflows the sampling domain", c.StarSpacing)
	}
	return nil
}
