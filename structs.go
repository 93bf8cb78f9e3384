package skyline

import (
	"image"
)

// Pixel is a single cell within a column of the skyline.
type Pixel uint8

const (
	// Background is the flat body of a building.
	Background Pixel = iota

	// Border is a building outline (roof line or outer edge).
	Border

	// Window is a lit window within a building body.
	Window
)

// String returns a human readable name for the pixel type.
func (p Pixel) String() string {
	switch p {
	case Border:
		return "border"
	case Window:
		return "window"
	}
	return "background"
}

// Column is one vertical strip of the skyline, one unit wide, ordered
// top (roof) to bottom (street). A zero length column is open sky,
// buildings of height 0 still occupy horizontal space this way.
type Column []Pixel

// Height of the column in rows.
func (c Column) Height() int {
	return len(c)
}

// Building is the silhouette of a single generated structure.
// Windows sit strictly inside the body - never on the roof line or
// the outer edge columns - and no two windows share a column.
type Building struct {
	// Height in rows. 0 makes the building an invisible gap.
	Height int

	// Width in columns.
	Width int

	// Windows positions within the building, x is the column index,
	// y the row below the roof.
	Windows []image.Point `json:",omitempty"`
}

// Star pairs a sky location with a brightness for the renderer.
type Star struct {
	At         image.Point
	Brightness uint8
}
