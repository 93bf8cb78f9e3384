package disc

import (
	"image"
)

// Points returns every integer lattice point strictly inside the
// circle of the given radius about centre, ie. all (x,y) with
// (x-cx)^2 + (y-cy)^2 < radius^2. Boundary points are excluded.
// Enumeration is row-major over the bounding square.
//
// Callers must ensure radius is non-negative, centre +- radius stays
// within int & radius^2 fits an int64 (see skyline.SkyConfig).
func Points(centre image.Point, radius int) []image.Point {
	pts := []image.Point{}
	rr := int64(radius) * int64(radius)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if int64(dx)*int64(dx)+int64(dy)*int64(dy) < rr {
				pts = append(pts, image.Pt(centre.X+dx, centre.Y+dy))
			}
		}
	}

	return pts
}
