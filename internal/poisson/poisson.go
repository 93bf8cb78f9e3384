package poisson

import (
	"image"
	"math"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// maxAttempts is how many candidates we throw around an active point
// before declaring it exhausted.
const maxAttempts = 30

// Sample returns a blue noise point set within bounds - every pair of
// returned points sits at least minDist apart. This is the classic
// dart-throwing-with-active-list scheme; we keep the min distance scan
// brute force since our point counts stay small.
// minDist must be at least 1 (an annulus of radius 0 never drains the
// active list) - callers are expected to have validated this up front.
// Points are returned in insertion order.
func Sample(rng *rand.Rand, bounds image.Rectangle, minDist int) []image.Point {
	if bounds.Empty() {
		return nil
	}

	seed := image.Pt(
		rng.Intn(bounds.Dx())+bounds.Min.X,
		rng.Intn(bounds.Dy())+bounds.Min.Y,
	)

	points := []image.Point{seed}
	active := []image.Point{seed}

	for len(active) > 0 {
		i := rng.Intn(len(active))
		centre := model2d.Coord{X: float64(active[i].X), Y: float64(active[i].Y)}

		found := false
		for k := 0; k < maxAttempts; k++ {
			angle := rng.Float64() * 2 * math.Pi
			radius := float64(minDist) + rng.Float64()*float64(minDist)

			candidate, ok := toLattice(centre.Add(model2d.Coord{
				X: radius * math.Cos(angle),
				Y: radius * math.Sin(angle),
			}), bounds)
			if !ok {
				continue
			}
			if tooClose(candidate, points, minDist) {
				continue
			}

			points = append(points, candidate)
			active = append(active, candidate)
			found = true
			break
		}

		if !found { // exhausted, it stays in the result set regardless
			essentials.UnorderedDelete(&active, i)
		}
	}

	return points
}

// Subset returns n of the given points chosen uniformly without
// replacement. If n meets or exceeds the input, all points come back.
func Subset(rng *rand.Rand, points []image.Point, n int) []image.Point {
	if n <= 0 {
		return []image.Point{}
	}
	if n >= len(points) {
		out := make([]image.Point, len(points))
		copy(out, points)
		return out
	}

	out := make([]image.Point, 0, n)
	for _, i := range rng.Perm(len(points))[:n] {
		out = append(out, points[i])
	}
	return out
}

// toLattice rounds a candidate onto integer coordinates.
// The bounds check happens in float space so wild candidates are
// rejected before int conversion can overflow.
func toLattice(c model2d.Coord, bounds image.Rectangle) (image.Point, bool) {
	x := math.Round(c.X)
	y := math.Round(c.Y)
	if x < float64(bounds.Min.X) || x >= float64(bounds.Max.X) {
		return image.Point{}, false
	}
	if y < float64(bounds.Min.Y) || y >= float64(bounds.Max.Y) {
		return image.Point{}, false
	}
	return image.Pt(int(x), int(y)), true
}

// tooClose returns if p sits within minDist of any accepted point
func tooClose(p image.Point, points []image.Point, minDist int) bool {
	pc := model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
	for _, q := range points {
		if pc.Dist(model2d.Coord{X: float64(q.X), Y: float64(q.Y)}) < float64(minDist) {
			return true
		}
	}
	return false
}
