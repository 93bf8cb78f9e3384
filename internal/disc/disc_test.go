package disc

import (
	"image"
	"testing"
)

func TestPoints_RadiusThree(t *testing.T) {
	got := map[image.Point]bool{}
	for _, p := range Points(image.Pt(0, 0), 3) {
		got[p] = true
	}

	// brute force over a square comfortably larger than the disc
	for y := -5; y <= 5; y++ {
		for x := -5; x <= 5; x++ {
			inside := x*x+y*y < 9
			if inside && !got[image.Pt(x, y)] {
				t.Errorf("missing interior point (%d,%d)", x, y)
			}
			if !inside && got[image.Pt(x, y)] {
				t.Errorf("point (%d,%d) on or past the boundary was included", x, y)
			}
		}
	}
}

func TestPoints_OffsetCentre(t *testing.T) {
	centre := image.Pt(100, -40)

	origin := Points(image.Pt(0, 0), 4)
	shifted := Points(centre, 4)

	if len(origin) != len(shifted) {
		t.Fatalf("disc size changed with centre: %d vs %d", len(origin), len(shifted))
	}
	for i := range origin {
		if origin[i].Add(centre) != shifted[i] {
			t.Fatalf("point %d: want %v, got %v", i, origin[i].Add(centre), shifted[i])
		}
	}
}

func TestPoints_DegenerateRadii(t *testing.T) {
	if pts := Points(image.Pt(5, 5), 0); len(pts) != 0 {
		t.Errorf("radius 0 should yield no points, got %v", pts)
	}

	pts := Points(image.Pt(5, 5), 1)
	if len(pts) != 1 || pts[0] != image.Pt(5, 5) {
		t.Errorf("radius 1 should yield only the centre, got %v", pts)
	}
}
