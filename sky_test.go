package skyline

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func testSkyConfig(seed int64) *SkyConfig {
	return &SkyConfig{
		Width:       100,
		Height:      80,
		Stars:       10,
		StarSpacing: 5,
		MoonRadius:  6,
		MoonCentre:  image.Pt(70, 15),
		Seed:        seed,
	}
}

func TestNewSky_Stars(t *testing.T) {
	cfg := testSkyConfig(30)

	sky, err := NewSky(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// a 100x80 canvas at spacing 5 yields far more than 10 candidates
	if len(sky.Stars) != cfg.Stars {
		t.Fatalf("kept %d stars, want %d", len(sky.Stars), cfg.Stars)
	}

	canvas := image.Rect(0, 0, cfg.Width, cfg.Height)
	for i, s := range sky.Stars {
		if !s.At.In(canvas) {
			t.Errorf("star %d at %v outside the canvas", i, s.At)
		}
		if s.Brightness < 128 {
			t.Errorf("star %d brightness %d below the render floor", i, s.Brightness)
		}

		for j := i + 1; j < len(sky.Stars); j++ {
			o := sky.Stars[j]
			d := math.Sqrt(math.Pow(float64(s.At.X-o.At.X), 2) + math.Pow(float64(s.At.Y-o.At.Y), 2))
			if d < float64(cfg.StarSpacing) {
				t.Errorf("stars %v & %v are %.2f apart, want >= %d", s.At, o.At, d, cfg.StarSpacing)
			}
		}
	}
}

func TestNewSky_Moon(t *testing.T) {
	cfg := testSkyConfig(31)

	sky, err := NewSky(cfg)
	if err != nil {
		t.Fatal(err)
	}

	got := map[image.Point]bool{}
	for _, p := range sky.Moon {
		got[p] = true
	}

	rr := cfg.MoonRadius * cfg.MoonRadius
	for dy := -cfg.MoonRadius - 1; dy <= cfg.MoonRadius+1; dy++ {
		for dx := -cfg.MoonRadius - 1; dx <= cfg.MoonRadius+1; dx++ {
			p := cfg.MoonCentre.Add(image.Pt(dx, dy))
			inside := dx*dx+dy*dy < rr
			if inside != got[p] {
				t.Errorf("moon pixel %v: inside=%v but present=%v", p, inside, got[p])
			}
		}
	}
}

func TestNewSky_Deterministic(t *testing.T) {
	a, err := NewSky(testSkyConfig(32))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSky(testSkyConfig(32))
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Stars) != len(b.Stars) {
		t.Fatalf("star counts diverged: %d vs %d", len(a.Stars), len(b.Stars))
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d diverged: %v vs %v", i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestNewSky_NoStarsNoMoon(t *testing.T) {
	cfg := testSkyConfig(33)
	cfg.Stars = 0
	cfg.MoonRadius = 0

	sky, err := NewSky(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(sky.Stars) != 0 {
		t.Errorf("expected no stars, got %d", len(sky.Stars))
	}
	if len(sky.Moon) != 0 {
		t.Errorf("expected no moon, got %d pixels", len(sky.Moon))
	}
}

func TestSkyMap_Queries(t *testing.T) {
	cfg := testSkyConfig(34)

	sky, err := NewSky(cfg)
	if err != nil {
		t.Fatal(err)
	}
	m := sky.Map()

	for _, s := range sky.Stars {
		if !m.IsStar(s.At.X, s.At.Y) {
			t.Errorf("map misses star at %v", s.At)
		}
		br, err := m.Brightness(s.At.X, s.At.Y)
		if err != nil {
			t.Errorf("brightness at %v: %v", s.At, err)
		} else if br != s.Brightness {
			t.Errorf("brightness at %v = %d, want %d", s.At, br, s.Brightness)
		}
	}

	canvas := image.Rect(0, 0, cfg.Width, cfg.Height)
	for _, p := range sky.Moon {
		if !p.In(canvas) {
			continue // clipped
		}
		if !m.IsMoon(p.X, p.Y) {
			t.Errorf("map misses moon pixel at %v", p)
		}
	}

	// out of bounds queries answer false / error rather than panic
	if m.IsStar(-1, 0) || m.IsMoon(cfg.Width, 0) {
		t.Error("out of bounds queries should be false")
	}
	if _, err := m.Brightness(0, cfg.Height); err == nil {
		t.Error("out of bounds brightness should error")
	}
}

func TestSkyMap_ClipsOffCanvasMoon(t *testing.T) {
	cfg := testSkyConfig(35)
	cfg.MoonCentre = image.Pt(0, 0) // three quarters off canvas

	sky, err := NewSky(cfg)
	if err != nil {
		t.Fatal(err)
	}

	clipped := 0
	for _, p := range sky.Moon {
		if !p.In(image.Rect(0, 0, cfg.Width, cfg.Height)) {
			clipped++
		}
	}
	if clipped == 0 {
		t.Fatal("expected off-canvas moon pixels to be retained in Sky.Moon")
	}

	// and the map only answers for what's on canvas
	if sky.Map().IsMoon(-1, -1) {
		t.Error("clipped moon pixel should not be queryable")
	}
	if !sky.Map().IsMoon(1, 1) {
		t.Error("on-canvas moon pixel should be set")
	}
}

func TestSkyMap_CustomImage(t *testing.T) {
	cfg := testSkyConfig(36)

	sky, err := NewSky(cfg)
	if err != nil {
		t.Fatal(err)
	}

	scheme := DefaultScheme()
	im, err := sky.Map().CustomImage(scheme)
	if err != nil {
		t.Fatal(err)
	}

	bnds := im.Bounds()
	if bnds.Dx() != cfg.Width || bnds.Dy() != cfg.Height {
		t.Fatalf("image is %dx%d, want %dx%d", bnds.Dx(), bnds.Dy(), cfg.Width, cfg.Height)
	}

	// moon pixels take the exact moon colour
	moonPx := cfg.MoonCentre
	if im.At(moonPx.X, moonPx.Y) != scheme.Moon {
		t.Errorf("moon centre coloured %v, want %v", im.At(moonPx.X, moonPx.Y), scheme.Moon)
	}

	// a pixel far from every feature keeps the sky colour
	m := sky.Map()
	glow := float64(cfg.MoonRadius)*1.5 + 2
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if m.IsStar(x, y) || m.IsMoon(x, y) {
				continue
			}
			dx, dy := float64(x-cfg.MoonCentre.X), float64(y-cfg.MoonCentre.Y)
			if math.Sqrt(dx*dx+dy*dy) <= glow {
				continue
			}
			want := color.RGBAModel.Convert(scheme.Sky)
			if im.At(x, y) != want {
				t.Fatalf("background pixel (%d,%d) coloured %v, want %v", x, y, im.At(x, y), want)
			}
			return // one clean background pixel is enough
		}
	}
	t.Fatal("found no background pixel to check")
}
