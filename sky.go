package skyline

import (
	"encoding/json"
	"image"
	"io/ioutil"
	"math/rand"
	"time"

	"github.com/mbikovitsky/skyline/internal/disc"
	"github.com/mbikovitsky/skyline/internal/poisson"
	"github.com/mbikovitsky/skyline/internal/sample"
)

// Sky holds the static night sky decoration behind a skyline: a blue
// noise scatter of stars & a filled moon disc. It is generated once &
// consumed by the renderer to pre-bake a background.
type Sky struct {
	// Stars kept of those scattered, with render brightness
	Stars []Star

	// Moon is every pixel of the moon disc. Some may sit off canvas
	// if the moon hugs an edge; the baked map clips them.
	Moon []image.Point `json:",omitempty"`

	// Seed actually used, for reproducing a sky
	Seed int64

	cfg  *SkyConfig
	smap *skyImage
}

// NewSky scatters stars & rasterises a moon per the given config.
// All configuration & arithmetic problems surface here.
func NewSky(cfg *SkyConfig) (*Sky, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Sky{
		Stars: []Star{},
		Seed:  seed,
		cfg:   cfg,
	}

	canvas := image.Rect(0, 0, cfg.Width, cfg.Height)
	candidates := poisson.Sample(rng, canvas, cfg.StarSpacing)
	for _, p := range poisson.Subset(rng, candidates, cfg.Stars) {
		s.Stars = append(s.Stars, Star{
			At:         p,
			Brightness: uint8(sample.Uniform(rng, 128, 255)),
		})
	}

	if cfg.MoonRadius > 0 {
		s.Moon = disc.Points(cfg.MoonCentre, cfg.MoonRadius)
	}

	s.smap = newSkyImage(canvas, s)

	return s, nil
}

// Map returns the pre-baked SkyMap.
// The map essentially holds the same data but saved graphically rather
// than in Go structs.
func (s *Sky) Map() SkyMap {
	return s.smap
}

// JSON returns the sky as json.
func (s *Sky) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSON writes a json file to the given path.
func (s *Sky) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}
