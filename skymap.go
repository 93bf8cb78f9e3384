package skyline

import (
	"image"
	"image/color"

	"github.com/mbikovitsky/skyline/internal/encoding"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

const (
	// bit numbers for our bitmap
	bitStar = 0
	bitMoon = 1
)

// SkyMap is a graphical representation of a Sky
type SkyMap interface {
	// Save as custom file in a format defined by the library
	Save(fpath string) error

	// SaveAdv saves as an image with the given color scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image with the given color scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)

	// at most one of these things can be at a given (x,y) co-ord
	IsStar(x, y int) bool
	IsMoon(x, y int) bool

	// Brightness returns the star brightness at x,y (0 if no star)
	Brightness(x, y int) (uint8, error)
}

// skyImage is a particular implementation of SkyMap using a RGBA64
type skyImage struct {
	// im is an RGBA64 image where each pixel of 64 bits is split via
	//
	// R [16 bits]
	//   16-9: [8 bits] -> star brightness
	// G [16 bits] unused
	// B [16 bits] unused
	// A [16 bits]
	//    8-1 [8 bits] -> bitmap (true if set, false if not)
	//       bit 0 -> isStar
	//       bit 1 -> isMoon
	//       bit 2-7 -> unused
	//
	im *image.RGBA64

	// moon geometry, kept so CustomImage can paint a glow halo
	moonCentre image.Point
	moonRadius int
}

// ColourScheme defines how the features of a skyline should be coloured.
// The Pixel colours (Border / Building / Window) are here too so the
// render loop & the baked background share one palette.
type ColourScheme struct {
	Sky      color.Color
	Border   color.Color
	Building color.Color
	Window   color.Color
	Star     color.Color
	Moon     color.Color

	// MoonGlow is a translucent halo painted under the moon disc.
	// nil disables the halo.
	MoonGlow color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Sky:      color.RGBA{63, 63, 116, 255},
		Border:   colornames.Black,
		Building: color.RGBA{50, 60, 57, 255},
		Window:   color.RGBA{251, 242, 54, 255},
		Star:     colornames.White,
		Moon:     colornames.Ivory,
		MoonGlow: color.RGBA{255, 255, 240, 40},
	}
}

// PixelColour returns the scheme colour for a skyline pixel.
func (s *ColourScheme) PixelColour(p Pixel) color.Color {
	switch p {
	case Border:
		return s.Border
	case Window:
		return s.Window
	}
	return s.Building
}

// newSkyImage bakes the given sky onto a fresh map
func newSkyImage(bounds image.Rectangle, s *Sky) *skyImage {
	c := &skyImage{
		im:         image.NewRGBA64(bounds),
		moonCentre: s.cfg.MoonCentre,
		moonRadius: s.cfg.MoonRadius,
	}

	for _, st := range s.Stars {
		c.setStar(st.At.X, st.At.Y, st.Brightness)
	}
	for _, p := range s.Moon {
		c.setMoon(p.X, p.Y) // off-canvas pixels are clipped
	}

	return c
}

// Save the SkyMap as is to disk
func (c *skyImage) Save(fpath string) error {
	return savePNG(fpath, c.im)
}

// CustomImage returns the SkyMap coloured with the given Scheme
func (c *skyImage) CustomImage(scheme *ColourScheme) (image.Image, error) {
	bnds := c.im.Bounds()

	ctx := gg.NewContextForRGBA(image.NewRGBA(bnds))
	ctx.SetColor(scheme.Sky)
	ctx.Clear()

	if scheme.MoonGlow != nil && c.moonRadius > 0 {
		ctx.SetColor(scheme.MoonGlow)
		ctx.DrawCircle(float64(c.moonCentre.X), float64(c.moonCentre.Y), float64(c.moonRadius)*1.5)
		ctx.Fill()
	}

	im := ctx.Image().(*image.RGBA)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			bm := c.getBM(dx, dy)

			if bm.Get(bitMoon) {
				im.Set(dx, dy, scheme.Moon)
				continue
			}
			if bm.Get(bitStar) {
				br, err := c.Brightness(dx, dy)
				if err != nil {
					return nil, err
				}
				im.Set(dx, dy, dim(scheme.Star, br))
			}
		}
	}

	return im, nil
}

// SaveAdv essentially saves the SkyMap using the given scheme to disk.
// Essentially sugar around "CustomImage()" followed by writing out a PNG.
func (c *skyImage) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := c.CustomImage(scheme)
	if err != nil {
		return err
	}
	ctx := gg.NewContextForRGBA(im.(*image.RGBA))
	return ctx.SavePNG(fpath)
}

// Brightness returns the star brightness at x,y.
// A value of 0 indicates that there is no star.
func (c *skyImage) Brightness(x, y int) (uint8, error) {
	if c.isOutOfBounds(x, y) {
		return 0, errors.Errorf("(%d,%d) is out of bounds", x, y)
	}

	v := c.im.RGBA64At(x, y)
	br, _ := encoding.Split16(v.R)
	return br, nil
}

// IsStar returns if there is a star at x,y
func (c *skyImage) IsStar(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitStar)
}

// IsMoon returns if the moon covers x,y
func (c *skyImage) IsMoon(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitMoon)
}

// setStar sets x,y as a star with the given brightness
func (c *skyImage) setStar(x, y int, brightness uint8) {
	v := c.im.RGBA64At(x, y)
	v.R = encoding.Merge8(brightness, 0)
	c.im.SetRGBA64(x, y, v)

	bm := c.getBM(x, y)
	bm.Set(bitStar, true)
	c.setBM(x, y, bm)
}

// setMoon sets x,y as part of the moon
func (c *skyImage) setMoon(x, y int) {
	bm := c.getBM(x, y)
	bm.Set(bitMoon, true)
	c.setBM(x, y, bm)
}

// setBM sets the 8 bit bitmap at x,y
func (c *skyImage) setBM(x, y int, bm bitmap.Bitmap) {
	num := encoding.FromBytes8(bm.Data(true))

	current := c.im.RGBA64At(x, y)
	current.A = encoding.Merge8(0, num)
	c.im.SetRGBA64(x, y, current)
}

// getBM gets the 8 bit bitmap at x,y
func (c *skyImage) getBM(x, y int) bitmap.Bitmap {
	current := c.im.RGBA64At(x, y)

	_, bmdata := encoding.Split16(current.A)
	data := encoding.ToBytes8(bmdata)
	return bitmap.Bitmap(data)
}

// isOutOfBounds determines if x,y is outside of the image area
func (c *skyImage) isOutOfBounds(x, y int) bool {
	bnds := c.im.Bounds()
	return x < bnds.Min.X || x >= bnds.Max.X || y < bnds.Min.Y || y >= bnds.Max.Y
}
