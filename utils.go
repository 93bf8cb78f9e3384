package skyline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
)

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// dim scales a colour towards black by brightness/255
func dim(in color.Color, brightness uint8) color.Color {
	r, g, b, a := in.RGBA()
	scale := uint32(brightness)
	return color.RGBA64{
		R: uint16(r * scale / 255),
		G: uint16(g * scale / 255),
		B: uint16(b * scale / 255),
		A: uint16(a),
	}
}
