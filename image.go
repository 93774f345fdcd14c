package asciink

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
)

// FitImage scales src to fit within width x height while preserving
// aspect ratio, centered on a canvas filled with bg. The result always
// has exactly the requested dimensions, which is what the quantizer and
// the device expect.
func FitImage(src image.Image, width, height int, bg color.RGBA) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return canvas
	}

	tw, th := width, sh*width/sw
	if th > height {
		tw, th = sw*height/sh, height
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	g := gift.New(gift.Resize(tw, th, gift.LanczosResampling))
	scaled := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(scaled, src)

	offset := image.Pt((width-tw)/2, (height-th)/2)
	draw.Draw(canvas, scaled.Bounds().Sub(scaled.Bounds().Min).Add(offset), scaled, scaled.Bounds().Min, draw.Src)

	return canvas
}
