package asciink

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the ordered set of colors a target display can physically
// show. Index order is significant: exact distance ties resolve to the
// lowest index, and the device driver addresses colors by index.
type Palette []color.RGBA

// ColorPalette converts to the stdlib palette type used by image.Paletted.
func (p Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// Quantize maps a true-color image onto a small device palette. Each
// pixel is first adjusted: saturation scaled by sat and lightness
// remapped around the midpoint by contrast, both in HSL. The adjusted
// pixel is then matched to the nearest palette entry under CIE Lab
// distance, with Floyd-Steinberg error diffusion spreading the
// quantization error to not-yet-visited neighbors. The result is
// deterministic for fixed inputs.
func Quantize(src *image.RGBA, sat, contrast float64, pal Palette) (*image.Paletted, error) {
	if sat < 0 || contrast < 0 {
		return nil, &ConfigError{Reason: "saturation and contrast must be non-negative"}
	}
	if len(pal) == 0 {
		return nil, &ConfigError{Reason: "palette must not be empty"}
	}
	if len(pal) > 256 {
		return nil, &ConfigError{Reason: "palette exceeds 256 entries"}
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	palColors := make([]colorful.Color, len(pal))
	for i, c := range pal {
		palColors[i] = colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}
	}

	out := image.NewPaletted(bounds, pal.ColorPalette())

	// Per-channel diffusion error for the current and next row.
	curErr := make([][3]float64, w+2)
	nextErr := make([][3]float64, w+2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := src.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			c := adjustColor(px, sat, contrast)

			c.R = clamp01(c.R + curErr[x+1][0])
			c.G = clamp01(c.G + curErr[x+1][1])
			c.B = clamp01(c.B + curErr[x+1][2])

			best := nearestIndex(c, palColors)
			out.SetColorIndex(bounds.Min.X+x, bounds.Min.Y+y, uint8(best))

			chosen := palColors[best]
			diff := [3]float64{c.R - chosen.R, c.G - chosen.G, c.B - chosen.B}

			// Floyd-Steinberg weights: 7/16 right, 3/16 below-left,
			// 5/16 below, 1/16 below-right. On the bottom row the three
			// down shares would fall off the image; fold them into the
			// right neighbor so the last row diffuses as well as the rest.
			for ch := 0; ch < 3; ch++ {
				if y == h-1 {
					curErr[x+2][ch] += diff[ch]
					continue
				}
				curErr[x+2][ch] += diff[ch] * 7 / 16
				nextErr[x][ch] += diff[ch] * 3 / 16
				nextErr[x+1][ch] += diff[ch] * 5 / 16
				nextErr[x+2][ch] += diff[ch] * 1 / 16
			}
		}

		curErr, nextErr = nextErr, curErr
		for i := range nextErr {
			nextErr[i] = [3]float64{}
		}
	}

	return out, nil
}

// adjustColor applies the saturation and contrast transforms in HSL.
// sat scales the S channel; contrast remaps L around the midpoint as
// L' = 0.5 + (L-0.5)*contrast. Both channels clamp to [0,1].
func adjustColor(px color.RGBA, sat, contrast float64) colorful.Color {
	c := colorful.Color{
		R: float64(px.R) / 255,
		G: float64(px.G) / 255,
		B: float64(px.B) / 255,
	}

	// Identity settings skip the HSL round trip entirely so that
	// already-quantized input passes through bit-exact.
	if sat == 1 && contrast == 1 {
		return c
	}

	hue, s, l := c.Hsl()
	s = clamp01(s * sat)
	l = clamp01(0.5 + (l-0.5)*contrast)
	return colorful.Hsl(hue, s, l)
}

// nearestIndex returns the palette index closest to c under CIE Lab
// distance. Exact ties keep the lowest index.
func nearestIndex(c colorful.Color, pal []colorful.Color) int {
	best := 0
	bestDist := c.DistanceLab(pal[0])
	for i := 1; i < len(pal); i++ {
		if d := c.DistanceLab(pal[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
