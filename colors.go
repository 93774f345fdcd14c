package asciink

import "image/color"

// IndexedColor references a terminal color by palette index (0-255).
// Indices 0-15 resolve through the active Theme; 16-255 resolve through
// the fixed xterm color cube and grayscale ramp.
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color using the fixed xterm palette. Rendering
// resolves indices through the active Theme instead; this is the
// theme-independent answer for any other color.Color consumer.
func (c *IndexedColor) RGBA() (r, g, b, a uint32) {
	if c.Index >= 0 && c.Index < 256 {
		return xterm256[c.Index].RGBA()
	}
	return 0, 0, 0, 0xffff
}

// xterm256 is the standard 256-color terminal palette: 16 base slots
// (overridden per Theme), 216 color cube (16-231), 24 grayscale (232-255).
var xterm256 [256]color.RGBA

func init() {
	// Base 16 mirror the light theme so resolving an index without a
	// theme still yields something sensible.
	for i, c := range ThemeLight.ANSI {
		xterm256[i] = c
	}

	// 6x6x6 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				xterm256[i] = color.RGBA{
					R: cubeLevel(r),
					G: cubeLevel(g),
					B: cubeLevel(b),
					A: 255,
				}
				i++
			}
		}
	}

	// Grayscale ramp (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		xterm256[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// cubeLevel maps a cube coordinate 0-5 to its xterm channel value.
func cubeLevel(n int) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(55 + n*40)
}
