package asciink

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Device is the display collaborator. It reports the panel's true
// resolution and color capability up front, and accepts a quantized
// buffer indexed into that palette. Any device-specific bit packing
// happens behind this interface.
type Device interface {
	// Resolution reports the native pixel dimensions of the panel.
	Resolution() (width, height int)

	// Palette reports the colors the panel can physically show, in
	// driver index order.
	Palette() Palette

	// Render transfers a quantized buffer to the panel. The buffer's
	// palette must be the one reported by Palette.
	Render(img *image.Paletted) error
}

// PaletteInky73 is the color set of the Inky Impression 7.3" (2025)
// panel, in driver index order.
var PaletteInky73 = Palette{
	{0, 0, 0, 255},       // black
	{255, 255, 255, 255}, // white
	{240, 224, 80, 255},  // yellow
	{160, 32, 32, 255},   // red
	{80, 128, 184, 255},  // blue
	{96, 128, 80, 255},   // green
}

// FileDevice writes renders to a PNG file instead of driving a physical
// panel. It stands in for real hardware during development and acts as
// the debug preview output.
type FileDevice struct {
	// Path of the output PNG.
	Path string

	// Width and Height of the simulated panel. Zero means 800x480.
	Width  int
	Height int

	// Colors of the simulated panel. Nil means PaletteInky73.
	Colors Palette
}

// Resolution implements Device.
func (d *FileDevice) Resolution() (int, int) {
	if d.Width <= 0 || d.Height <= 0 {
		return 800, 480
	}
	return d.Width, d.Height
}

// Palette implements Device.
func (d *FileDevice) Palette() Palette {
	if d.Colors == nil {
		return PaletteInky73
	}
	return d.Colors
}

// Render implements Device by encoding the buffer as a PNG file.
func (d *FileDevice) Render(img *image.Paletted) error {
	f, err := os.Create(d.Path)
	if err != nil {
		return fmt.Errorf("asciink: create %s: %w", d.Path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("asciink: encode %s: %w", d.Path, err)
	}

	return nil
}
