// Package asciink renders arbitrary piped input as a bitmap for small,
// slow-refresh, limited-palette e-paper displays.
//
// Two input shapes are supported. Encoded raster images (PNG, JPEG, GIF,
// BMP) are fitted to the display resolution and color-adapted. Anything
// else is treated as terminal output: ANSI/SGR escape sequences are
// decoded into a grid of styled character cells, the grid is rasterized
// with a monospace font, and the resulting true-color image is quantized
// down to the display's palette with error-diffusion dithering.
//
// # Quick start
//
//	r, err := asciink.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := r.Render([]byte("\x1b[31mhello\x1b[0m world"))
//	// out is an *image.Paletted constrained to the device palette.
//
// # Pipeline
//
// The package is organized around these stages:
//
//   - [DecodeRuns]: splits text with SGR escapes into [StyledRun]s
//   - [Grid]: a fixed rows x columns grid of [Cell]s
//   - [Rasterize]: grid + [Theme] + font -> *image.RGBA
//   - [Quantize]: saturation/contrast adjustment, perceptual
//     nearest-color mapping and Floyd-Steinberg dithering against a
//     device [Palette]
//
// [Renderer] wires the stages together and classifies input as image or
// text. The output is handed to a [Device] collaborator, which owns any
// device-specific bit packing.
//
// The decoder is deliberately not a terminal emulator: cursor
// addressing, scrolling and image-in-terminal protocols are ignored.
// The model is "render a fixed-size block of styled text".
package asciink
