package asciink

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders a grid to an RGBA image of exactly width x height
// pixels. Cell size is derived from the resolution divided by the grid
// dimensions; leftover pixels on the right and bottom edges stay the
// theme background. Output is pixel-for-pixel reproducible for identical
// (grid, theme, fonts, resolution).
func Rasterize(g *Grid, theme Theme, fonts *FontSet, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Reason: "resolution must be positive"}
	}
	if fonts == nil || fonts.Regular == nil {
		return nil, &ConfigError{Reason: "a regular font face is required"}
	}

	cellWidth := width / g.Cols()
	cellHeight := height / g.Rows()
	if cellWidth == 0 || cellHeight == 0 {
		return nil, &ConfigError{Reason: "resolution too small for grid dimensions"}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			cell := g.Cell(row, col)
			drawCell(img, cell, &theme, fonts, col*cellWidth, row*cellHeight, cellWidth, cellHeight)
		}
	}

	return img, nil
}

func drawCell(img *image.RGBA, cell *Cell, theme *Theme, fonts *FontSet, x, y, cellWidth, cellHeight int) {
	fg := theme.Resolve(cell.Fg, true)
	bg := theme.Resolve(cell.Bg, false)

	if cell.HasFlag(CellFlagReverse) {
		fg, bg = bg, fg
	}

	if cell.HasFlag(CellFlagDim) {
		fg = color.RGBA{
			R: uint8(float64(fg.R) * 0.66),
			G: uint8(float64(fg.G) * 0.66),
			B: uint8(float64(fg.B) * 0.66),
			A: fg.A,
		}
	}

	rect := image.Rect(x, y, x+cellWidth, y+cellHeight)
	draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)

	face, emulateBold := fonts.faceFor(cell.Flags)
	metrics := face.Metrics()
	baseline := y + metrics.Ascent.Ceil()

	ch := cell.Char
	if ch != 0 && ch != ' ' {
		if _, ok := face.GlyphAdvance(ch); !ok {
			ch = theme.Fallback
		}

		if _, ok := face.GlyphAdvance(ch); ok {
			// Clip to the cell so oversized or slanted glyphs cannot
			// bleed into neighboring cells.
			d := &font.Drawer{
				Dst:  img.SubImage(rect).(*image.RGBA),
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(ch))

			if emulateBold {
				d.Dot = fixed.P(x+1, baseline)
				d.DrawString(string(ch))
			}
		}
	}

	if cell.HasFlag(CellFlagUnderline) {
		underlineY := baseline + 2
		if underlineY >= y+cellHeight {
			underlineY = y + cellHeight - 1
		}
		for px := 0; px < cellWidth; px++ {
			img.Set(x+px, underlineY, fg)
		}
	}

	if cell.HasFlag(CellFlagStrike) {
		strikeY := y + cellHeight/2
		for px := 0; px < cellWidth; px++ {
			img.Set(x+px, strikeY, fg)
		}
	}
}
