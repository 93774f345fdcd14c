package asciink

import "image/color"

// Theme maps the 16 canonical ANSI color slots plus the default
// foreground and background to concrete RGB values, tuned for a specific
// display's gamut. Themes are plain values: copy one and adjust it rather
// than mutating the package defaults.
type Theme struct {
	Name       string
	Foreground color.RGBA
	Background color.RGBA
	ANSI       [16]color.RGBA

	// Fallback is drawn for code points the font has no glyph for.
	Fallback rune
}

// inkyANSI are the 16 ANSI slots mapped into colors the Inky Impression
// panel can plausibly reproduce. Magenta and cyan alias red and blue;
// the panel has neither.
var inkyANSI = [16]color.RGBA{
	{0, 0, 0, 255},       // black
	{160, 32, 32, 255},   // red
	{96, 128, 80, 255},   // green
	{240, 224, 80, 255},  // yellow
	{80, 128, 184, 255},  // blue
	{160, 32, 32, 255},   // magenta -> red
	{80, 128, 184, 255},  // cyan -> blue
	{255, 255, 255, 255}, // white

	{0, 0, 0, 255},       // bright black
	{160, 32, 32, 255},   // bright red
	{96, 128, 80, 255},   // bright green
	{240, 224, 80, 255},  // bright yellow
	{80, 128, 184, 255},  // bright blue
	{160, 32, 32, 255},   // bright magenta -> red
	{80, 128, 184, 255},  // bright cyan -> blue
	{255, 255, 255, 255}, // bright white
}

// ThemeLight renders dark text on a white background.
var ThemeLight = Theme{
	Name:       "light",
	Foreground: color.RGBA{0, 0, 0, 255},
	Background: color.RGBA{255, 255, 255, 255},
	ANSI:       inkyANSI,
	Fallback:   '?',
}

// ThemeDark renders light text on a black background.
var ThemeDark = Theme{
	Name:       "dark",
	Foreground: color.RGBA{255, 255, 255, 255},
	Background: color.RGBA{0, 0, 0, 255},
	ANSI:       inkyANSI,
	Fallback:   '?',
}

// ThemeByName returns the named built-in theme, or ok=false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	default:
		return Theme{}, false
	}
}

// Resolve converts a cell color to concrete RGBA. A nil color means the
// theme default for the given plane; indices 0-15 use the theme's ANSI
// slots, 16-255 the fixed xterm palette.
func (t *Theme) Resolve(c color.Color, fg bool) color.RGBA {
	if c == nil {
		if fg {
			return t.Foreground
		}
		return t.Background
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case *IndexedColor:
		if v.Index >= 0 && v.Index < 16 {
			return t.ANSI[v.Index]
		}
		if v.Index >= 16 && v.Index < 256 {
			return xterm256[v.Index]
		}
		if fg {
			return t.Foreground
		}
		return t.Background
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
}
