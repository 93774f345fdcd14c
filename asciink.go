package asciink

import (
	"fmt"
	"image"
)

// Defaults mirror the 7.3" Inky Impression setup this tool was built
// around: an 800x480 panel showing a 100x20 block of text.
const (
	DefaultRows       = 20
	DefaultCols       = 100
	DefaultWidth      = 800
	DefaultHeight     = 480
	DefaultFontSize   = 12
	DefaultSaturation = 0.6
	DefaultContrast   = 1.4
)

// Renderer runs the full pipeline: classify input as image or ANSI text,
// produce a true-color buffer at the device resolution, then quantize it
// against the device palette. A Renderer is cheap to keep around and safe
// to reuse; each Render call owns its buffers exclusively.
type Renderer struct {
	rows       int
	cols       int
	width      int
	height     int
	fontSize   float64
	saturation float64
	contrast   float64
	theme      Theme
	palette    Palette
	fonts      *FontSet
}

// Option configures a Renderer during construction.
type Option func(*Renderer)

// WithGridSize sets the text grid dimensions in rows and columns.
func WithGridSize(rows, cols int) Option {
	return func(r *Renderer) {
		r.rows = rows
		r.cols = cols
	}
}

// WithResolution sets the target pixel dimensions.
func WithResolution(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// WithFontSize sets the point size used when loading the default fonts.
// Ignored when WithFonts supplies faces directly.
func WithFontSize(size float64) Option {
	return func(r *Renderer) {
		r.fontSize = size
	}
}

// WithFonts supplies the font faces used by the rasterizer.
func WithFonts(fs *FontSet) Option {
	return func(r *Renderer) {
		r.fonts = fs
	}
}

// WithTheme sets the color theme for the ANSI path.
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// WithSaturation sets the saturation multiplier applied before
// quantization (1.0 = unchanged).
func WithSaturation(s float64) Option {
	return func(r *Renderer) {
		r.saturation = s
	}
}

// WithContrast sets the contrast multiplier applied before quantization
// (1.0 = unchanged).
func WithContrast(c float64) Option {
	return func(r *Renderer) {
		r.contrast = c
	}
}

// WithPalette sets the device palette to quantize against.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// ForDevice adopts a device's reported resolution and palette.
func ForDevice(d Device) Option {
	return func(r *Renderer) {
		r.width, r.height = d.Resolution()
		r.palette = d.Palette()
	}
}

// New creates a Renderer, validating the configuration before any
// rendering can start. Inconsistent parameters return a *ConfigError.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		rows:       DefaultRows,
		cols:       DefaultCols,
		width:      DefaultWidth,
		height:     DefaultHeight,
		fontSize:   DefaultFontSize,
		saturation: DefaultSaturation,
		contrast:   DefaultContrast,
		theme:      ThemeDark,
		palette:    PaletteInky73,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if r.fonts == nil {
		fonts, err := DefaultFontSet(r.fontSize)
		if err != nil {
			return nil, fmt.Errorf("asciink: load default fonts: %w", err)
		}
		r.fonts = fonts
	}

	return r, nil
}

func (r *Renderer) validate() error {
	switch {
	case r.rows <= 0 || r.cols <= 0:
		return &ConfigError{Reason: "grid dimensions must be positive"}
	case r.width <= 0 || r.height <= 0:
		return &ConfigError{Reason: "resolution must be positive"}
	case r.width/r.cols == 0 || r.height/r.rows == 0:
		return &ConfigError{Reason: fmt.Sprintf("resolution %dx%d too small for %dx%d grid", r.width, r.height, r.cols, r.rows)}
	case r.fontSize <= 0:
		return &ConfigError{Reason: "font size must be positive"}
	case r.saturation < 0 || r.contrast < 0:
		return &ConfigError{Reason: "saturation and contrast must be non-negative"}
	case len(r.palette) == 0:
		return &ConfigError{Reason: "palette must not be empty"}
	}
	return nil
}

// Render classifies data and runs it through the pipeline, returning a
// buffer constrained to the device palette. Input is never rejected:
// bytes that are not a recognizable image render as (possibly garbled)
// text rather than failing.
func (r *Renderer) Render(data []byte) (*image.Paletted, error) {
	buf, err := r.rasterize(data)
	if err != nil {
		return nil, err
	}
	return Quantize(buf, r.saturation, r.contrast, r.palette)
}

// RenderTo renders data and transfers the result to the device.
func (r *Renderer) RenderTo(d Device, data []byte) error {
	out, err := r.Render(data)
	if err != nil {
		return err
	}
	return d.Render(out)
}

func (r *Renderer) rasterize(data []byte) (*image.RGBA, error) {
	if img, ok := DecodeImage(data); ok {
		return FitImage(img, r.width, r.height, r.theme.Background), nil
	}

	grid, err := NewGrid(r.rows, r.cols)
	if err != nil {
		return nil, err
	}
	grid.WriteRuns(DecodeRuns(ToText(data)))

	return Rasterize(grid, r.theme, r.fonts, r.width, r.height)
}
