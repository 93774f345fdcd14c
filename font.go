package asciink

import (
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the monospace faces used to realize style attributes.
// Only Regular is required; missing variants fall back to Regular, with
// bold emulated by one-pixel outline thickening.
type FontSet struct {
	Regular    font.Face
	Bold       font.Face
	Italic     font.Face
	BoldItalic font.Face
}

// DefaultFontSet loads the embedded Go Mono family at the given size.
func DefaultFontSet(size float64) (*FontSet, error) {
	regular, err := LoadFontFromBytes(gomono.TTF, size)
	if err != nil {
		return nil, err
	}
	bold, err := LoadFontFromBytes(gomonobold.TTF, size)
	if err != nil {
		return nil, err
	}
	italic, err := LoadFontFromBytes(gomonoitalic.TTF, size)
	if err != nil {
		return nil, err
	}
	boldItalic, err := LoadFontFromBytes(gomonobolditalic.TTF, size)
	if err != nil {
		return nil, err
	}

	return &FontSet{
		Regular:    regular,
		Bold:       bold,
		Italic:     italic,
		BoldItalic: boldItalic,
	}, nil
}

// BasicFontSet returns a set backed by the fixed 7x13 bitmap face.
// Useful in tests and when no scalable font is wanted.
func BasicFontSet() *FontSet {
	return &FontSet{Regular: basicfont.Face7x13}
}

// faceFor picks the face for a cell's flags. The second return value is
// true when bold must be emulated because no bold face is available.
func (fs *FontSet) faceFor(flags CellFlags) (font.Face, bool) {
	bold := flags&CellFlagBold != 0
	italic := flags&CellFlagItalic != 0

	switch {
	case bold && italic && fs.BoldItalic != nil:
		return fs.BoldItalic, false
	case bold && !italic && fs.Bold != nil:
		return fs.Bold, false
	case italic && fs.Italic != nil:
		return fs.Italic, bold && fs.Bold == nil
	default:
		return fs.Regular, bold && fs.Bold == nil
	}
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}
