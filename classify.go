package asciink

import (
	"bytes"
	"image"
	"strings"

	// Raster formats the classifier can recognize.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// DecodeImage probes data for a known raster format signature and
// decodes it. The second return value is false when data is not a
// recognizable image, in which case the bytes should be treated as text.
func DecodeImage(data []byte) (image.Image, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	return img, true
}

// ToText converts raw bytes to UTF-8 text, substituting U+FFFD for
// invalid sequences. Garbled output beats no output: a display driven by
// a pipe should never go stale because the input had a stray byte.
func ToText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
