package asciink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImagePNG(t *testing.T) {
	data := encodePNG(t, 10, 6, color.RGBA{255, 0, 0, 255})

	img, ok := DecodeImage(data)
	if !ok {
		t.Fatal("PNG bytes not recognized as an image")
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 6 {
		t.Errorf("decoded wrong dimensions: %v", img.Bounds())
	}
}

func TestDecodeImageRejectsText(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("plain text"),
		[]byte("\x1b[31mansi\x1b[0m"),
		{},
		{0xff, 0xfe, 0x00},
	} {
		if _, ok := DecodeImage(data); ok {
			t.Errorf("%q misclassified as an image", data)
		}
	}
}

func TestToTextReplacesInvalidUTF8(t *testing.T) {
	got := ToText([]byte{'h', 0xff, 'i'})
	want := "h�i"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestToTextPassesValidUTF8(t *testing.T) {
	in := "héllo 世界"
	if got := ToText([]byte(in)); got != in {
		t.Errorf("valid UTF-8 was altered: %q", got)
	}
}
