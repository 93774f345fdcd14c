package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/barthr/asciink"
)

var (
	columns    = flag.Int("columns", asciink.DefaultCols, "number of text columns")
	rows       = flag.Int("rows", asciink.DefaultRows, "number of text rows")
	fontSize   = flag.Float64("font-size", asciink.DefaultFontSize, "font size in points")
	saturation = flag.Float64("saturation", asciink.DefaultSaturation, "saturation multiplier (1.0 = unchanged)")
	contrast   = flag.Float64("contrast", asciink.DefaultContrast, "contrast multiplier (1.0 = unchanged)")
	themeName  = flag.String("theme", "dark", "color theme (light or dark)")
	width      = flag.Int("width", asciink.DefaultWidth, "display width in pixels")
	height     = flag.Int("height", asciink.DefaultHeight, "display height in pixels")
	output     = flag.String("o", "output.png", "output PNG path")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalln("Failed to read stdin:", err)
	}

	if len(data) == 0 {
		log.Println("Usage: asciink [options] < input")
		log.Println("")
		log.Println("asciink renders piped input as a bitmap for an e-paper display.")
		log.Println("PNG, JPEG, GIF and BMP input is shown directly after color")
		log.Println("adaptation; anything else is rendered as ANSI terminal output.")
		log.Println("")
		log.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	theme, ok := asciink.ThemeByName(*themeName)
	if !ok {
		log.Fatalf("Unknown theme %q (want light or dark)", *themeName)
	}

	dev := &asciink.FileDevice{
		Path:   *output,
		Width:  *width,
		Height: *height,
	}

	r, err := asciink.New(
		asciink.ForDevice(dev),
		asciink.WithGridSize(*rows, *columns),
		asciink.WithFontSize(*fontSize),
		asciink.WithSaturation(*saturation),
		asciink.WithContrast(*contrast),
		asciink.WithTheme(theme),
	)
	if err != nil {
		log.Fatalln("Invalid configuration:", err)
	}

	if err := r.RenderTo(dev, data); err != nil {
		log.Fatalln("Render failed:", err)
	}

	log.Println("Wrote", *output)
}
