package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/raytracer-challenge/pkg/core"
)

// maxPPMLineLength is the longest pixel-data line written to a plain PPM file
const maxPPMLineLength = 70

// ErrUnsupportedFormat is returned when saving to an unknown file extension
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ColorToByte clamps a color channel to [0, 1] and scales it to 0..255
func ColorToByte(v float64) uint8 {
	v = max(0, min(1, v))
	return uint8(math.Round(v * 255))
}

// tupleToRGBA converts a color to an opaque RGBA value
func tupleToRGBA(c core.Tuple) color.RGBA {
	return color.RGBA{
		R: ColorToByte(c.R()),
		G: ColorToByte(c.G()),
		B: ColorToByte(c.B()),
		A: 255,
	}
}

// WritePPM writes the canvas as a plain-text ("P3") PPM image.
// Each canvas row starts a new line, and no line is longer than 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			bw.WriteString(line.String())
			bw.WriteByte('\n')
			line.Reset()
		}
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			px := c.pixels[y*c.width+x]
			for _, channel := range [3]float64{px.R(), px.G(), px.B()} {
				token := strconv.Itoa(int(ColorToByte(channel)))
				if line.Len() > 0 && line.Len()+1+len(token) > maxPPMLineLength {
					flush()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(token)
			}
		}
		flush()
	}

	return bw.Flush()
}

// ToImage converts the canvas to an RGBA image, clamping each channel
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, tupleToRGBA(c.pixels[y*c.width+x]))
		}
	}
	return img
}

// WritePNG encodes the canvas as a PNG image
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SaveCanvas writes the canvas to path, choosing the format from the extension (.ppm or .png)
func SaveCanvas(c *Canvas, path string) error {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		encode = c.WritePPM
	case ".png":
		encode = c.WritePNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return file.Close()
}
