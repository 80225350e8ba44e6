// Package preview renders glyph canvases as ASCII art for terminal output.
package preview

import (
	"image"
	"image/color"
	"strings"
)

// Ramp holds the characters for increasing pixel coverage.
const Ramp = " .+#"

// Render draws the alpha channel of img, one line per pixel row. Pixels are
// mapped to Ramp by their alpha value.
func Render(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow((b.Dx() + 1) * b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := color.AlphaModel.Convert(img.At(x, y)).(color.Alpha).A
			sb.WriteByte(Ramp[int(a)*len(Ramp)/256])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Framed is like Render, but encloses every row in brackets, so that the
// extent of the canvas is visible with transparent borders.
func Framed(img image.Image) string {
	lines := strings.Split(strings.TrimSuffix(Render(img), "\n"), "\n")
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("[")
		sb.WriteString(line)
		sb.WriteString("]\n")
	}
	return sb.String()
}
