package glyphpng

import (
	"errors"
	"image"

	"golang.org/x/image/font"
)

// ErrEmptyExtent is returned if a character measures to zero width or height.
var ErrEmptyExtent = errors.New("character has empty extent")

// Extent measures the canvas size needed for a single character r, drawn with
// face and anchored at the top-left of the ascender line.
//
// The width is the larger of the advance width and the right edge of the ink,
// the height is the ascent plus the depth of the ink below the baseline.
// Both are rounded up to whole pixels. The drawing offset does not take part
// in measuring.
func Extent(face font.Face, r rune) (image.Point, error) {
	bounds, advance := font.BoundString(face, string(r))
	ascent := face.Metrics().Ascent.Ceil()
	width := advance.Ceil()
	if right := bounds.Max.X.Ceil(); right > width {
		width = right
	}
	depth := bounds.Max.Y.Ceil() // y grows downwards from the baseline
	if depth < 0 {
		depth = 0
	}
	ext := image.Pt(width, ascent+depth)
	tracer().Debugf("extent of %q: advance=%d, ink=%v, ascent=%d -> %v", r, advance.Ceil(), bounds, ascent, ext)
	if ext.X <= 0 || ext.Y <= 0 {
		return ext, ErrEmptyExtent
	}
	return ext, nil
}
