package glyphpng

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Job is the render job for a single character. It lives for one iteration
// of an export only.
type Job struct {
	Char   rune
	Size   image.Point // canvas size, as measured by Extent
	Offset image.Point // pen offset from the top-left of the ascender line
	Fill   color.Color
}

// Name is the base name of the artifact for this job, i.e. the character itself.
func (job Job) Name() string {
	return string(job.Char)
}

// Render draws the character of job onto a freshly allocated, transparent
// canvas of job.Size. The baseline is placed at the (rounded up) ascent of face,
// shifted by job.Offset.
func Render(face font.Face, job Job) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, job.Size.X, job.Size.Y))
	fill := job.Fill
	if fill == nil {
		fill = color.White
	}
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.P(job.Offset.X, face.Metrics().Ascent.Ceil()+job.Offset.Y),
	}
	d.DrawString(job.Name())
	return canvas
}
