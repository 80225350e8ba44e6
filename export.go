package glyphpng

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/npillmayer/glyphpng/coverage"
	"golang.org/x/image/font"
)

// ErrMissingGlyphs is returned by a strict export if the font does not map
// every character of the alphabet.
var ErrMissingGlyphs = errors.New("font does not cover alphabet")

// Options configure an export. The zero values of FontPath, Size, DPI, Fill and Alphabet
// are replaced by their defaults.
type Options struct {
	FontPath string      // font file, used by Export only
	Size     float64     // point size
	DPI      float64     // resolution; at 72 dpi a point is a pixel
	Offset   image.Point // pen offset for every glyph
	Fill     color.Color // glyph color
	Alphabet []rune      // characters to export, in order
	Strict   bool        // fail if the font does not map a character
}

// DefaultOptions returns the options of a plain export: 'font.ttf' at 60pt,
// drawn in opaque white at offset (-2, 0), for the ASCII letters and digits.
func DefaultOptions() Options {
	return Options{
		FontPath: "font.ttf",
		Size:     60,
		DPI:      72,
		Offset:   image.Pt(-2, 0),
		Fill:     color.White,
		Alphabet: []rune(DefaultAlphabet),
	}
}

func (opts Options) withDefaults() Options {
	def := DefaultOptions()
	if opts.FontPath == "" {
		opts.FontPath = def.FontPath
	}
	if opts.Size == 0 {
		opts.Size = def.Size
	}
	if opts.DPI == 0 {
		opts.DPI = def.DPI
	}
	if opts.Fill == nil {
		opts.Fill = def.Fill
	}
	if len(opts.Alphabet) == 0 {
		opts.Alphabet = def.Alphabet
	}
	return opts
}

// Exporter renders the characters of an alphabet with a single font face.
// An Exporter is not safe for concurrent use.
type Exporter struct {
	font *ScalableFont
	face font.Face
	opts Options
}

// NewExporter creates a face of f as configured by opts. Clients should call
// Close when done.
func NewExporter(f *ScalableFont, opts Options) (*Exporter, error) {
	if f == nil {
		return nil, errors.New("no font")
	}
	opts = opts.withDefaults()
	face, err := f.NewFace(opts.Size, opts.DPI)
	if err != nil {
		return nil, err
	}
	return &Exporter{font: f, face: face, opts: opts}, nil
}

// Close releases the font face.
func (x *Exporter) Close() error {
	return x.face.Close()
}

// Face returns the font face used for measuring and rendering.
func (x *Exporter) Face() font.Face {
	return x.face
}

// Options returns the effective options, including defaults.
func (x *Exporter) Options() Options {
	return x.opts
}

// Job measures r and returns its render job.
func (x *Exporter) Job(r rune) (Job, error) {
	size, err := Extent(x.face, r)
	if err != nil {
		return Job{}, fmt.Errorf("cannot measure %q: %w", r, err)
	}
	return Job{
		Char:   r,
		Size:   size,
		Offset: x.opts.Offset,
		Fill:   x.opts.Fill,
	}, nil
}

// Render measures and draws a single character.
func (x *Exporter) Render(r rune) (Job, *image.NRGBA, error) {
	job, err := x.Job(r)
	if err != nil {
		return job, nil, err
	}
	return job, Render(x.face, job), nil
}

// Export renders every character of the alphabet, in order, and passes the
// canvases to sink. It stops at the first error. The number of glyphs written
// to sink is returned.
func (x *Exporter) Export(sink GlyphSink) (int, error) {
	if x.opts.Strict {
		report, err := coverage.Check(x.font.Binary, x.opts.Alphabet)
		if err != nil {
			return 0, err
		}
		if missing := report.Missing(); len(missing) > 0 {
			return 0, fmt.Errorf("%w: missing %q", ErrMissingGlyphs, string(missing))
		}
	}
	count := 0
	for _, r := range x.opts.Alphabet {
		job, img, err := x.Render(r)
		if err != nil {
			return count, err
		}
		if err := sink.WriteGlyph(job, img); err != nil {
			return count, fmt.Errorf("cannot write glyph %q: %w", r, err)
		}
		count++
	}
	tracer().Infof("exported %d glyphs of %s at %gpt", count, x.font.Fontname, x.opts.Size)
	return count, nil
}

// Export loads the font at opts.FontPath and exports the alphabet to sink.
// A font which cannot be loaded aborts the export before anything is written.
func Export(opts Options, sink GlyphSink) (int, error) {
	opts = opts.withDefaults()
	f, err := LoadOpenTypeFont(opts.FontPath)
	if err != nil {
		return 0, err
	}
	x, err := NewExporter(f, opts)
	if err != nil {
		return 0, err
	}
	defer x.Close()
	return x.Export(sink)
}
