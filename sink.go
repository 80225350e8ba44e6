package glyphpng

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// GlyphSink receives rendered glyph canvases from an export.
type GlyphSink interface {
	WriteGlyph(job Job, img image.Image) error
}

// DirSink writes every glyph as "<char>.png" into a directory.
type DirSink struct {
	Dir     string
	written []string
}

// NewDirSink creates a sink writing into dir. An empty dir is the current
// working directory.
func NewDirSink(dir string) *DirSink {
	if dir == "" {
		dir = "."
	}
	return &DirSink{Dir: dir}
}

// Path returns the file path a job's artifact is written to.
func (s *DirSink) Path(job Job) string {
	return filepath.Join(s.Dir, job.Name()+".png")
}

// WriteGlyph encodes img as PNG. Existing files are overwritten. Nothing is
// written if img cannot be encoded.
func (s *DirSink) WriteGlyph(job Job, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("cannot encode png for %q: %w", job.Char, err)
	}
	if s.Dir != "." {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	path := s.Path(job)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	s.written = append(s.written, path)
	tracer().Debugf("wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// Written returns the paths of all files written so far, in order.
func (s *DirSink) Written() []string {
	return s.written
}
