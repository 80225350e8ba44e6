package glyphpng

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'glyphpng'
func tracer() tracing.Trace {
	return tracing.Select("glyphpng")
}

// ScalableFont is an internal representation of an outline-font of type
// TTF of OTF. It is read-only after loading and may be shared between
// exports.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, empty if parsed from memory
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, fmt.Errorf("cannot read font: %w", err)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// UnitsPerEm returns the design units of the font.
func (f *ScalableFont) UnitsPerEm() sfnt.Units {
	return f.SFNT.UnitsPerEm()
}

// NewFace creates a rasterizable face of f at a point size and resolution.
// The face is not safe for concurrent use; clients have to close it.
func (f *ScalableFont) NewFace(size, dpi float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid point size %g", size)
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("invalid resolution %g dpi", dpi)
	}
	face, err := opentype.NewFace(f.SFNT, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create face for %s at %gpt: %w", f.Fontname, size, err)
	}
	return face, nil
}
