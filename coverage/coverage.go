/*
Package coverage checks whether a font maps the characters of an export
alphabet to glyphs.

Characters without a mapping in the font's cmap table are drawn with glyph 0
('.notdef') by rasterizers, which usually is an empty box. An export of such a
character succeeds, but produces a useless image. Package coverage lets clients
detect this up front.
*/
package coverage

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphpng'
func tracer() tracing.Trace {
	return tracing.Select("glyphpng")
}

// Entry is the coverage information for one character.
type Entry struct {
	Char   rune
	Glyph  uint32 // 0 if not mapped
	Mapped bool
	Script language.Script
}

// Report lists coverage entries in alphabet order.
type Report struct {
	UnitsPerEm uint16
	Entries    []Entry
}

// Missing returns the characters without a glyph, in alphabet order.
func (r Report) Missing() []rune {
	var missing []rune
	for _, e := range r.Entries {
		if !e.Mapped {
			missing = append(missing, e.Char)
		}
	}
	return missing
}

// Complete is true if every character of the alphabet is mapped.
func (r Report) Complete() bool {
	return len(r.Missing()) == 0
}

// Check parses the binary font data and looks up every rune of alphabet in
// the font's cmap.
func Check(data []byte, alphabet []rune) (Report, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return Report{}, fmt.Errorf("cannot parse font for coverage check: %w", err)
	}
	report := Report{
		UnitsPerEm: face.Upem(),
		Entries:    make([]Entry, 0, len(alphabet)),
	}
	for _, c := range alphabet {
		gid, ok := face.NominalGlyph(c)
		e := Entry{
			Char:   c,
			Glyph:  uint32(gid),
			Mapped: ok && gid != 0,
			Script: language.LookupScript(c),
		}
		report.Entries = append(report.Entries, e)
		if !e.Mapped {
			tracer().Infof("font does not map %q", c)
		}
	}
	return report, nil
}
