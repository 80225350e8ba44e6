package glyphpng

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// --- Test Suite Preparation ------------------------------------------------

type ExportTestEnviron struct {
	suite.Suite
	fontPath string
	font     *ScalableFont
	x        *Exporter
}

// listen for 'go test' command --> run test methods
func TestExportFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpng")
	defer teardown()
	suite.Run(t, new(ExportTestEnviron))
}

// run once, before test suite methods
func (env *ExportTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("glyphpng").SetTraceLevel(tracing.LevelError)
	env.fontPath = writeTestFont(env.T(), env.T().TempDir())
	f, err := LoadOpenTypeFont(env.fontPath)
	env.Require().NoError(err, "cannot load test font")
	env.font = f
	env.x, err = NewExporter(f, DefaultOptions())
	env.Require().NoError(err, "cannot create exporter")
	tracing.Select("glyphpng").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *ExportTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
	env.NoError(env.x.Close())
}

// --- Tests -----------------------------------------------------------------

func (env *ExportTestEnviron) TestCanvasMatchesExtent() {
	for _, r := range DefaultAlphabet {
		ext, err := Extent(env.x.Face(), r)
		env.Require().NoError(err, "cannot measure %q", r)
		job, img, err := env.x.Render(r)
		env.Require().NoError(err)
		env.Equal(ext, job.Size, "job size of %q differs from extent", r)
		env.Equal(image.Rect(0, 0, ext.X, ext.Y), img.Bounds(), "canvas of %q differs from extent", r)
	}
}

func (env *ExportTestEnviron) TestCapitalA() {
	job, img, err := env.x.Render('A')
	env.Require().NoError(err)
	env.T().Logf("extent of 'A' = %v", job.Size)
	env.Equal(image.Pt(-2, 0), job.Offset)
	env.Equal(color.White, job.Fill)
	env.True(job.Size.X > 0 && job.Size.Y > 0)
	env.Equal(color.NRGBA{}, img.NRGBAAt(0, 0), "expected top-left corner above cap height to be transparent")
	env.Greater(env.checkTransparentOrWhite('A', img), 0, "expected 'A' to leave ink")
}

func (env *ExportTestEnviron) TestAlphabetTransparentOrWhite() {
	for _, r := range DefaultAlphabet {
		_, img, err := env.x.Render(r)
		env.Require().NoError(err)
		env.Greater(env.checkTransparentOrWhite(r, img), 0, "expected %q to leave ink", r)
	}
}

func (env *ExportTestEnviron) TestMeasurementRule() {
	face := env.x.Face()
	ascent := face.Metrics().Ascent.Ceil()
	x, err := Extent(face, 'x')
	env.Require().NoError(err)
	env.Equal(ascent, x.Y, "'x' has no descender, expected height = ascent")
	g, err := Extent(face, 'g')
	env.Require().NoError(err)
	env.Greater(g.Y, ascent, "'g' has a descender, expected height > ascent")
	for _, r := range DefaultAlphabet {
		ext, err := Extent(face, r)
		env.Require().NoError(err)
		_, advance := font.BoundString(face, string(r))
		env.GreaterOrEqual(ext.X, advance.Ceil(), "width of %q smaller than its advance", r)
		env.GreaterOrEqual(ext.Y, ascent, "height of %q smaller than ascent", r)
	}
}

func (env *ExportTestEnviron) TestEmptyExtent() {
	face := emptyFace{Face: basicfont.Face7x13}
	_, err := Extent(face, 'A')
	env.True(errors.Is(err, ErrEmptyExtent), "expected ErrEmptyExtent, got %v", err)
	x := &Exporter{font: env.font, face: face, opts: DefaultOptions()}
	_, err = x.Job('A')
	env.Error(err)
	env.True(errors.Is(err, ErrEmptyExtent), "expected Job to wrap ErrEmptyExtent, got %v", err)
	n, err := x.Export(&failingSink{after: 100})
	env.True(errors.Is(err, ErrEmptyExtent))
	env.Zero(n)
}

func (env *ExportTestEnviron) TestEffectiveOptions() {
	x, err := NewExporter(env.font, Options{})
	env.Require().NoError(err)
	defer x.Close()
	opts := x.Options()
	env.Equal("font.ttf", opts.FontPath)
	env.Equal(60.0, opts.Size)
	env.Equal(72.0, opts.DPI)
	env.Equal(color.White, opts.Fill)
	env.Equal([]rune(DefaultAlphabet), opts.Alphabet)
	env.Equal(image.Point{}, opts.Offset, "zero offset is kept")
	env.Equal(image.Pt(-2, 0), env.x.Options().Offset)
}

func (env *ExportTestEnviron) TestSpaceHasAscentHeight() {
	ext, err := Extent(env.x.Face(), ' ')
	env.Require().NoError(err)
	env.Equal(env.x.Face().Metrics().Ascent.Ceil(), ext.Y, "space has no ink below baseline")
	env.Greater(ext.X, 0)
}

func (env *ExportTestEnviron) TestOffsetShiftsInk() {
	opts := DefaultOptions()
	opts.Offset = image.Pt(0, 0)
	x0, err := NewExporter(env.font, opts)
	env.Require().NoError(err)
	defer x0.Close()
	_, img0, err := x0.Render('H')
	env.Require().NoError(err)
	_, img2, err := env.x.Render('H')
	env.Require().NoError(err)
	env.Equal(img0.Bounds(), img2.Bounds(), "offset must not change the extent")
	col0, col2 := leftmostInk(img0), leftmostInk(img2)
	env.Require().GreaterOrEqual(col0, 2, "expected left side bearing of 'H' >= 2 pixels")
	env.Equal(col0-2, col2, "expected ink to be shifted 2 pixels to the left")
}

func (env *ExportTestEnviron) TestExportWritesAlphabet() {
	out := env.T().TempDir()
	opts := DefaultOptions()
	opts.FontPath = env.fontPath
	sink := NewDirSink(out)
	n, err := Export(opts, sink)
	env.Require().NoError(err)
	env.Equal(len(DefaultAlphabet), n)
	env.Len(sink.Written(), n)
	entries, err := os.ReadDir(out)
	env.Require().NoError(err)
	env.Len(entries, len(DefaultAlphabet), "expected exactly one file per character")
	for i, r := range DefaultAlphabet {
		path := filepath.Join(out, string(r)+".png")
		env.Equal(path, sink.Written()[i], "files have to be written in alphabet order")
		img := decodePNG(env.T(), path)
		job, err := env.x.Job(r)
		env.Require().NoError(err)
		env.Equal(job.Size, img.Bounds().Size(), "size of %s", path)
		env.Equal(color.NRGBAModel, img.ColorModel(), "expected %s to carry an alpha channel", path)
	}
}

func (env *ExportTestEnviron) TestExportIsIdempotent() {
	opts := DefaultOptions()
	opts.FontPath = env.fontPath
	opts.Alphabet = []rune("Qg7")
	out1, out2 := env.T().TempDir(), env.T().TempDir()
	_, err := Export(opts, NewDirSink(out1))
	env.Require().NoError(err)
	_, err = Export(opts, NewDirSink(out2))
	env.Require().NoError(err)
	for _, r := range opts.Alphabet {
		b1, err := os.ReadFile(filepath.Join(out1, string(r)+".png"))
		env.Require().NoError(err)
		b2, err := os.ReadFile(filepath.Join(out2, string(r)+".png"))
		env.Require().NoError(err)
		env.True(bytes.Equal(b1, b2), "output for %q differs between runs", r)
	}
}

func (env *ExportTestEnviron) TestMissingFontAborts() {
	out := env.T().TempDir()
	opts := DefaultOptions()
	opts.FontPath = filepath.Join(out, "font.ttf")
	n, err := Export(opts, NewDirSink(out))
	env.Error(err)
	env.True(errors.Is(err, os.ErrNotExist), "expected not-exist error, got %v", err)
	env.Zero(n)
	entries, err := os.ReadDir(out)
	env.Require().NoError(err)
	env.Empty(entries, "expected no output for a missing font")
}

func (env *ExportTestEnviron) TestStrictExportFailsOnMissingGlyph() {
	out := env.T().TempDir()
	opts := DefaultOptions()
	opts.FontPath = env.fontPath
	opts.Alphabet = []rune{'A', '\U0010FFFD'}
	opts.Strict = true
	n, err := Export(opts, NewDirSink(out))
	env.True(errors.Is(err, ErrMissingGlyphs), "expected ErrMissingGlyphs, got %v", err)
	env.Zero(n)
	entries, err := os.ReadDir(out)
	env.Require().NoError(err)
	env.Empty(entries, "strict export has to fail before writing")
}

func (env *ExportTestEnviron) TestExportStopsAtSinkError() {
	sink := &failingSink{after: 3}
	n, err := env.x.Export(sink)
	env.Error(err)
	env.Equal(3, n)
	env.Equal([]rune("ABC"), sink.chars)
}

// --- Helpers ---------------------------------------------------------------

// writeTestFont places the Go Regular font as 'font.ttf' into dir.
func writeTestFont(t *testing.T, dir string) string {
	path := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("cannot write test font: %v", err)
	}
	return path
}

// checkTransparentOrWhite asserts that every pixel of img is either fully
// transparent or white, and returns the number of ink pixels.
func (env *ExportTestEnviron) checkTransparentOrWhite(r rune, img *image.NRGBA) int {
	ink := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				env.Equal(color.NRGBA{}, c, "transparent pixel (%d,%d) of %q has color", x, y, r)
				continue
			}
			ink++
			env.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: c.A}, c, "ink pixel (%d,%d) of %q is not white", x, y, r)
		}
	}
	return ink
}

// emptyFace measures every glyph with zero metrics.
type emptyFace struct {
	font.Face
}

func (emptyFace) Metrics() font.Metrics { return font.Metrics{} }

func (emptyFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.Rectangle26_6{}, 0, true
}

func (emptyFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func decodePNG(t *testing.T, path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("cannot open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("cannot decode %s: %v", path, err)
	}
	return img
}

func leftmostInk(img *image.NRGBA) int {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if img.NRGBAAt(x, y).A > 0 {
				return x
			}
		}
	}
	return -1
}

type failingSink struct {
	after int
	chars []rune
}

func (s *failingSink) WriteGlyph(job Job, img image.Image) error {
	if len(s.chars) == s.after {
		return errors.New("disk full")
	}
	s.chars = append(s.chars, job.Char)
	return nil
}
