/*
Command glyphpng dumps the ASCII letters and digits of a TrueType font into
one PNG image per character.

Called without arguments, it reads 'font.ttf' from the current directory and
writes 'A.png' … 'Z.png', 'a.png' … 'z.png', '0.png' … '9.png' next to it,
with every glyph rendered at 60pt in white on a transparent background.

	glyphpng [--font font.ttf] [--size 60] [--out .] [--strict]
	glyphpng font [font.ttf]      print font diagnostics and glyph extents
	glyphpng inspect [font.ttf]   interactively preview glyphs as ASCII art
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/glyphpng"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'glyphpng.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphpng.cli")
}

func main() {
	initDisplay()

	commando.
		SetExecutableName("glyphpng").
		SetVersion("v0.1.0").
		SetDescription("Dump the glyphs of a TrueType font into one PNG image per character.")

	commando.
		Register(nil).
		AddFlag("font,f", "TrueType/OpenType font file", commando.String, "font.ttf").
		AddFlag("size,s", "font size in points", commando.Int, 60).
		AddFlag("dpi", "resolution in dots per inch", commando.Int, 72).
		AddFlag("offset-x", "horizontal pen offset in pixels", commando.Int, -2).
		AddFlag("offset-y", "vertical pen offset in pixels", commando.Int, 0).
		AddFlag("alphabet,a", "characters to export, in order", commando.String, glyphpng.DefaultAlphabet).
		AddFlag("out,o", "output directory", commando.String, ".").
		AddFlag("strict", "fail if the font does not map every character", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runExportCommand)

	commando.
		Register("font").
		SetDescription("Print font information, glyph coverage and extents of the alphabet.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "TrueType/OpenType font file", "font.ttf").
		AddFlag("size,s", "font size in points", commando.Int, 60).
		AddFlag("dpi", "resolution in dots per inch", commando.Int, 72).
		AddFlag("alphabet,a", "characters to report, in order", commando.String, glyphpng.DefaultAlphabet).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runFontCommand)

	commando.
		Register("inspect").
		SetDescription("Interactively measure and preview glyphs as ASCII art.").
		SetShortDescription("glyph preview").
		AddArgument("font", "TrueType/OpenType font file", "font.ttf").
		AddFlag("size,s", "font size in points", commando.Int, 24).
		AddFlag("dpi", "resolution in dots per inch", commando.Int, 72).
		AddFlag("offset-x", "horizontal pen offset in pixels", commando.Int, -2).
		AddFlag("offset-y", "vertical pen offset in pixels", commando.Int, 0).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runInspectCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// configureTracing routes all tracers to the Go log package.
func configureTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.glyphpng":     "Error",
		"trace.glyphpng.cli": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	var l tracing.TraceLevel
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error", "":
		l = tracing.LevelError
	default:
		fatalf("invalid trace level: %s", level)
	}
	tracing.Select("glyphpng").SetTraceLevel(l)
	tracer().SetTraceLevel(l)
	tracer().Debugf("trace level is %s", level)
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "glyphpng: "+format+"\n", args...)
	os.Exit(1)
}
