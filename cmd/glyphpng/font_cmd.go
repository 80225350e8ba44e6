package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/glyphpng"
	"github.com/npillmayer/glyphpng/coverage"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	configureTracing(mustFlagString(flags["trace"], "trace"))
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f, err := glyphpng.LoadOpenTypeFont(fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	opts := glyphpng.DefaultOptions()
	opts.Size = float64(mustFlagInt(flags["size"], "size"))
	opts.DPI = float64(mustFlagInt(flags["dpi"], "dpi"))
	opts.Alphabet = mustAlphabet(flags["alphabet"])
	x, err := glyphpng.NewExporter(f, opts)
	if err != nil {
		fatalf("%v", err)
	}
	defer x.Close()
	eff := x.Options()
	report, err := coverage.Check(f.Binary, eff.Alphabet)
	if err != nil {
		fatalf("%v", err)
	}

	pterm.Info.Println(fmt.Sprintf("Font: %s", f.Fontname))
	pterm.Println(fmt.Sprintf("Path: %s", f.Filepath))
	pterm.Println(fmt.Sprintf("Units per em: %d", report.UnitsPerEm))
	m := x.Face().Metrics()
	pterm.Println(fmt.Sprintf("Size: %gpt @ %g dpi, ascent=%d descent=%d height=%d",
		eff.Size, eff.DPI, m.Ascent.Ceil(), m.Descent.Ceil(), m.Height.Ceil()))

	data := pterm.TableData{{"Char", "Name", "Glyph", "Script", "Extent"}}
	for _, e := range report.Entries {
		extent := "-"
		if job, err := x.Job(e.Char); err == nil {
			extent = fmt.Sprintf("%dx%d", job.Size.X, job.Size.Y)
		} else {
			tracer().Errorf("%v", err)
		}
		glyph := fmt.Sprintf("%d", e.Glyph)
		if !e.Mapped {
			glyph = "missing"
		}
		data = append(data, []string{string(e.Char), runenames.Name(e.Char), glyph, fmt.Sprint(e.Script), extent})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if missing := report.Missing(); len(missing) > 0 {
		pterm.Error.Println(fmt.Sprintf("font does not map %d characters: %q", len(missing), string(missing)))
		return
	}
	pterm.Success.Println(fmt.Sprintf("font maps all %d characters", len(report.Entries)))
}
