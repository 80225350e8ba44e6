package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphpng"
	"github.com/npillmayer/glyphpng/preview"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runInspectCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
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
	opts.Offset = image.Pt(mustFlagInt(flags["offset-x"], "offset-x"), mustFlagInt(flags["offset-y"], "offset-y"))
	x, err := glyphpng.NewExporter(f, opts)
	if err != nil {
		fatalf("%v", err)
	}
	defer x.Close()

	repl, err := readline.New("glyph > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	eff := x.Options()
	pterm.Info.Println(fmt.Sprintf("Inspecting %s at %gpt @ %g dpi", f.Fontname, eff.Size, eff.DPI))
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the REPL
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		for _, r := range line {
			inspectGlyph(x, r)
		}
	}
	pterm.Info.Println("Good bye!")
}

func inspectGlyph(x *glyphpng.Exporter, r rune) {
	job, img, err := x.Render(r)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Println(fmt.Sprintf("%q  %dx%d  offset=%v", r, job.Size.X, job.Size.Y, job.Offset))
	pterm.Println(preview.Framed(img))
}
