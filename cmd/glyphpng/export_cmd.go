package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/npillmayer/glyphpng"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runExportCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	configureTracing(mustFlagString(flags["trace"], "trace"))
	opts := glyphpng.DefaultOptions()
	opts.FontPath = mustFlagString(flags["font"], "font")
	if opts.FontPath == "" {
		fatalf("font path is required")
	}
	opts.Size = float64(mustFlagInt(flags["size"], "size"))
	opts.DPI = float64(mustFlagInt(flags["dpi"], "dpi"))
	if opts.Size <= 0 || opts.DPI <= 0 {
		fatalf("--size and --dpi must be > 0")
	}
	opts.Offset = image.Pt(mustFlagInt(flags["offset-x"], "offset-x"), mustFlagInt(flags["offset-y"], "offset-y"))
	opts.Alphabet = mustAlphabet(flags["alphabet"])
	opts.Strict = mustFlagBool(flags["strict"], "strict")
	outDir := mustFlagString(flags["out"], "out")

	sink := glyphpng.NewDirSink(outDir)
	n, err := glyphpng.Export(opts, sink)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Success.Println(fmt.Sprintf("wrote %d glyphs to %s", n, sink.Dir))
}

func mustAlphabet(flag commando.FlagValue) []rune {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --alphabet flag: %v", err)
	}
	alphabet, err := glyphpng.ParseAlphabet(s)
	if err != nil {
		fatalf("%v", err)
	}
	return alphabet
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}
