/*
Package glyphpng dumps the glyphs of a scalable font into one PNG image per
character.

For every character of an export alphabet (by default the ASCII letters and
digits, in the order A–Z, a–z, 0–9) the exporter

▪︎ measures the extent of the character at a given point size,

▪︎ allocates a transparent canvas of exactly that size,

▪︎ draws the character in a fill color (default opaque white) at a fixed offset,

▪︎ hands the canvas to a GlyphSink, which usually writes "<char>.png".

The images are meant as sprite sheets for bitmap-font renderers in games, which
load one texture per character and color-modulate it at draw time. That's why
glyphs are drawn in white on a transparent background.

# Measurement

Text is anchored at the top-left corner of the font's ascender line. The extent
of a character is

	width  = max(advance, right edge of ink), rounded up
	height = ascent + depth of ink below the baseline, both rounded up

Drawing offsets are applied to the pen position only; they do not change the
extent. With the default offset of (-2, 0), glyphs are shifted two pixels to the
left, which trims the left side bearing of most Latin fonts.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphpng
