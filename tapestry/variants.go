package tapestry

import (
	"sort"

	"github.com/drake/tapestry/style"
)

// Glyphs shared by the built-in variants.
const (
	glyphStar   = "\u272A"
	glyphOrbit  = "\u25CF"
	glyphBlack  = "\u2605"
	glyphWhite  = "\u2606"
	glyphRing   = "\u25C9"
	glyphHollow = "\u25CB"
	glyphGrin   = "\U0001F600"
	glyphSmile  = "\U0001F60A"
	glyphGlow   = "\U0001F31F"
	glyphDizzy  = "\U0001F4AB"
)

// Basic ANSI colors by index.
const (
	black       style.Color = "0"
	red         style.Color = "1"
	green       style.Color = "2"
	yellow      style.Color = "3"
	blue        style.Color = "4"
	magenta     style.Color = "5"
	cyan        style.Color = "6"
	white       style.Color = "7"
	gray        style.Color = "8"
	brightWhite style.Color = "15"
	navy        style.Color = "18"
)

// Celestial is the twin zigzag tapestry: a primary path climbing from column
// 4 and its mirror image, framed by a title and a descending glow.
func Celestial() Variant {
	const rows, cols = 40, 36
	redOnWhite := Swatch{Outer: red, Inner: brightWhite}
	cyanOnWhite := Swatch{Outer: cyan, Inner: brightWhite}
	whiteOnDark := Swatch{Outer: white, Inner: black}
	symbols := []string{glyphStar, glyphOrbit, glyphOrbit}

	return Variant{
		Name:      "celestial",
		Rows:      rows,
		Columns:   cols,
		CellWidth: 1,
		Tracks: []Track{
			{
				Path: Zigzag{Columns: cols, Segment: 10, Base: 4},
				Leading: Token{
					Palette: Palette{Seed: SeedRow, Swatches: []Swatch{redOnWhite, redOnWhite, cyanOnWhite, cyanOnWhite}},
					Glyphs:  Glyphs{Seed: SeedRow, Set: symbols},
				},
			},
			{
				Path: Zigzag{Columns: cols, Segment: 10, Base: 4, Mirrored: true},
				Leading: Token{
					Palette: Palette{Seed: SeedRow, Swatches: []Swatch{cyanOnWhite, cyanOnWhite, whiteOnDark, whiteOnDark}},
					Glyphs:  Glyphs{Seed: SeedRowColumn, Set: symbols},
				},
			},
		},
		Fill: Fill{
			Text: " ",
			Palette: Palette{Seed: SeedRowColumn, Swatches: []Swatch{
				{Outer: cyan}, {Outer: blue}, {Outer: blue}, {Outer: blue}, {Outer: blue}, {Outer: blue}, {Outer: blue},
			}},
		},
		Title:      []string{"", "Sword & Supper AFK presents", "Celestial Supper Stream", ""},
		TitleStyle: Swatch{Outer: blue, Inner: brightWhite},
		Glow: &Glow{
			Min:  10,
			Step: 5,
			Token: Token{
				Palette: Palette{Seed: SeedColumn, Swatches: []Swatch{redOnWhite, cyanOnWhite}},
				Glyphs:  Glyphs{Seed: SeedColumn, Set: []string{glyphStar, glyphOrbit}},
			},
		},
	}
}

// SmileTrail walks a grinning face up, down and up again across a narrow
// navy canvas, trailing a sparkle behind it. Cells are two columns wide.
func SmileTrail() Variant {
	return Variant{
		Name:      "smiletrail",
		Rows:      40,
		Columns:   20,
		CellWidth: 2,
		RowBase:   navy,
		Tracks: []Track{{
			Path: Segmented{Legs: []Leg{
				{From: 0, Start: 2, Step: 1},
				{From: 14, Start: 15, Step: -1},
				{From: 26, Start: 2, Step: 1},
			}},
			Leading: Token{
				Palette: Palette{Seed: SeedRow, Swatches: []Swatch{{Outer: yellow}, {Outer: magenta}, {Outer: green}}},
				Glyphs:  Glyphs{Seed: SeedRow, Set: []string{glyphGrin, glyphSmile}},
			},
			Trailing: &Token{
				Glyphs: Glyphs{Seed: SeedRow, Set: []string{glyphGlow, glyphDizzy}},
			},
		}},
		Fill:       Fill{Text: "  "},
		Title:      []string{"smile trail"},
		TitleStyle: Swatch{Outer: navy, Inner: yellow},
	}
}

// RingToken bounces a ring down a dark canvas. Each ring sits in a colored
// aura blended from ember to violet, with the ring itself drawn on top.
func RingToken() Variant {
	const cols = 30
	aura := style.MustGradient("#ff6f3c", "#7b2ff7", 6)
	swatches := make([]Swatch, len(aura))
	for i, c := range aura {
		inner := brightWhite
		if i%2 == 1 {
			inner = style.Color("11")
		}
		swatches[i] = Swatch{Outer: c, Inner: inner}
	}

	return Variant{
		Name:      "ringtoken",
		Rows:      40,
		Columns:   cols,
		CellWidth: 1,
		RowBase:   black,
		Tracks: []Track{{
			Path: Zigzag{Columns: cols, Segment: 12, Base: 3},
			Leading: Token{
				Palette: Palette{Seed: SeedRow, Swatches: swatches},
				Glyphs:  Glyphs{Seed: SeedRow, Set: []string{glyphRing, glyphHollow}},
			},
		}},
		Fill: Fill{
			Text:    " ",
			Palette: Palette{Seed: SeedRowColumn, Swatches: []Swatch{{Outer: gray}, {}, {}, {}, {}}},
		},
	}
}

// Braid crosses two star paths over a banded background: every seventh row
// is highlighted.
func Braid() Variant {
	const cols = 24
	stars := []string{glyphBlack, glyphWhite}
	band := make([]Swatch, 7)
	for i := range band {
		band[i] = Swatch{Outer: blue}
	}
	band[0] = Swatch{Outer: magenta}

	return Variant{
		Name:      "braid",
		Rows:      40,
		Columns:   cols,
		CellWidth: 1,
		Tracks: []Track{
			{
				Path: Zigzag{Columns: cols, Segment: 8, Base: 2},
				Leading: Token{
					Palette: Palette{Seed: SeedRow, Swatches: []Swatch{{Outer: yellow, Inner: black}, {Outer: red, Inner: brightWhite}}},
					Glyphs:  Glyphs{Seed: SeedRow, Set: stars},
				},
			},
			{
				Path: Zigzag{Columns: cols, Segment: 8, Base: 2, Mirrored: true},
				Leading: Token{
					Palette: Palette{Seed: SeedRow, Swatches: []Swatch{{Outer: cyan, Inner: black}, {Outer: green, Inner: black}, {Outer: white, Inner: black}}},
					Glyphs:  Glyphs{Seed: SeedRowColumn, Set: stars},
				},
			},
		},
		Fill: Fill{Text: " ", Palette: Palette{Seed: SeedRow, Swatches: band}},
		Glow: &Glow{
			Min:  4,
			Step: 4,
			Token: Token{
				Palette: Palette{Seed: SeedColumn, Swatches: []Swatch{{Outer: yellow, Inner: black}, {Outer: magenta, Inner: brightWhite}}},
				Glyphs:  Glyphs{Seed: SeedColumn, Set: stars},
			},
		},
	}
}

var builtins = map[string]func() Variant{
	"celestial":  Celestial,
	"smiletrail": SmileTrail,
	"ringtoken":  RingToken,
	"braid":      Braid,
}

// Lookup returns the built-in variant called name.
func Lookup(name string) (Variant, bool) {
	fn, ok := builtins[name]
	if !ok {
		return Variant{}, false
	}
	return fn(), true
}

// Names lists the built-in variants in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
