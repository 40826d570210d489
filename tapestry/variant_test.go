package tapestry

import (
	"errors"
	"testing"
)

func TestPaletteIsPeriodic(t *testing.T) {
	for _, name := range Names() {
		v, _ := Lookup(name)
		for i, tr := range v.Tracks {
			p := tr.Leading.Palette
			g := tr.Leading.Glyphs
			for row := 0; row < v.Rows; row++ {
				for _, col := range []int{0, 5} {
					if p.At(row, col) != p.At(row+p.Period(), col) {
						t.Errorf("%s track %d: palette differs between row %d and %d", name, i, row, row+p.Period())
					}
					if g.At(row, col) != g.At(row+len(g.Set), col) {
						t.Errorf("%s track %d: glyph differs between row %d and %d", name, i, row, row+len(g.Set))
					}
				}
			}
		}
	}
}

func TestPaletteLookup(t *testing.T) {
	p := Palette{Seed: SeedRow, Swatches: []Swatch{{Outer: "1"}, {Outer: "2"}, {Outer: "3"}}}
	tests := []struct {
		row  int
		want Swatch
	}{
		{0, Swatch{Outer: "1"}},
		{4, Swatch{Outer: "2"}},
		{-1, Swatch{Outer: "3"}},
	}
	for _, tt := range tests {
		if got := p.At(tt.row, 99); got != tt.want {
			t.Errorf("At(%d) = %+v, want %+v", tt.row, got, tt.want)
		}
	}
	if got := (Palette{}).At(3, 3); !got.IsZero() {
		t.Errorf("empty palette returned %+v", got)
	}
}

func TestSeedValue(t *testing.T) {
	if got := SeedRow.value(3, 4); got != 3 {
		t.Errorf("SeedRow = %d", got)
	}
	if got := SeedColumn.value(3, 4); got != 4 {
		t.Errorf("SeedColumn = %d", got)
	}
	if got := SeedRowColumn.value(3, 4); got != 7 {
		t.Errorf("SeedRowColumn = %d", got)
	}
}

func TestCelestialGlyphSelection(t *testing.T) {
	v := Celestial()
	primary := v.Tracks[0].Leading.Glyphs
	if got := primary.At(0, 4); got != glyphStar {
		t.Errorf("row 0 glyph = %q, want star", got)
	}
	if got := primary.At(1, 5); got != glyphOrbit {
		t.Errorf("row 1 glyph = %q, want orbit", got)
	}
	secondary := v.Tracks[1].Leading.Glyphs
	// row 1 + column 29 = 30, a multiple of 3
	if got := secondary.At(1, 29); got != glyphStar {
		t.Errorf("secondary glyph = %q, want star", got)
	}
}

func TestBuiltinsValidate(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("got %d built-in variants, want 4", len(names))
	}
	for _, name := range names {
		v, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if v.Name != name {
			t.Errorf("variant %q reports name %q", name, v.Name)
		}
		if err := v.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup of unknown variant succeeded")
	}
}

func TestValidateRejects(t *testing.T) {
	good := func() Variant {
		return Variant{
			Name: "t", Rows: 2, Columns: 3, CellWidth: 1,
			Tracks: []Track{{Path: PathFunc(func(int) int { return 0 }), Leading: Token{Glyphs: Glyphs{Set: []string{"*"}}}}},
			Fill:   Fill{Text: " "},
		}
	}
	if err := good().Validate(); err != nil {
		t.Fatalf("baseline variant invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Variant)
	}{
		{"zero rows", func(v *Variant) { v.Rows = 0 }},
		{"negative columns", func(v *Variant) { v.Columns = -1 }},
		{"zero cell width", func(v *Variant) { v.CellWidth = 0 }},
		{"no tracks", func(v *Variant) { v.Tracks = nil }},
		{"nil path", func(v *Variant) { v.Tracks[0].Path = nil }},
		{"no glyphs", func(v *Variant) { v.Tracks[0].Leading.Glyphs.Set = nil }},
		{"wide glyph", func(v *Variant) { v.Tracks[0].Leading.Glyphs.Set = []string{"\U0001F600"} }},
		{"narrow filler", func(v *Variant) { v.CellWidth = 2; v.Tracks[0].Leading.Glyphs.Set = []string{"**"} }},
		{"bad trailing", func(v *Variant) { v.Tracks[0].Trailing = &Token{} }},
		{"bad glow step", func(v *Variant) { v.Glow = &Glow{Step: 0, Token: v.Tracks[0].Leading} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := good()
			tt.mutate(&v)
			err := v.Validate()
			if !errors.Is(err, ErrInvalidVariant) {
				t.Fatalf("got %v, want ErrInvalidVariant", err)
			}
		})
	}
}
