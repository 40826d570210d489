// Package tapestry renders zigzag token patterns onto a fixed ANSI canvas.
//
// A Variant is an immutable description of one tapestry: canvas size, the
// tracks that carry tokens across it, and the palettes that color every cell.
// A Renderer turns a Variant into lines of text, one per row, deterministically.
package tapestry

import (
	"errors"
	"fmt"

	"github.com/drake/tapestry/style"
	"github.com/drake/tapestry/text"
)

// ErrInvalidVariant is wrapped by every error Validate returns.
var ErrInvalidVariant = errors.New("invalid variant")

// Seed selects which coordinate drives a palette or glyph lookup.
type Seed int

const (
	SeedRow       Seed = iota // row index
	SeedColumn                // column index
	SeedRowColumn             // row + column, for diagonal banding
)

func (s Seed) value(row, col int) int {
	switch s {
	case SeedColumn:
		return col
	case SeedRowColumn:
		return row + col
	default:
		return row
	}
}

// Swatch is one palette entry. Outer paints the cell background (the aura),
// Inner the glyph drawn on top of it.
type Swatch struct {
	Outer style.Color
	Inner style.Color
}

// IsZero reports whether the swatch paints nothing.
func (s Swatch) IsZero() bool {
	return s.Outer == "" && s.Inner == ""
}

// Palette cycles through Swatches; the period is len(Swatches).
type Palette struct {
	Seed     Seed
	Swatches []Swatch
}

// Period returns the palette's cycle length.
func (p Palette) Period() int {
	return len(p.Swatches)
}

// At returns the swatch for a cell.
func (p Palette) At(row, col int) Swatch {
	if len(p.Swatches) == 0 {
		return Swatch{}
	}
	return p.Swatches[mod(p.Seed.value(row, col), len(p.Swatches))]
}

// Glyphs cycles through glyph strings the same way Palette cycles colors.
type Glyphs struct {
	Seed Seed
	Set  []string
}

// At returns the glyph for a cell.
func (g Glyphs) At(row, col int) string {
	if len(g.Set) == 0 {
		return ""
	}
	return g.Set[mod(g.Seed.value(row, col), len(g.Set))]
}

// Token is how a token cell is painted.
type Token struct {
	Palette Palette
	Glyphs  Glyphs
}

// Track is one path across the canvas and the tokens it lays down.
// Trailing, when set, is painted in the cell right after the leading one.
type Track struct {
	Path     Path
	Leading  Token
	Trailing *Token
}

// Fill paints every cell no token claims.
type Fill struct {
	Palette Palette
	Text    string
}

// Glow is a run of centered banners printed after the canvas. Widths start at
// From (Columns when zero) and shrink by Step while they stay at or above Min.
type Glow struct {
	From  int
	Min   int
	Step  int
	Token Token
}

// Variant is the complete, immutable description of one tapestry.
type Variant struct {
	Name      string
	Rows      int
	Columns   int
	CellWidth int // display columns per cell

	// RowBase is the background every line starts with and every styled
	// cell restores before the next one.
	RowBase style.Color

	Tracks []Track
	Fill   Fill

	Title      []string
	TitleStyle Swatch
	Glow       *Glow
}

// Width returns the display width of a rendered line.
func (v Variant) Width() int {
	return v.Columns * v.CellWidth
}

// Validate checks the variant is renderable.
func (v Variant) Validate() error {
	if v.Rows <= 0 || v.Columns <= 0 {
		return fmt.Errorf("%w %q: canvas %dx%d", ErrInvalidVariant, v.Name, v.Rows, v.Columns)
	}
	if v.CellWidth < 1 {
		return fmt.Errorf("%w %q: cell width %d", ErrInvalidVariant, v.Name, v.CellWidth)
	}
	if len(v.Tracks) == 0 {
		return fmt.Errorf("%w %q: no tracks", ErrInvalidVariant, v.Name)
	}
	if w := text.Width(v.Fill.Text); w != v.CellWidth {
		return fmt.Errorf("%w %q: filler %q is %d wide, cells are %d", ErrInvalidVariant, v.Name, v.Fill.Text, w, v.CellWidth)
	}
	for i, tr := range v.Tracks {
		if tr.Path == nil {
			return fmt.Errorf("%w %q: track %d has no path", ErrInvalidVariant, v.Name, i)
		}
		if err := v.checkToken(fmt.Sprintf("track %d leading", i), tr.Leading); err != nil {
			return err
		}
		if tr.Trailing != nil {
			if err := v.checkToken(fmt.Sprintf("track %d trailing", i), *tr.Trailing); err != nil {
				return err
			}
		}
	}
	if v.Glow != nil {
		if v.Glow.Step <= 0 {
			return fmt.Errorf("%w %q: glow step %d", ErrInvalidVariant, v.Name, v.Glow.Step)
		}
		if err := v.checkToken("glow", v.Glow.Token); err != nil {
			return err
		}
	}
	return nil
}

func (v Variant) checkToken(where string, tok Token) error {
	if len(tok.Glyphs.Set) == 0 {
		return fmt.Errorf("%w %q: %s has no glyphs", ErrInvalidVariant, v.Name, where)
	}
	for _, g := range tok.Glyphs.Set {
		if w := text.Width(g); w != v.CellWidth {
			return fmt.Errorf("%w %q: %s glyph %q is %d wide, cells are %d", ErrInvalidVariant, v.Name, where, g, w, v.CellWidth)
		}
	}
	return nil
}

// mod is the non-negative remainder of a / n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
