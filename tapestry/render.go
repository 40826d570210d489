package tapestry

import (
	"bufio"
	"io"
	"strings"

	"github.com/drake/tapestry/style"
)

// Renderer draws one Variant. It holds no mutable state, so every call with
// the same row returns the same string.
type Renderer struct {
	v    Variant
	res  style.Resolver
	base string
}

// New validates v and returns a renderer emitting colors through res.
func New(v Variant, res style.Resolver) (*Renderer, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{v: v, res: res, base: res.Background(v.RowBase)}, nil
}

// Variant returns the variant being rendered.
func (r *Renderer) Variant() Variant {
	return r.v
}

// Tokens returns the leading token column of every track at row, clamped onto
// the canvas, in track order.
func (r *Renderer) Tokens(row int) []int {
	cols := make([]int, len(r.v.Tracks))
	for i, tr := range r.v.Tracks {
		cols[i] = clamp(tr.Path.Column(row), r.v.Columns)
	}
	return cols
}

// owners decides which token paints each column of row; nil means fill.
// Leading cells go first in track order, then trailing cells. A column that
// is already claimed keeps its first owner.
func (r *Renderer) owners(row int) []*Token {
	owners := make([]*Token, r.v.Columns)
	leads := r.Tokens(row)
	for i, col := range leads {
		if owners[col] == nil {
			owners[col] = &r.v.Tracks[i].Leading
		}
	}
	for i, col := range leads {
		tr := &r.v.Tracks[i]
		if tr.Trailing == nil || col+1 >= r.v.Columns {
			continue
		}
		if owners[col+1] == nil {
			owners[col+1] = tr.Trailing
		}
	}
	return owners
}

// Row renders one canvas row.
func (r *Renderer) Row(row int) string {
	var b strings.Builder
	b.WriteString(r.base)
	for col, tok := range r.owners(row) {
		if tok != nil {
			b.WriteString(r.tokenCell(tok, row, col))
		} else {
			b.WriteString(r.fillCell(row, col))
		}
	}
	b.WriteString(r.res.Reset())
	return b.String()
}

// Canvas renders every row, top to bottom.
func (r *Renderer) Canvas() []string {
	lines := make([]string, r.v.Rows)
	for row := range lines {
		lines[row] = r.Row(row)
	}
	return lines
}

// Lines returns the title, the canvas and the glow, in print order.
func (r *Renderer) Lines() []string {
	lines := r.TitleLines()
	lines = append(lines, r.Canvas()...)
	return append(lines, r.GlowLines()...)
}

// WriteTo writes every line to w, newline terminated.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range r.Lines() {
		m, err := bw.WriteString(line + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

func (r *Renderer) tokenCell(tok *Token, row, col int) string {
	sw := tok.Palette.At(row, col)
	return r.paint(sw, tok.Glyphs.At(row, col))
}

func (r *Renderer) fillCell(row, col int) string {
	sw := r.v.Fill.Palette.At(row, col)
	if sw.IsZero() {
		return r.v.Fill.Text
	}
	return r.paint(sw, r.v.Fill.Text)
}

// paint styles s with sw, then resets and restores the row background.
func (r *Renderer) paint(sw Swatch, s string) string {
	return r.res.Background(sw.Outer) + r.res.Foreground(sw.Inner) + s + r.res.Reset() + r.base
}
