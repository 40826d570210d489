package lua

import (
	"fmt"
	"strconv"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tapestry/style"
	"github.com/drake/tapestry/tapestry"
)

// decodeVariant converts a script's table into a Variant. It also returns the
// scripted paths so the caller can warm them.
//
//	return {
//	  name = "spiral", rows = 20, columns = 16, cell_width = 1,
//	  row_base = "4",
//	  fill = { text = " ", seed = "row+column", swatches = { "6", "4" } },
//	  tracks = {
//	    { path = function(row) return row % 16 end,
//	      leading = { swatches = { { outer = "1", inner = "15" } }, glyphs = { "*" } } },
//	  },
//	  title = { "spiral" }, title_style = { outer = "4", inner = "15" },
//	  glow = { min = 4, step = 4, glyphs = { "+" } },
//	}
func (e *Engine) decodeVariant(name string, tbl *glua.LTable) (tapestry.Variant, []*scriptPath, error) {
	var v tapestry.Variant
	var err error

	if v.Name, err = optString(tbl, "name", name); err != nil {
		return v, nil, err
	}
	if v.Rows, err = optInt(tbl, "rows", 0); err != nil {
		return v, nil, err
	}
	if v.Columns, err = optInt(tbl, "columns", 0); err != nil {
		return v, nil, err
	}
	if v.CellWidth, err = optInt(tbl, "cell_width", 1); err != nil {
		return v, nil, err
	}
	if v.RowBase, err = toColor(tbl.RawGetString("row_base")); err != nil {
		return v, nil, fmt.Errorf("row_base: %w", err)
	}

	fill, err := optTable(tbl, "fill")
	if err != nil {
		return v, nil, err
	}
	v.Fill.Text = " "
	if v.CellWidth == 2 {
		v.Fill.Text = "  "
	}
	if fill != nil {
		if v.Fill.Text, err = optString(fill, "text", v.Fill.Text); err != nil {
			return v, nil, fmt.Errorf("fill: %w", err)
		}
		if v.Fill.Palette, err = toPalette(fill); err != nil {
			return v, nil, fmt.Errorf("fill: %w", err)
		}
	}

	tracks, err := optTable(tbl, "tracks")
	if err != nil {
		return v, nil, err
	}
	var paths []*scriptPath
	if tracks != nil {
		for i := 1; i <= tracks.Len(); i++ {
			tt, ok := tracks.RawGetInt(i).(*glua.LTable)
			if !ok {
				return v, nil, fmt.Errorf("track %d: want a table", i)
			}
			tr, sp, err := e.toTrack(tt, v.Columns)
			if err != nil {
				return v, nil, fmt.Errorf("track %d: %w", i, err)
			}
			if sp != nil {
				paths = append(paths, sp)
			}
			v.Tracks = append(v.Tracks, tr)
		}
	}

	if v.Title, err = optStrings(tbl, "title"); err != nil {
		return v, nil, err
	}
	if ts, err := optTable(tbl, "title_style"); err != nil {
		return v, nil, err
	} else if ts != nil {
		if v.TitleStyle, err = toSwatch(ts); err != nil {
			return v, nil, fmt.Errorf("title_style: %w", err)
		}
	}

	glow, err := optTable(tbl, "glow")
	if err != nil {
		return v, nil, err
	}
	if glow != nil {
		g := &tapestry.Glow{}
		if g.From, err = optInt(glow, "from", 0); err != nil {
			return v, nil, fmt.Errorf("glow: %w", err)
		}
		if g.Min, err = optInt(glow, "min", 1); err != nil {
			return v, nil, fmt.Errorf("glow: %w", err)
		}
		if g.Step, err = optInt(glow, "step", 1); err != nil {
			return v, nil, fmt.Errorf("glow: %w", err)
		}
		if g.Token, err = toToken(glow, tapestry.SeedColumn); err != nil {
			return v, nil, fmt.Errorf("glow: %w", err)
		}
		v.Glow = g
	}

	if err := v.Validate(); err != nil {
		return v, nil, err
	}
	return v, paths, nil
}

func (e *Engine) toTrack(tbl *glua.LTable, columns int) (tapestry.Track, *scriptPath, error) {
	var tr tapestry.Track
	var sp *scriptPath

	switch p := tbl.RawGetString("path").(type) {
	case *glua.LFunction:
		sp = e.newScriptPath(p)
		tr.Path = sp
	case *glua.LTable:
		path, err := toPath(p, columns)
		if err != nil {
			return tr, nil, fmt.Errorf("path: %w", err)
		}
		tr.Path = path
	default:
		return tr, nil, fmt.Errorf("path: want a function or table, got %s", p.Type())
	}

	lead, err := optTable(tbl, "leading")
	if err != nil {
		return tr, nil, err
	}
	if lead == nil {
		return tr, nil, fmt.Errorf("leading token missing")
	}
	if tr.Leading, err = toToken(lead, tapestry.SeedRow); err != nil {
		return tr, nil, fmt.Errorf("leading: %w", err)
	}

	trail, err := optTable(tbl, "trailing")
	if err != nil {
		return tr, nil, err
	}
	if trail != nil {
		tok, err := toToken(trail, tapestry.SeedRow)
		if err != nil {
			return tr, nil, fmt.Errorf("trailing: %w", err)
		}
		tr.Trailing = &tok
	}
	return tr, sp, nil
}

// toPath decodes the declarative path forms:
//
//	{ zigzag = { segment = 10, base = 4, mirrored = false } }
//	{ legs = { { from = 0, start = 2, step = 1 }, ... } }
func toPath(tbl *glua.LTable, columns int) (tapestry.Path, error) {
	if z, ok := tbl.RawGetString("zigzag").(*glua.LTable); ok {
		seg, err := optInt(z, "segment", 1)
		if err != nil {
			return nil, err
		}
		base, err := optInt(z, "base", 0)
		if err != nil {
			return nil, err
		}
		return tapestry.Zigzag{
			Columns:  columns,
			Segment:  seg,
			Base:     base,
			Mirrored: glua.LVAsBool(z.RawGetString("mirrored")),
		}, nil
	}
	if legs, ok := tbl.RawGetString("legs").(*glua.LTable); ok {
		var s tapestry.Segmented
		for i := 1; i <= legs.Len(); i++ {
			lt, ok := legs.RawGetInt(i).(*glua.LTable)
			if !ok {
				return nil, fmt.Errorf("leg %d: want a table", i)
			}
			var leg tapestry.Leg
			var err error
			if leg.From, err = optInt(lt, "from", 0); err != nil {
				return nil, fmt.Errorf("leg %d: %w", i, err)
			}
			if leg.Start, err = optInt(lt, "start", 0); err != nil {
				return nil, fmt.Errorf("leg %d: %w", i, err)
			}
			if leg.Step, err = optInt(lt, "step", 0); err != nil {
				return nil, fmt.Errorf("leg %d: %w", i, err)
			}
			if n := len(s.Legs); n > 0 && leg.From <= s.Legs[n-1].From {
				return nil, fmt.Errorf("leg %d: from %d does not follow %d", i, leg.From, s.Legs[n-1].From)
			}
			s.Legs = append(s.Legs, leg)
		}
		if len(s.Legs) == 0 {
			return nil, fmt.Errorf("legs is empty")
		}
		return s, nil
	}
	return nil, fmt.Errorf("want zigzag or legs")
}

// toToken decodes swatches, seed, glyphs and glyph_seed from one table.
func toToken(tbl *glua.LTable, seed tapestry.Seed) (tapestry.Token, error) {
	var tok tapestry.Token
	var err error
	if tok.Palette, err = toPaletteSeeded(tbl, seed); err != nil {
		return tok, err
	}
	if tok.Glyphs.Set, err = optStrings(tbl, "glyphs"); err != nil {
		return tok, err
	}
	if tok.Glyphs.Seed, err = toSeed(tbl.RawGetString("glyph_seed"), tok.Palette.Seed); err != nil {
		return tok, fmt.Errorf("glyph_seed: %w", err)
	}
	return tok, nil
}

func toPalette(tbl *glua.LTable) (tapestry.Palette, error) {
	return toPaletteSeeded(tbl, tapestry.SeedRow)
}

func toPaletteSeeded(tbl *glua.LTable, def tapestry.Seed) (tapestry.Palette, error) {
	var p tapestry.Palette
	var err error
	if p.Seed, err = toSeed(tbl.RawGetString("seed"), def); err != nil {
		return p, fmt.Errorf("seed: %w", err)
	}
	sw, err := optTable(tbl, "swatches")
	if err != nil || sw == nil {
		return p, err
	}
	for i := 1; i <= sw.Len(); i++ {
		s, err := toSwatchValue(sw.RawGetInt(i))
		if err != nil {
			return p, fmt.Errorf("swatch %d: %w", i, err)
		}
		p.Swatches = append(p.Swatches, s)
	}
	return p, nil
}

// toSwatchValue accepts { outer = ..., inner = ... } or a bare outer color.
func toSwatchValue(v glua.LValue) (tapestry.Swatch, error) {
	if tbl, ok := v.(*glua.LTable); ok {
		return toSwatch(tbl)
	}
	c, err := toColor(v)
	return tapestry.Swatch{Outer: c}, err
}

func toSwatch(tbl *glua.LTable) (tapestry.Swatch, error) {
	outer, err := toColor(tbl.RawGetString("outer"))
	if err != nil {
		return tapestry.Swatch{}, fmt.Errorf("outer: %w", err)
	}
	inner, err := toColor(tbl.RawGetString("inner"))
	if err != nil {
		return tapestry.Swatch{}, fmt.Errorf("inner: %w", err)
	}
	return tapestry.Swatch{Outer: outer, Inner: inner}, nil
}

func toColor(v glua.LValue) (style.Color, error) {
	switch c := v.(type) {
	case *glua.LNilType:
		return "", nil
	case glua.LString:
		return style.Color(c), nil
	case glua.LNumber:
		return style.Color(strconv.Itoa(int(c))), nil
	}
	return "", fmt.Errorf("want a color string or number, got %s", v.Type())
}

func toSeed(v glua.LValue, def tapestry.Seed) (tapestry.Seed, error) {
	if v == glua.LNil {
		return def, nil
	}
	switch glua.LVAsString(v) {
	case "row":
		return tapestry.SeedRow, nil
	case "column":
		return tapestry.SeedColumn, nil
	case "row+column":
		return tapestry.SeedRowColumn, nil
	}
	return def, fmt.Errorf("unknown seed %q (want row, column or row+column)", v.String())
}

func optInt(tbl *glua.LTable, key string, def int) (int, error) {
	switch v := tbl.RawGetString(key).(type) {
	case *glua.LNilType:
		return def, nil
	case glua.LNumber:
		return int(v), nil
	default:
		return def, fmt.Errorf("%s: want a number, got %s", key, v.Type())
	}
}

func optString(tbl *glua.LTable, key, def string) (string, error) {
	switch v := tbl.RawGetString(key).(type) {
	case *glua.LNilType:
		return def, nil
	case glua.LString:
		return string(v), nil
	default:
		return def, fmt.Errorf("%s: want a string, got %s", key, v.Type())
	}
}

func optTable(tbl *glua.LTable, key string) (*glua.LTable, error) {
	switch v := tbl.RawGetString(key).(type) {
	case *glua.LNilType:
		return nil, nil
	case *glua.LTable:
		return v, nil
	default:
		return nil, fmt.Errorf("%s: want a table, got %s", key, v.Type())
	}
}

func optStrings(tbl *glua.LTable, key string) ([]string, error) {
	list, err := optTable(tbl, key)
	if err != nil || list == nil {
		return nil, err
	}
	out := make([]string, 0, list.Len())
	for i := 1; i <= list.Len(); i++ {
		s, ok := list.RawGetInt(i).(glua.LString)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: want a string", key, i)
		}
		out = append(out, string(s))
	}
	return out, nil
}
