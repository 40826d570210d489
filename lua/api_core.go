package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tapestry/tapestry"
	"github.com/drake/tapestry/text"
)

// registerCoreFuncs registers the tapestry.* helpers available to scripts.
func (e *Engine) registerCoreFuncs() {
	// tapestry.zigzag(row, columns, segment, base [, mirrored]): triangle wave column
	e.L.SetField(e.apiTable, "zigzag", e.L.NewFunction(func(L *glua.LState) int {
		z := tapestry.Zigzag{
			Columns:  L.CheckInt(2),
			Segment:  L.CheckInt(3),
			Base:     L.CheckInt(4),
			Mirrored: L.OptBool(5, false),
		}
		L.Push(glua.LNumber(z.Column(L.CheckInt(1))))
		return 1
	}))

	// tapestry.clamp(v, lo, hi): bound v into [lo, hi]
	e.L.SetField(e.apiTable, "clamp", e.L.NewFunction(func(L *glua.LState) int {
		v, lo, hi := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
		if lo > hi {
			L.ArgError(2, "lo must not exceed hi")
			return 0
		}
		L.Push(glua.LNumber(min(max(v, lo), hi)))
		return 1
	}))

	// tapestry.width(s): display width of s, ignoring escape sequences
	e.L.SetField(e.apiTable, "width", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LNumber(text.Width(L.CheckString(1))))
		return 1
	}))
}
