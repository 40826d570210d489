package lua

import (
	"fmt"

	glua "github.com/yuin/gopher-lua"
)

// scriptPath is a tapestry.Path backed by a Lua function.
type scriptPath struct {
	e  *Engine
	id int
	fn *glua.LFunction
}

func (e *Engine) newScriptPath(fn *glua.LFunction) *scriptPath {
	e.nextPath++
	return &scriptPath{e: e, id: e.nextPath, fn: fn}
}

// Column returns the memoised column for row, calling into Lua on a miss.
// Errors were already reported by warm, so a failing call yields column 0.
func (p *scriptPath) Column(row int) int {
	key := pathKey{path: p.id, row: row}
	if col, ok := p.e.pathCache.Get(key); ok {
		return col
	}
	col, err := p.call(row)
	if err != nil {
		return 0
	}
	p.e.pathCache.Add(key, col)
	return col
}

// warm evaluates every row once so script errors surface at load time.
func (p *scriptPath) warm(rows int) error {
	for row := 0; row < rows; row++ {
		col, err := p.call(row)
		if err != nil {
			return err
		}
		p.e.pathCache.Add(pathKey{path: p.id, row: row}, col)
	}
	return nil
}

func (p *scriptPath) call(row int) (int, error) {
	L := p.e.L
	if L == nil {
		return 0, fmt.Errorf("path %d: engine closed", p.id)
	}
	if err := L.CallByParam(glua.P{
		Fn:      p.fn,
		NRet:    1,
		Protect: true,
	}, glua.LNumber(row)); err != nil {
		return 0, fmt.Errorf("path(%d): %w", row, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(glua.LNumber)
	if !ok {
		return 0, fmt.Errorf("path(%d) returned %s, want a number", row, ret.Type())
	}
	return int(n), nil
}
