// Package lua loads tapestry variants from Lua scripts.
//
// A script returns a table describing the variant. Track paths may be Lua
// functions, which are evaluated once per row when the script loads and
// memoised afterwards.
package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tapestry/tapestry"
)

const defaultCacheSize = 256

// pathKey identifies one evaluation of a scripted path.
type pathKey struct {
	path int
	row  int
}

// Engine wraps gopher-lua and manages the VM lifecycle.
// Variants loaded from an Engine call back into its VM, so the Engine must
// stay open for as long as they are rendered.
type Engine struct {
	L         *glua.LState
	pathCache *lru.Cache[pathKey, int]
	cacheSize int

	// Cached table reference
	apiTable *glua.LTable

	nextPath int
}

// NewEngine creates an Engine. Call Init before loading scripts.
func NewEngine() *Engine {
	cache, _ := lru.New[pathKey, int](defaultCacheSize)
	return &Engine{pathCache: cache, cacheSize: defaultCacheSize}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()
	e.pathCache.Purge()
	e.nextPath = 0

	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// CachedColumns reports how many path evaluations are memoised.
func (e *Engine) CachedColumns() int {
	return e.pathCache.Len()
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	_, err := e.evalString(name, code)
	return err
}

// LoadVariantString runs code and decodes the table it returns.
func (e *Engine) LoadVariantString(name, code string) (tapestry.Variant, error) {
	ret, err := e.evalString(name, code)
	if err != nil {
		return tapestry.Variant{}, err
	}
	return e.variant(name, ret)
}

// LoadVariant runs the script at path and decodes the table it returns.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) LoadVariant(path string) (tapestry.Variant, error) {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return tapestry.Variant{}, err
	}
	dir := filepath.Dir(absPath)

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(dir+"/?.lua;"+oldPath))
	defer e.L.SetField(pkg, "path", glua.LString(oldPath))

	fn, err := e.L.LoadFile(absPath)
	if err != nil {
		return tapestry.Variant{}, err
	}
	ret, err := e.call(fn)
	if err != nil {
		return tapestry.Variant{}, err
	}
	name := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
	return e.variant(name, ret)
}

func (e *Engine) evalString(name, code string) (glua.LValue, error) {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return glua.LNil, err
	}
	return e.call(fn)
}

// call runs a chunk and returns its first result.
func (e *Engine) call(fn *glua.LFunction) (glua.LValue, error) {
	e.L.Push(fn)
	if err := e.L.PCall(0, 1, nil); err != nil {
		return glua.LNil, err
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)
	return ret, nil
}

// variant decodes a script result and warms every scripted path.
func (e *Engine) variant(name string, ret glua.LValue) (tapestry.Variant, error) {
	tbl, ok := ret.(*glua.LTable)
	if !ok {
		return tapestry.Variant{}, fmt.Errorf("%s: script returned %s, want a table", name, ret.Type())
	}
	v, paths, err := e.decodeVariant(name, tbl)
	if err != nil {
		return tapestry.Variant{}, fmt.Errorf("%s: %w", name, err)
	}

	// Keep every row of every loaded path resident.
	if want := e.pathCache.Len() + v.Rows*len(paths); want > e.cacheSize {
		e.pathCache.Resize(want)
		e.cacheSize = want
	}
	for _, p := range paths {
		if err := p.warm(v.Rows); err != nil {
			return tapestry.Variant{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	return v, nil
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.apiTable = e.L.NewTable()
	e.L.SetGlobal("tapestry", e.apiTable)

	e.registerCoreFuncs()
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
