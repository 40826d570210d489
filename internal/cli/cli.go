// Package cli wires flags, variants and the renderer into the tapestry binaries.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/drake/tapestry/config"
	"github.com/drake/tapestry/debug"
	"github.com/drake/tapestry/lua"
	"github.com/drake/tapestry/style"
	"github.com/drake/tapestry/tapestry"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options selects what to render and how.
type Options struct {
	Variant string
	Script  string
	Mode    style.Mode
}

// Render draws the selected variant to out, colored for the file descriptor fd.
func Render(opts Options, out io.Writer, fd uintptr, logger *log.Logger) error {
	engine := lua.NewEngine()
	if err := engine.Init(); err != nil {
		return err
	}
	defer engine.Close()

	v, err := resolve(engine, opts)
	if err != nil {
		return err
	}

	r, err := tapestry.New(v, style.NewResolver(opts.Mode.Profile(fd)))
	if err != nil {
		return err
	}

	mon := debug.Start(logger, v.Name)
	n, err := r.WriteTo(out)
	if err != nil {
		return fmt.Errorf("write %s: %w", v.Name, err)
	}
	mon.Done(len(r.Lines()), n)
	return nil
}

// resolve finds a variant: an explicit script first, then a built-in, then a
// user script named after the variant.
func resolve(engine *lua.Engine, opts Options) (tapestry.Variant, error) {
	if opts.Script != "" {
		return engine.LoadVariant(config.ScriptPath(opts.Script))
	}
	if v, ok := tapestry.Lookup(opts.Variant); ok {
		return v, nil
	}
	path := config.ScriptPath(opts.Variant)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tapestry.Variant{}, fmt.Errorf("unknown variant %q (built-ins: %s)", opts.Variant, strings.Join(tapestry.Names(), ", "))
		}
		return tapestry.Variant{}, err
	}
	return engine.LoadVariant(path)
}

// Main runs the tapestry command line and returns the exit status.
func Main(args []string, stdout *os.File, stderr io.Writer) int {
	return run(args, stdout, stdout.Fd(), stderr)
}

func run(args []string, stdout io.Writer, fd uintptr, stderr io.Writer) int {
	fs := flag.NewFlagSet("tapestry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	variant := fs.String("variant", "celestial", "Variant to render (built-in name or user script name)")
	script := fs.String("script", "", "Render the Lua variant script at this path")
	color := fs.String("color", "always", "Color output: always, auto or never")
	list := fs.Bool("list", false, "List built-in variants and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if *list {
		for _, name := range tapestry.Names() {
			fmt.Fprintln(stdout, name)
		}
		return ExitOK
	}

	mode, err := style.ParseMode(*color)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	opts := Options{Variant: *variant, Script: *script, Mode: mode}
	if err := Render(opts, stdout, fd, debug.NewLogger(stderr)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// RenderBuiltin draws one built-in variant to stdout with colors on; it backs
// the single-variant binaries.
func RenderBuiltin(name string) int {
	opts := Options{Variant: name, Mode: style.ModeAlways}
	if err := Render(opts, os.Stdout, os.Stdout.Fd(), debug.NewLogger(os.Stderr)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}
