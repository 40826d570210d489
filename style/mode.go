package style

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode controls whether output is colored.
type Mode int

const (
	ModeAlways Mode = iota
	ModeAuto
	ModeNever
)

// ParseMode parses "always", "auto" or "never".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "always", "":
		return ModeAlways, nil
	case "auto":
		return ModeAuto, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAlways, fmt.Errorf("unknown color mode %q (want always, auto or never)", s)
}

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeNever:
		return "never"
	default:
		return "always"
	}
}

// Profile picks the color profile for output written to fd.
// Auto mode disables color when fd is not a terminal.
func (m Mode) Profile(fd uintptr) termenv.Profile {
	switch m {
	case ModeNever:
		return termenv.Ascii
	case ModeAuto:
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	default:
		return termenv.TrueColor
	}
}
