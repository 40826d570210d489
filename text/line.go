package text

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// cond measures with East Asian ambiguous runes as narrow, whatever the locale says.
var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Line represents a rendered line with both raw (ANSI) and clean (stripped) versions.
type Line struct {
	Raw   string // Line as written to the terminal
	Clean string // ANSI-stripped version
	Width int    // Display columns of Clean
}

// NewLine creates a Line from raw text, stripping ANSI codes and measuring the rest.
func NewLine(raw string) Line {
	clean := StripANSI(raw)
	return Line{Raw: raw, Clean: clean, Width: cond.StringWidth(clean)}
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Width returns the visible display width of s, ignoring escape sequences.
func Width(s string) int {
	return cond.StringWidth(StripANSI(s))
}

// Truncate cuts plain text down to at most w display columns.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return cond.Truncate(s, w, "")
}
