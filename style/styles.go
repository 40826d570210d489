// Package style turns palette colors into terminal escape sequences.
package style

import "github.com/muesli/termenv"

// Color is an ANSI index ("0"-"255") or a hex triplet ("#rrggbb").
// The empty Color leaves the current attribute alone.
type Color string

// Reset restores default attributes.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// Resolver renders Colors for one terminal color profile.
type Resolver struct {
	Profile termenv.Profile
}

// NewResolver returns a Resolver for the given profile.
func NewResolver(p termenv.Profile) Resolver {
	return Resolver{Profile: p}
}

// Background returns the SGR sequence painting c behind the text.
func (r Resolver) Background(c Color) string {
	return r.sequence(c, true)
}

// Foreground returns the SGR sequence painting the text itself in c.
func (r Resolver) Foreground(c Color) string {
	return r.sequence(c, false)
}

// Reset returns the attribute reset, or nothing when colors are disabled.
func (r Resolver) Reset() string {
	if r.Profile == termenv.Ascii {
		return ""
	}
	return Reset
}

// Colored reports whether the resolver emits escape sequences at all.
func (r Resolver) Colored() bool {
	return r.Profile != termenv.Ascii
}

func (r Resolver) sequence(c Color, bg bool) string {
	if c == "" || r.Profile == termenv.Ascii {
		return ""
	}
	tc := r.Profile.Color(string(c))
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
