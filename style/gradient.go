package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient blends from one hex color to another in CIE-L*a*b* space,
// returning steps colors with both endpoints included.
func Gradient(from, to string, steps int) ([]Color, error) {
	if steps < 1 {
		return nil, fmt.Errorf("gradient needs at least one step, got %d", steps)
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return nil, fmt.Errorf("gradient start %q: %w", from, err)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return nil, fmt.Errorf("gradient end %q: %w", to, err)
	}

	out := make([]Color, steps)
	for i := range out {
		switch {
		case i == 0:
			out[i] = Color(a.Hex())
		case i == steps-1:
			out[i] = Color(b.Hex())
		default:
			t := float64(i) / float64(steps-1)
			out[i] = Color(a.BlendLab(b, t).Clamped().Hex())
		}
	}
	return out, nil
}

// MustGradient is Gradient for package-level palettes; it panics on bad input.
func MustGradient(from, to string, steps int) []Color {
	colors, err := Gradient(from, to, steps)
	if err != nil {
		panic(err)
	}
	return colors
}
