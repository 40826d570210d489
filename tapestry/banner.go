package tapestry

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/tapestry/text"
)

// TitleLines renders the title rows, each centered across the full line width.
func (r *Renderer) TitleLines() []string {
	if len(r.v.Title) == 0 {
		return nil
	}

	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(r.res.Profile)
	st := lr.NewStyle().
		Width(r.v.Width()).
		Align(lipgloss.Center)
	if r.v.TitleStyle.Outer != "" {
		st = st.Background(lipgloss.Color(r.v.TitleStyle.Outer))
	}
	if r.v.TitleStyle.Inner != "" {
		st = st.Foreground(lipgloss.Color(r.v.TitleStyle.Inner))
	}

	lines := make([]string, len(r.v.Title))
	for i, msg := range r.v.Title {
		msg = text.Truncate(msg, r.v.Width())
		if msg == "" {
			msg = " "
		}
		lines[i] = st.Render(msg)
	}
	return lines
}

// GlowLines renders the shrinking banners that close the tapestry.
func (r *Renderer) GlowLines() []string {
	g := r.v.Glow
	if g == nil {
		return nil
	}
	from := g.From
	if from == 0 {
		from = r.v.Columns
	}
	var lines []string
	for width := from; width >= g.Min; width -= g.Step {
		lines = append(lines, r.glowLine(width))
	}
	return lines
}

func (r *Renderer) glowLine(width int) string {
	cols := r.v.Columns
	safe := max(2, min(width, cols))
	pad := (cols - safe) / 2

	var b strings.Builder
	b.WriteString(r.base)
	for col := 0; col < cols; col++ {
		if col >= pad && col < pad+safe {
			b.WriteString(r.tokenCell(&r.v.Glow.Token, 0, col-pad))
		} else {
			b.WriteString(r.fillCell(r.v.Rows+width, col))
		}
	}
	b.WriteString(r.res.Reset())
	return b.String()
}
