package tapestry

// Path maps a row onto the column of its token. Implementations must be pure.
type Path interface {
	Column(row int) int
}

// PathFunc adapts an ordinary function to Path.
type PathFunc func(row int) int

// Column calls f(row).
func (f PathFunc) Column(row int) int { return f(row) }

// Zigzag is a triangle wave. It climbs Segment columns from Base, falls back
// the same distance, and repeats every 2*Segment rows. A mirrored zigzag runs
// the same offsets inward from the right edge.
type Zigzag struct {
	Columns  int
	Segment  int
	Base     int
	Mirrored bool
}

// Column returns the zigzag's column at row.
func (z Zigzag) Column(row int) int {
	seg := max(z.Segment, 1)
	progress := mod(row, seg*2)
	offset := progress
	if progress >= seg {
		offset = seg - (progress - seg) - 1
	}
	offset = max(offset, 0)
	if z.Mirrored {
		return (z.Columns - z.Base - 1) - offset
	}
	return z.Base + offset
}

// Leg is one straight run of a Segmented path: from row From it starts at
// column Start and moves Step columns per row.
type Leg struct {
	From  int
	Start int
	Step  int
}

// Segmented strings legs together. Each leg covers the rows from its From up
// to the next leg's From; Legs must be sorted by From.
type Segmented struct {
	Legs []Leg
}

// Column returns the column of the leg covering row.
func (s Segmented) Column(row int) int {
	if len(s.Legs) == 0 {
		return 0
	}
	leg := s.Legs[0]
	for _, l := range s.Legs[1:] {
		if row < l.From {
			break
		}
		leg = l
	}
	return leg.Start + leg.Step*(row-leg.From)
}

// clamp bounds a column into [0, columns).
func clamp(col, columns int) int {
	if col < 0 {
		return 0
	}
	if col >= columns {
		return columns - 1
	}
	return col
}
