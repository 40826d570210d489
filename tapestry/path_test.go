package tapestry

import "testing"

func TestZigzagCelestialScenario(t *testing.T) {
	z := Zigzag{Columns: 36, Segment: 10, Base: 4}
	tests := []struct{ row, want int }{
		{0, 4},
		{9, 13},
		{10, 13}, // turning point
		{19, 4},  // back at base
		{20, 4},
		{29, 13},
	}
	for _, tt := range tests {
		if got := z.Column(tt.row); got != tt.want {
			t.Errorf("row %d: got column %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestZigzagMirrored(t *testing.T) {
	z := Zigzag{Columns: 36, Segment: 10, Base: 4, Mirrored: true}
	tests := []struct{ row, want int }{
		{0, 31},
		{9, 22},
		{10, 22},
		{19, 31},
	}
	for _, tt := range tests {
		if got := z.Column(tt.row); got != tt.want {
			t.Errorf("row %d: got column %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestZigzagDegenerateSegment(t *testing.T) {
	z := Zigzag{Columns: 10, Segment: 0, Base: 3}
	for row := 0; row < 5; row++ {
		if got := z.Column(row); got != 3 {
			t.Fatalf("row %d: got %d, want the base column", row, got)
		}
	}
}

func TestSegmentedSmileScenario(t *testing.T) {
	p := SmileTrail().Tracks[0].Path
	tests := []struct{ row, want int }{
		{0, 2},
		{13, 15},
		{14, 15},
		{25, 4},
		{26, 2},
		{39, 15},
	}
	for _, tt := range tests {
		if got := p.Column(tt.row); got != tt.want {
			t.Errorf("row %d: got column %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestSegmentedEmpty(t *testing.T) {
	if got := (Segmented{}).Column(7); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestPathFunc(t *testing.T) {
	p := PathFunc(func(row int) int { return row * 2 })
	if got := p.Column(4); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ col, columns, want int }{
		{-3, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 9},
		{42, 10, 9},
	}
	for _, tt := range tests {
		if got := clamp(tt.col, tt.columns); got != tt.want {
			t.Errorf("clamp(%d, %d) = %d, want %d", tt.col, tt.columns, got, tt.want)
		}
	}
}

func TestBuiltinPathsStayOnCanvas(t *testing.T) {
	for _, name := range Names() {
		v, _ := Lookup(name)
		for i, tr := range v.Tracks {
			for row := 0; row < v.Rows; row++ {
				col := tr.Path.Column(row)
				if col < 0 || col >= v.Columns {
					t.Errorf("%s track %d row %d: column %d outside [0, %d)", name, i, row, col, v.Columns)
				}
			}
		}
	}
}
