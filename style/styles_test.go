package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestResolverSequences(t *testing.T) {
	r := NewResolver(termenv.TrueColor)
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"blue background", r.Background("4"), "\x1b[44m"},
		{"red background", r.Background("1"), "\x1b[41m"},
		{"white background", r.Background("7"), "\x1b[47m"},
		{"bright white text", r.Foreground("15"), "\x1b[97m"},
		{"dark text", r.Foreground("0"), "\x1b[30m"},
		{"256 background", r.Background("18"), "\x1b[48;5;18m"},
		{"hex background", r.Background("#ff0000"), "\x1b[48;2;255;0;0m"},
		{"empty color", r.Background(""), ""},
		{"garbage color", r.Foreground("nope"), ""},
		{"reset", r.Reset(), "\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestResolverAscii(t *testing.T) {
	r := NewResolver(termenv.Ascii)
	if r.Colored() {
		t.Fatal("ascii resolver should not be colored")
	}
	if got := r.Background("4") + r.Foreground("#ffffff") + r.Reset(); got != "" {
		t.Fatalf("ascii resolver emitted %q", got)
	}
}

func TestResolverDownsamplesHex(t *testing.T) {
	r := NewResolver(termenv.ANSI)
	got := r.Background("#ff0000")
	if !strings.HasPrefix(got, "\x1b[") || strings.Contains(got, "48;2;") {
		t.Fatalf("expected a basic ANSI sequence, got %q", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"always", "auto", "never"} {
		m, err := ParseMode(s)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", s, err)
		}
		if m.String() != s {
			t.Fatalf("round trip %q -> %q", s, m.String())
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestModeProfile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := ModeAlways.Profile(f.Fd()); got != termenv.TrueColor {
		t.Errorf("always: got %v", got)
	}
	if got := ModeNever.Profile(f.Fd()); got != termenv.Ascii {
		t.Errorf("never: got %v", got)
	}
	if got := ModeAuto.Profile(f.Fd()); got != termenv.Ascii {
		t.Errorf("auto on a regular file: got %v", got)
	}
}

func TestGradient(t *testing.T) {
	colors, err := Gradient("#ff0000", "#0000ff", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 5 {
		t.Fatalf("got %d colors", len(colors))
	}
	if colors[0] != "#ff0000" || colors[4] != "#0000ff" {
		t.Fatalf("endpoints = %q, %q", colors[0], colors[4])
	}
	for i, c := range colors {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("color %d = %q, want #rrggbb", i, c)
		}
	}

	single, err := Gradient("#00ff00", "#000000", 1)
	if err != nil || len(single) != 1 || single[0] != "#00ff00" {
		t.Fatalf("single step = %v, %v", single, err)
	}
}

func TestGradientErrors(t *testing.T) {
	if _, err := Gradient("#fff", "#000000", 0); err == nil {
		t.Error("expected error for zero steps")
	}
	if _, err := Gradient("red", "#000000", 3); err == nil {
		t.Error("expected error for bad start")
	}
	if _, err := Gradient("#000000", "blue", 3); err == nil {
		t.Error("expected error for bad end")
	}
}
