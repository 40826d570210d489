package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDirHonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not consulted on windows")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	if got, want := Dir(), filepath.Join(base, "tapestry"); got != want {
		t.Fatalf("Dir() = %q, want %q", got, want)
	}
	if got, want := ScriptDir(), filepath.Join(base, "tapestry", "scripts"); got != want {
		t.Fatalf("ScriptDir() = %q, want %q", got, want)
	}
}

func TestScriptPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not consulted on windows")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	tests := []struct {
		name string
		want string
	}{
		{"spiral", filepath.Join(base, "tapestry", "scripts", "spiral.lua")},
		{"spiral.lua", "spiral.lua"},
		{"./patterns/spiral", "./patterns/spiral"},
		{"/tmp/x.lua", "/tmp/x.lua"},
	}
	for _, tt := range tests {
		if got := ScriptPath(tt.name); got != tt.want {
			t.Errorf("ScriptPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
