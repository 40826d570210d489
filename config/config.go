package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the tapestry configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "tapestry")
}

// ScriptDir returns the directory holding user variant scripts.
func ScriptDir() string {
	return filepath.Join(Dir(), "scripts")
}

// ScriptPath resolves a variant script. Bare names map to
// ScriptDir()/<name>.lua; anything that looks like a path is returned as is.
func ScriptPath(name string) string {
	if filepath.Ext(name) == ".lua" || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(ScriptDir(), name+".lua")
}
