package settings

import (
	"path/filepath"
	"testing"
)

func TestResolvePathExplicitOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/config.json")

	got, err := ResolvePath("/explicit/config.json")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if got != "/explicit/config.json" {
		t.Errorf("ResolvePath = %q, want explicit override to win", got)
	}
}

func TestResolvePathEnvVar(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/config.json")

	got, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if got != "/env/config.json" {
		t.Errorf("ResolvePath = %q, want env var value", got)
	}
}

func TestResolvePathDefault(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	want := filepath.Join(home, ".dworshak", "config.json")
	if got != want {
		t.Errorf("ResolvePath = %q, want %q", got, want)
	}
}

func TestResolvePathRelativeOverride(t *testing.T) {
	got, err := ResolvePath("./sub/../config.json")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if got != "config.json" {
		t.Errorf("ResolvePath = %q, want cleaned relative path", got)
	}
}
