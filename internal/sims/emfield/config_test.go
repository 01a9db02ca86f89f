package emfield

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := []Config{
		{GridSize: 0, Spacing: 1, Mode: ModeToggle},
		{GridSize: 6, Spacing: 1, Mode: ModeToggle},
		{GridSize: 7, Spacing: 0, Mode: ModeToggle},
		{GridSize: 7, Spacing: -2, Mode: ModePropagate},
		{GridSize: 7, Spacing: 1, Mode: "spiral"},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%+v: expected ErrInvalidConfig, got %v", c, err)
		}
		if _, err := New(c, nil); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("New(%+v) should fail, got %v", c, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"grid_size": "11",
		"spacing":   "0.25",
		"mode":      "propagate",
		"seed":      "-4",
	})
	if c.GridSize != 11 || c.Spacing != 0.25 || c.Mode != ModePropagate || c.Seed != -4 {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"grid_size": "abc", "spacing": "-1"})
	if c != DefaultConfig() {
		t.Fatalf("unparseable overrides should be ignored, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emfield.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 9\nmode: propagate\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.GridSize != 9 || c.Mode != ModePropagate {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Spacing != 1.0 || c.Seed != 1337 {
		t.Fatalf("missing keys should keep defaults, got %+v", c)
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("grid_size: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(badPath); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("even grid size should be rejected, got %v", err)
	}

	junkPath := filepath.Join(dir, "junk.yaml")
	if err := os.WriteFile(junkPath, []byte("grid_size: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(junkPath); err == nil {
		t.Fatal("malformed YAML should fail")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file should report ErrNotExist, got %v", err)
	}
}
