package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	got := Default()
	want := Config{Places: -1, Color: true}
	if got != want {
		t.Errorf("Default() = %+v, want %+v", got, want)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"riemann.toml", FormatTOML},
		{"riemann.TOML", FormatTOML},
		{"riemann.yaml", FormatYAML},
		{"riemann.yml", FormatYAML},
		{"riemann.YML", FormatYAML},
		{"riemann", FormatTOML},
	}
	for _, tt := range tests {
		got := DetectFormat(tt.path)
		if got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			content string
			format  Format
			want    Config
		}{
			{"", FormatTOML, Config{Places: -1, Color: true}},
			{"places = 3\n", FormatTOML, Config{Places: 3, Color: true}},
			{"places = 2\ncolor = false\npolar = true\n", FormatTOML, Config{Places: 2, Polar: true}},
			{"", FormatYAML, Config{Places: -1, Color: true}},
			{"places: 4\n", FormatYAML, Config{Places: 4, Color: true}},
			{"color: false\npolar: true\n", FormatYAML, Config{Places: -1, Polar: true}},
		}
		for _, tt := range tests {
			got, err := Parse([]byte(tt.content), tt.format)
			if err != nil {
				t.Errorf("Parse(%q, %v) failed: %v", tt.content, tt.format, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Parse(%q, %v) = %+v, want %+v", tt.content, tt.format, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			content string
			format  Format
		}{
			"toml syntax":  {"places = = 3", FormatTOML},
			"toml type":    {"places = \"three\"", FormatTOML},
			"yaml syntax":  {"places: [3", FormatYAML},
			"yaml type":    {"places: three", FormatYAML},
			"places range": {"places = 16", FormatTOML},
			"format":       {"", Format(7)},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse([]byte(tt.content), tt.format)
				if err == nil {
					t.Errorf("Parse(%q, %v) did not fail", tt.content, tt.format)
				}
			})
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(dir, "riemann.toml")
		if err := os.WriteFile(path, []byte("places = 6\npolar = true\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", path, err)
		}
		want := Config{Places: 6, Color: true, Polar: true}
		if got != want {
			t.Errorf("Load(%q) = %+v, want %+v", path, got, want)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "riemann.yaml")
		if err := os.WriteFile(path, []byte("places: 1\ncolor: false\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", path, err)
		}
		want := Config{Places: 1}
		if got != want {
			t.Errorf("Load(%q) = %+v, want %+v", path, got, want)
		}
	})

	t.Run("missing", func(t *testing.T) {
		path := filepath.Join(dir, "missing.toml")
		_, err := Load(path)
		if err == nil {
			t.Errorf("Load(%q) did not fail", path)
		}
	})
}
