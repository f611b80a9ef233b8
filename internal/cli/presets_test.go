package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dcmtools/dcm2bmp/pkg/errors"
	"github.com/dcmtools/dcm2bmp/pkg/transform"
)

func TestLoadPresetsBuiltins(t *testing.T) {
	presets, err := LoadPresets("")
	if err != nil {
		t.Fatalf("LoadPresets() error: %v", err)
	}

	for _, name := range []string{"brain", "lung", "bone", "abdomen", "mediastinum"} {
		if _, ok := presets[name]; !ok {
			t.Errorf("built-in preset %q missing", name)
		}
	}
	if p := presets["lung"]; p.Center != -600 || p.Width != 1500 {
		t.Errorf("lung preset = %+v, want center -600 width 1500", p)
	}
}

func TestLoadPresetsUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	content := `
[angio]
center = 300.0
width = 600.0

[bone]
center = 500.0
width = 2000.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets() error: %v", err)
	}

	if p := presets["angio"]; p.Center != 300 || p.Width != 600 {
		t.Errorf("user preset angio = %+v", p)
	}
	// User entries override built-ins of the same name.
	if p := presets["bone"]; p.Center != 500 || p.Width != 2000 {
		t.Errorf("overridden bone preset = %+v", p)
	}
	// Untouched built-ins survive the merge.
	if p := presets["brain"]; p.Center != 40 || p.Width != 80 {
		t.Errorf("brain preset = %+v", p)
	}
}

func TestLoadPresetsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPresets(path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("LoadPresets(bad file) error = %v, want INVALID_INPUT", err)
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("LoadPresets(missing file) = nil, want error")
	}
}

func TestApplyPreset(t *testing.T) {
	flags := transform.Params{Center: 100, Width: 200}
	preset := Preset{Center: 400, Width: 1800}

	tests := []struct {
		name                string
		centerSet, widthSet bool
		want                transform.Params
	}{
		{name: "preset fills both", want: transform.Params{Center: 400, Width: 1800}},
		{name: "explicit center wins", centerSet: true, want: transform.Params{Center: 100, Width: 1800}},
		{name: "explicit width wins", widthSet: true, want: transform.Params{Center: 400, Width: 200}},
		{name: "both explicit ignore preset", centerSet: true, widthSet: true, want: flags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyPreset(flags, preset, tt.centerSet, tt.widthSet)
			if got != tt.want {
				t.Errorf("applyPreset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
