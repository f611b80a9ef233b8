package cli

import (
	"maps"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dcmtools/dcm2bmp/pkg/errors"
	"github.com/dcmtools/dcm2bmp/pkg/transform"
)

// Preset is a named window configuration.
type Preset struct {
	Center float64 `toml:"center"`
	Width  float64 `toml:"width"`
}

// builtinPresets are the standard CT viewing windows shipped with the tool.
var builtinPresets = map[string]Preset{
	"brain":       {Center: 40, Width: 80},
	"abdomen":     {Center: 40, Width: 400},
	"lung":        {Center: -600, Width: 1500},
	"bone":        {Center: 400, Width: 1800},
	"mediastinum": {Center: 50, Width: 350},
}

// applyPreset layers a preset under explicitly set flags: flag values that
// the user changed stay, the rest come from the preset.
func applyPreset(window transform.Params, p Preset, centerSet, widthSet bool) transform.Params {
	if !centerSet {
		window.Center = p.Center
	}
	if !widthSet {
		window.Width = p.Width
	}
	return window
}

// LoadPresets returns the window presets: the built-in set, with entries from
// the optional TOML file merged over it. An empty path means built-ins only.
//
// The file format is one table per preset:
//
//	[angio]
//	center = 300.0
//	width = 600.0
func LoadPresets(path string) (map[string]Preset, error) {
	presets := maps.Clone(builtinPresets)
	if path == "" {
		return presets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read presets file %s", path)
	}

	var user map[string]Preset
	if err := toml.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse presets file %s", path)
	}

	maps.Copy(presets, user)
	return presets, nil
}
