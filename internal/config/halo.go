package config

import "sort"

// HaloLayer is one pass of the layered glow. Blur and Width are in logical pixels.
type HaloLayer struct {
	Blur  float64 `yaml:"blur"`
	Alpha float64 `yaml:"alpha"`
	Width float64 `yaml:"width"`
}

// DefaultHaloPreset names the table used when nothing else is configured.
const DefaultHaloPreset = "glow"

// haloPresets are ordered deep -> core.
var haloPresets = map[string][]HaloLayer{
	"glow": {
		{Blur: 40, Alpha: 0.12, Width: 28},
		{Blur: 25, Alpha: 0.2, Width: 18},
		{Blur: 14, Alpha: 0.3, Width: 12},
		{Blur: 4, Alpha: 0.85, Width: 4},
	},
	"mist": {
		{Blur: 60, Alpha: 0.08, Width: 40},
		{Blur: 36, Alpha: 0.14, Width: 26},
		{Blur: 20, Alpha: 0.22, Width: 14},
		{Blur: 8, Alpha: 0.5, Width: 5},
	},
	"neon": {
		{Blur: 28, Alpha: 0.18, Width: 20},
		{Blur: 14, Alpha: 0.3, Width: 10},
		{Blur: 6, Alpha: 0.55, Width: 6},
		{Blur: 1, Alpha: 1, Width: 2},
	},
}

// HaloPreset returns a copy of the named halo table.
func HaloPreset(name string) ([]HaloLayer, bool) {
	layers, ok := haloPresets[name]
	if !ok {
		return nil, false
	}
	out := make([]HaloLayer, len(layers))
	copy(out, layers)
	return out, true
}

// DefaultHalo returns a copy of the default halo table.
func DefaultHalo() []HaloLayer {
	layers, _ := HaloPreset(DefaultHaloPreset)
	return layers
}

// HaloPresetNames lists the known preset names in sorted order.
func HaloPresetNames() []string {
	names := make([]string, 0, len(haloPresets))
	for name := range haloPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
