package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/glow-background/internal/wave"
)

// Preset is the on-disk description of a background. Zero values mean "use the default".
type Preset struct {
	Speed      float64      `yaml:"speed"`
	Segments   int          `yaml:"segments"`
	Waves      []WaveConfig `yaml:"waves"`
	HaloPreset string       `yaml:"haloPreset"`
	Halo       []HaloLayer  `yaml:"halo"`
}

// WaveConfig is the YAML form of wave.Spec.
type WaveConfig struct {
	Baseline  float64 `yaml:"baseline"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Speed     float64 `yaml:"speed"`
	Color     string  `yaml:"color"`
}

// LoadPreset reads, parses and validates a preset file.
func LoadPreset(filePath string) (*Preset, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return p, nil
}

// ParsePreset parses and validates preset YAML.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset YAML: %w", err)
	}

	if err := validatePreset(&p); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}

	return &p, nil
}

func validatePreset(p *Preset) error {
	if p.Speed < 0 || !finite(p.Speed) {
		return fmt.Errorf("speed must be a finite value >= 0, got %v", p.Speed)
	}
	if p.Segments < 0 || p.Segments > MaxSegments {
		return fmt.Errorf("segments must be between 0 and %d, got %d", MaxSegments, p.Segments)
	}

	for i, w := range p.Waves {
		if !(w.Baseline >= 0 && w.Baseline <= 1) {
			return fmt.Errorf("waves[%d].baseline must be between 0 and 1, got %v", i, w.Baseline)
		}
		if w.Amplitude < 0 || !finite(w.Amplitude) {
			return fmt.Errorf("waves[%d].amplitude must be a finite value >= 0, got %v", i, w.Amplitude)
		}
		if w.Frequency <= 0 || !finite(w.Frequency) {
			return fmt.Errorf("waves[%d].frequency must be a finite value > 0, got %v", i, w.Frequency)
		}
		if w.Speed < 0 || !finite(w.Speed) {
			return fmt.Errorf("waves[%d].speed must be a finite value >= 0, got %v", i, w.Speed)
		}
		if _, err := ParseColor(w.Color); err != nil {
			return fmt.Errorf("waves[%d].color: %w", i, err)
		}
	}

	if p.HaloPreset != "" {
		if _, ok := haloPresets[p.HaloPreset]; !ok {
			return fmt.Errorf("unknown haloPreset %q (known: %v)", p.HaloPreset, HaloPresetNames())
		}
	}
	for i, h := range p.Halo {
		if h.Blur < 0 || !finite(h.Blur) {
			return fmt.Errorf("halo[%d].blur must be a finite value >= 0, got %v", i, h.Blur)
		}
		if !(h.Alpha >= 0 && h.Alpha <= 1) {
			return fmt.Errorf("halo[%d].alpha must be between 0 and 1, got %v", i, h.Alpha)
		}
		if h.Width <= 0 || !finite(h.Width) {
			return fmt.Errorf("halo[%d].width must be a finite value > 0, got %v", i, h.Width)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WaveSpecs converts the configured waves, falling back to DefaultWaves when none are set.
// The preset must have been validated.
func (p *Preset) WaveSpecs() []wave.Spec {
	if len(p.Waves) == 0 {
		return DefaultWaves()
	}
	specs := make([]wave.Spec, 0, len(p.Waves))
	for _, w := range p.Waves {
		c, _ := ParseColor(w.Color)
		specs = append(specs, wave.Spec{
			Baseline:  w.Baseline,
			Amplitude: w.Amplitude,
			Frequency: w.Frequency,
			Speed:     w.Speed,
			Color:     c,
		})
	}
	return specs
}

// HaloLayers resolves the halo table: an explicit table wins over a named preset,
// which wins over the default.
func (p *Preset) HaloLayers() []HaloLayer {
	if len(p.Halo) > 0 {
		out := make([]HaloLayer, len(p.Halo))
		copy(out, p.Halo)
		return out
	}
	if layers, ok := HaloPreset(p.HaloPreset); ok {
		return layers
	}
	return DefaultHalo()
}

// SpeedOrDefault returns the global speed multiplier.
func (p *Preset) SpeedOrDefault() float64 {
	if p.Speed > 0 {
		return p.Speed
	}
	return DefaultSpeed
}

// SegmentsOrDefault returns the per-wave segment count.
func (p *Preset) SegmentsOrDefault() int {
	if p.Segments > 0 {
		return p.Segments
	}
	return DefaultSegments
}
