package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Preset)
	}{
		{
			name: "valid config",
			yamlContent: `
speed: 1.5
segments: 200
haloPreset: neon
waves:
  - baseline: 0.25
    amplitude: 40
    frequency: 0.002
    speed: 0.6
    color: "255,0,128"
  - baseline: 0.75
    amplitude: 30
    frequency: 0.005
    speed: 1.1
    color: "#00ff80"
`,
			validate: func(t *testing.T, p *Preset) {
				if p.SpeedOrDefault() != 1.5 {
					t.Errorf("expected speed 1.5, got %v", p.SpeedOrDefault())
				}
				if p.SegmentsOrDefault() != 200 {
					t.Errorf("expected 200 segments, got %d", p.SegmentsOrDefault())
				}
				specs := p.WaveSpecs()
				if len(specs) != 2 {
					t.Fatalf("expected 2 waves, got %d", len(specs))
				}
				if specs[0].Color != (color.RGBA{R: 255, G: 0, B: 128, A: 255}) {
					t.Errorf("unexpected first color %v", specs[0].Color)
				}
				if specs[1].Color != (color.RGBA{R: 0, G: 255, B: 128, A: 255}) {
					t.Errorf("unexpected second color %v", specs[1].Color)
				}
				neon, _ := HaloPreset("neon")
				if got := p.HaloLayers(); len(got) != len(neon) || got[3] != neon[3] {
					t.Errorf("expected neon halo, got %v", got)
				}
			},
		},
		{
			name:        "empty document uses defaults",
			yamlContent: ``,
			validate: func(t *testing.T, p *Preset) {
				if p.SpeedOrDefault() != DefaultSpeed {
					t.Errorf("expected default speed, got %v", p.SpeedOrDefault())
				}
				if p.SegmentsOrDefault() != DefaultSegments {
					t.Errorf("expected default segments, got %d", p.SegmentsOrDefault())
				}
				if len(p.WaveSpecs()) != 3 {
					t.Errorf("expected the three default waves, got %d", len(p.WaveSpecs()))
				}
				if got := p.HaloLayers(); len(got) != 4 || got[0].Blur != 40 {
					t.Errorf("expected default halo, got %v", got)
				}
			},
		},
		{
			name: "explicit halo overrides named preset",
			yamlContent: `
haloPreset: mist
halo:
  - {blur: 10, alpha: 0.5, width: 3}
`,
			validate: func(t *testing.T, p *Preset) {
				got := p.HaloLayers()
				if len(got) != 1 || got[0] != (HaloLayer{Blur: 10, Alpha: 0.5, Width: 3}) {
					t.Errorf("unexpected halo %v", got)
				}
			},
		},
		{
			name: "baseline out of range",
			yamlContent: `
waves:
  - {baseline: 1.2, amplitude: 10, frequency: 0.01, speed: 1, color: "1,2,3"}
`,
			wantErr:     true,
			errContains: "waves[0].baseline",
		},
		{
			name: "zero frequency",
			yamlContent: `
waves:
  - {baseline: 0.5, amplitude: 10, frequency: 0, speed: 1, color: "1,2,3"}
`,
			wantErr:     true,
			errContains: "waves[0].frequency",
		},
		{
			name: "bad color",
			yamlContent: `
waves:
  - {baseline: 0.5, amplitude: 10, frequency: 0.01, speed: 1, color: "red"}
`,
			wantErr:     true,
			errContains: "waves[0].color",
		},
		{
			name:        "negative speed",
			yamlContent: `speed: -1`,
			wantErr:     true,
			errContains: "speed",
		},
		{
			name:        "unknown halo preset",
			yamlContent: `haloPreset: sparkle`,
			wantErr:     true,
			errContains: "unknown haloPreset",
		},
		{
			name: "halo alpha out of range",
			yamlContent: `
halo:
  - {blur: 4, alpha: 1.5, width: 4}
`,
			wantErr:     true,
			errContains: "halo[0].alpha",
		},
		{
			name:        "too many segments",
			yamlContent: `segments: 100000`,
			wantErr:     true,
			errContains: "segments must be between 0 and 2048",
		},
		{
			name:        "max segments accepted",
			yamlContent: `segments: 2048`,
			validate: func(t *testing.T, p *Preset) {
				if p.SegmentsOrDefault() != MaxSegments {
					t.Errorf("expected %d segments, got %d", MaxSegments, p.SegmentsOrDefault())
				}
			},
		},
		{
			name:        "infinite global speed",
			yamlContent: `speed: .inf`,
			wantErr:     true,
			errContains: "speed",
		},
		{
			name: "nan baseline",
			yamlContent: `
waves:
  - {baseline: .nan, amplitude: 10, frequency: 0.01, speed: 1, color: "1,2,3"}
`,
			wantErr:     true,
			errContains: "waves[0].baseline",
		},
		{
			name: "nan amplitude",
			yamlContent: `
waves:
  - {baseline: 0.5, amplitude: .nan, frequency: 0.01, speed: 1, color: "1,2,3"}
`,
			wantErr:     true,
			errContains: "waves[0].amplitude",
		},
		{
			name: "nan frequency",
			yamlContent: `
waves:
  - {baseline: 0.5, amplitude: 10, frequency: .nan, speed: 1, color: "1,2,3"}
`,
			wantErr:     true,
			errContains: "waves[0].frequency",
		},
		{
			name: "infinite wave speed",
			yamlContent: `
waves:
  - {baseline: 0.5, amplitude: 10, frequency: 0.01, speed: .inf, color: "1,2,3"}
`,
			wantErr:     true,
			errContains: "waves[0].speed",
		},
		{
			name: "nan halo blur",
			yamlContent: `
halo:
  - {blur: .nan, alpha: 0.5, width: 4}
`,
			wantErr:     true,
			errContains: "halo[0].blur",
		},
		{
			name: "nan halo alpha",
			yamlContent: `
halo:
  - {blur: 4, alpha: .nan, width: 4}
`,
			wantErr:     true,
			errContains: "halo[0].alpha",
		},
		{
			name: "nan halo width",
			yamlContent: `
halo:
  - {blur: 4, alpha: 0.5, width: .nan}
`,
			wantErr:     true,
			errContains: "halo[0].width",
		},
		{
			name: "infinite halo width",
			yamlContent: `
halo:
  - {blur: 4, alpha: 0.5, width: .inf}
`,
			wantErr:     true,
			errContains: "halo[0].width",
		},
		{
			name:        "malformed yaml",
			yamlContent: "waves: [",
			wantErr:     true,
			errContains: "failed to parse preset YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePreset([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestLoadPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	content := `
speed: 2
waves:
  - {baseline: 0.5, amplitude: 20, frequency: 0.01, speed: 1, color: "hsv(270,0.8,1)"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write preset: %v", err)
	}

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SpeedOrDefault() != 2 {
		t.Errorf("expected speed 2, got %v", p.SpeedOrDefault())
	}
	if specs := p.WaveSpecs(); len(specs) != 1 || specs[0].Color.A != 255 {
		t.Errorf("unexpected waves %v", specs)
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	w := DefaultWaves()
	w[0].Amplitude = 999
	if DefaultWaves()[0].Amplitude == 999 {
		t.Error("DefaultWaves returned shared storage")
	}

	h := DefaultHalo()
	h[0].Blur = 999
	if DefaultHalo()[0].Blur == 999 {
		t.Error("DefaultHalo returned shared storage")
	}
}

func TestDefaultHaloTable(t *testing.T) {
	want := []HaloLayer{
		{Blur: 40, Alpha: 0.12, Width: 28},
		{Blur: 25, Alpha: 0.2, Width: 18},
		{Blur: 14, Alpha: 0.3, Width: 12},
		{Blur: 4, Alpha: 0.85, Width: 4},
	}
	got := DefaultHalo()
	if len(got) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("layer %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHaloPresetNames(t *testing.T) {
	names := HaloPresetNames()
	if strings.Join(names, ",") != "glow,mist,neon" {
		t.Errorf("unexpected preset names %v", names)
	}
	if _, ok := HaloPreset("nope"); ok {
		t.Error("expected unknown preset to be reported missing")
	}
}

func TestShippedPresets(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "presets", "*.yaml"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("no shipped presets found")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			if _, err := LoadPreset(path); err != nil {
				t.Errorf("failed to load %s: %v", path, err)
			}
		})
	}
}

func TestShippedDefaultPresetMatchesBuiltin(t *testing.T) {
	p, err := LoadPreset(filepath.Join("..", "..", "presets", "default.yaml"))
	if err != nil {
		t.Skipf("default preset not available: %v", err)
	}
	got, want := p.WaveSpecs(), DefaultWaves()
	if len(got) != len(want) {
		t.Fatalf("expected %d waves, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wave %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
