package config

import (
	"image/color"
	"time"

	"github.com/iburimskiy/glow-background/internal/wave"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Mount defaults
	DefaultSpeed    = 1.0
	DefaultSegments = 140

	// MaxSegments bounds the points per wave. A round-joined stroke of this
	// many segments still tessellates within ebiten's 16-bit vertex indices.
	MaxSegments = 2048

	// Frame loop
	BaseSpeedScale = 0.8
	MaxFrameDelta  = 50 * time.Millisecond

	// Resize reconciliation
	ResizeQuietPeriod = 120 * time.Millisecond

	// Frame statistics
	FrameTapSize = 120
)

// Background is the color the surface is cleared to every frame.
var Background = color.RGBA{A: 255}

// DefaultWaves returns the three-wave set. Later entries blend on top of earlier ones.
func DefaultWaves() []wave.Spec {
	return []wave.Spec{
		{Baseline: 0.3, Amplitude: 50, Frequency: 0.003, Speed: 0.8, Color: color.RGBA{R: 160, G: 60, B: 255, A: 255}},
		{Baseline: 0.5, Amplitude: 60, Frequency: 0.0025, Speed: 0.5, Color: color.RGBA{R: 130, G: 50, B: 210, A: 255}},
		{Baseline: 0.7, Amplitude: 45, Frequency: 0.004, Speed: 0.9, Color: color.RGBA{R: 200, G: 110, B: 255, A: 255}},
	}
}
