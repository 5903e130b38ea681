// Package wave generates the point sequences for the glow waves.
package wave

import (
	"image/color"
	"math"
)

// Spec parameterizes a single wave. Specs are treated as immutable once built.
type Spec struct {
	Baseline  float64 // fraction of surface height, 0..1
	Amplitude float64 // logical pixels
	Frequency float64 // radians per logical pixel
	Speed     float64 // phase units per second
	Color     color.RGBA
}

// Point is a position in logical pixel space.
type Point struct {
	X, Y float64
}

// Secondary term of the composite motion runs at half the frequency and
// 1.3x the speed of the primary term.
const (
	secondaryFrequency = 0.5
	secondarySpeed     = 1.3
)

// Sample returns segments+1 points spanning [0, width] for the given phase.
// It is pure: identical inputs always produce identical output.
// Sample returns nil when segments < 1.
func Sample(s Spec, phase, width, height float64, segments int) []Point {
	if segments < 1 {
		return nil
	}
	return SampleInto(make([]Point, 0, segments+1), s, phase, width, height, segments)
}

// SampleInto appends the sampled points to dst and returns the extended slice.
func SampleInto(dst []Point, s Spec, phase, width, height float64, segments int) []Point {
	if segments < 1 {
		return dst
	}
	base := height * s.Baseline
	for i := 0; i <= segments; i++ {
		x := float64(i) / float64(segments) * width
		primary := math.Sin(x*s.Frequency + phase*s.Speed)
		secondary := math.Sin(x*s.Frequency*secondaryFrequency + phase*s.Speed*secondarySpeed)
		dst = append(dst, Point{X: x, Y: base + (primary+secondary)*s.Amplitude})
	}
	return dst
}
