package game

import (
	"time"

	"github.com/iburimskiy/glow-background/internal/config"
	"github.com/iburimskiy/glow-background/internal/wave"
)

// renderer advances the phase accumulator and draws every wave through the
// halo table once per frame.
type renderer struct {
	surface  *Surface
	waves    []wave.Spec
	halo     []config.HaloLayer
	speed    float64
	segments int
	maxDelta time.Duration

	phase  float64
	last   time.Duration
	frames int
	tap    *frameTap
	points []wave.Point
}

func newRenderer(s *Surface, opts Options, start time.Duration) *renderer {
	return &renderer{
		surface:  s,
		waves:    opts.Waves,
		halo:     opts.Halo,
		speed:    opts.Speed,
		segments: opts.Segments,
		maxDelta: config.MaxFrameDelta,
		last:     start,
		tap:      newFrameTap(config.FrameTapSize),
		points:   make([]wave.Point, 0, opts.Segments+1),
	}
}

func (r *renderer) onFrame(now time.Duration) {
	dt := now - r.last
	if dt < 0 {
		dt = 0
	}
	r.tap.record(dt)
	if dt > r.maxDelta {
		dt = r.maxDelta
	}
	r.phase += dt.Seconds() * r.speed * config.BaseSpeedScale
	r.last = now
	r.frames++

	r.draw()
}

func (r *renderer) draw() {
	c := r.surface.canvas
	c.ClearDevice(config.Background)
	c.SetBlendMode(BlendLighter)

	w, h := r.surface.LogicalSize()
	for _, spec := range r.waves {
		r.points = wave.SampleInto(r.points[:0], spec, r.phase, w, h, r.segments)
		// deep -> core
		for _, layer := range r.halo {
			c.StrokeGlow(r.points, Stroke{
				Color: spec.Color,
				Alpha: layer.Alpha,
				Width: layer.Width,
				Blur:  layer.Blur,
				Cap:   CapRound,
				Join:  JoinRound,
			})
		}
	}
}
