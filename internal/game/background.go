package game

import (
	"time"

	"github.com/iburimskiy/glow-background/internal/config"
	"github.com/iburimskiy/glow-background/internal/wave"
)

// Options configures a mounted Background. Zero values select the defaults.
type Options struct {
	// Waves are drawn in order; later waves blend on top. Nil selects
	// config.DefaultWaves, an empty non-nil slice draws no waves.
	Waves    []wave.Spec
	Speed    float64
	Segments int
	Halo     []config.HaloLayer
}

func (o Options) withDefaults() Options {
	if o.Waves == nil {
		o.Waves = config.DefaultWaves()
	} else {
		o.Waves = append([]wave.Spec(nil), o.Waves...)
	}
	if !(o.Speed > 0) {
		o.Speed = config.DefaultSpeed
	}
	if o.Segments <= 0 {
		o.Segments = config.DefaultSegments
	} else if o.Segments > config.MaxSegments {
		o.Segments = config.MaxSegments
	}
	if o.Halo == nil {
		o.Halo = config.DefaultHalo()
	} else {
		o.Halo = append([]config.HaloLayer(nil), o.Halo...)
	}
	return o
}

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Background is one mounted glow-wave renderer. It owns its surface, its
// frame request, its resize listener and its debounce timer; Unmount
// releases all of them synchronously.
type Background struct {
	host  Host
	state State

	surface  *Surface
	renderer *renderer
	resize   *debouncer

	removeResize func()
	frame        FrameID
}

// Mount starts rendering on host. When the host has no drawing surface the
// returned Background is already stopped and does nothing.
func Mount(host Host, opts Options) *Background {
	opts = opts.withDefaults()
	b := &Background{host: host}

	canvas, ok := host.Canvas()
	if !ok || canvas == nil {
		Logger().Warn("glow background: drawing surface unavailable, not rendering")
		return b
	}

	b.surface = NewSurface(canvas)
	b.reconcile()

	b.renderer = newRenderer(b.surface, opts, host.Now())
	b.resize = newDebouncer(host, config.ResizeQuietPeriod, b.reconcile)
	b.removeResize = host.AddResizeListener(b.resize.notify)
	b.frame = host.RequestFrame(b.onFrame)
	b.state = Running

	Logger().Debug("glow background mounted",
		"waves", len(opts.Waves),
		"speed", opts.Speed,
		"segments", opts.Segments,
		"halo", len(opts.Halo))
	return b
}

func (b *Background) onFrame(now time.Duration) {
	if b.state != Running {
		return
	}
	b.renderer.onFrame(now)
	b.frame = b.host.RequestFrame(b.onFrame)
}

// reconcile reads the viewport at call time, never a value captured when
// the resize was reported.
func (b *Background) reconcile() {
	w, h := b.host.ViewportSize()
	b.surface.Configure(w, h, b.host.DevicePixelRatio())

	pw, ph := b.surface.PhysicalSize()
	Logger().Debug("glow background surface configured",
		"logical_w", w, "logical_h", h,
		"physical_w", pw, "physical_h", ph,
		"ratio", b.surface.Ratio())
}

// Unmount stops rendering: it removes the resize listener, cancels the
// pending frame and the pending resize reconcile. Calling it again is a no-op.
func (b *Background) Unmount() {
	if b.state != Running {
		return
	}
	b.state = Stopped

	b.removeResize()
	b.host.CancelFrame(b.frame)
	b.resize.cancel()

	Logger().Debug("glow background unmounted", "frames", b.renderer.frames)
}

func (b *Background) State() State { return b.state }

func (b *Background) Running() bool { return b.state == Running }

// Phase returns the accumulated animation phase.
func (b *Background) Phase() float64 {
	if b.renderer == nil {
		return 0
	}
	return b.renderer.phase
}

// Scale returns the device pixels per logical pixel of the configured
// backing store, or 1 when nothing is mounted.
func (b *Background) Scale() float64 {
	if b.surface == nil {
		return 1
	}
	return b.surface.Ratio()
}

func (b *Background) Stats() FrameStats {
	if b.renderer == nil {
		return FrameStats{}
	}
	return FrameStats{Frames: b.renderer.frames, FPS: b.renderer.tap.fps()}
}
