package game

import (
	"image/color"
	"time"

	"github.com/iburimskiy/glow-background/internal/wave"
)

// Host is the environment a Background is mounted into. All callbacks are
// delivered on a single goroutine; none of them may block.
type Host interface {
	// DevicePixelRatio reports physical pixels per logical pixel.
	DevicePixelRatio() float64
	// ViewportSize reports the current viewport size in logical pixels.
	ViewportSize() (width, height float64)
	// Now is the monotonic clock that also stamps frame callbacks.
	Now() time.Duration

	AddResizeListener(fn func()) (remove func())
	RequestFrame(fn func(now time.Duration)) FrameID
	CancelFrame(id FrameID)
	AfterFunc(d time.Duration, fn func()) (stop func())

	// Canvas acquires the drawing surface. ok is false when none is available.
	Canvas() (c Canvas, ok bool)
}

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// BlendMode selects how strokes are composited onto the backing store.
type BlendMode int

const (
	BlendSourceOver BlendMode = iota
	// BlendLighter adds source and destination, so overlapping glows intensify.
	BlendLighter
)

func (m BlendMode) String() string {
	switch m {
	case BlendSourceOver:
		return "source-over"
	case BlendLighter:
		return "lighter"
	default:
		return "unknown"
	}
}

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
)

// Stroke describes one blurred pass over a polyline. Width and Blur are in logical pixels.
type Stroke struct {
	Color color.RGBA
	Alpha float64
	Width float64
	Blur  float64
	Cap   LineCap
	Join  LineJoin
}

// Canvas is the drawing surface owned by one mounted Background.
// Implementations must not retain the points slice passed to StrokeGlow.
type Canvas interface {
	// Resize sets the visible logical size and the backing-store size in device pixels.
	Resize(logicalW, logicalH float64, physicalW, physicalH int)
	// SetScale sets the uniform logical-to-physical transform.
	SetScale(s float64)
	// ClearDevice fills the whole backing store, ignoring the current transform.
	ClearDevice(c color.Color)
	SetBlendMode(m BlendMode)
	StrokeGlow(points []wave.Point, s Stroke)
}
