package game

import (
	"image/color"
	"time"

	"github.com/iburimskiy/glow-background/internal/wave"
)

// fakeHost drives a real EventLoop by hand.
type fakeHost struct {
	*EventLoop
	width, height float64
	ratio         float64
	canvas        *recordingCanvas
	noCanvas      bool
}

func newFakeHost(width, height, ratio float64) *fakeHost {
	return &fakeHost{
		EventLoop: NewEventLoop(0),
		width:     width,
		height:    height,
		ratio:     ratio,
		canvas:    &recordingCanvas{},
	}
}

func (h *fakeHost) DevicePixelRatio() float64 { return h.ratio }

func (h *fakeHost) ViewportSize() (float64, float64) { return h.width, h.height }

func (h *fakeHost) Canvas() (Canvas, bool) {
	if h.noCanvas {
		return nil, false
	}
	return h.canvas, true
}

// resize changes the viewport and reports it, like a window manager would.
func (h *fakeHost) resize(w, ht float64) {
	h.width, h.height = w, ht
	h.NotifyResize()
}

// step advances the clock to t milliseconds.
func (h *fakeHost) step(ms int) {
	h.Advance(time.Duration(ms) * time.Millisecond)
}

type resizeCall struct {
	logicalW, logicalH   float64
	physicalW, physicalH int
}

type strokeCall struct {
	points []wave.Point
	stroke Stroke
}

// recordingCanvas records every call; StrokeGlow copies the points since the
// caller reuses its buffer.
type recordingCanvas struct {
	ops     []string
	resizes []resizeCall
	scales  []float64
	clears  []color.Color
	blends  []BlendMode
	strokes []strokeCall
}

func (c *recordingCanvas) Resize(logicalW, logicalH float64, physicalW, physicalH int) {
	c.ops = append(c.ops, "resize")
	c.resizes = append(c.resizes, resizeCall{logicalW, logicalH, physicalW, physicalH})
}

func (c *recordingCanvas) SetScale(s float64) {
	c.ops = append(c.ops, "scale")
	c.scales = append(c.scales, s)
}

func (c *recordingCanvas) ClearDevice(col color.Color) {
	c.ops = append(c.ops, "clear")
	c.clears = append(c.clears, col)
}

func (c *recordingCanvas) SetBlendMode(m BlendMode) {
	c.ops = append(c.ops, "blend")
	c.blends = append(c.blends, m)
}

func (c *recordingCanvas) StrokeGlow(points []wave.Point, s Stroke) {
	c.ops = append(c.ops, "stroke")
	c.strokes = append(c.strokes, strokeCall{points: append([]wave.Point(nil), points...), stroke: s})
}

func (c *recordingCanvas) reset() {
	*c = recordingCanvas{}
}
