package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Content is drawn on top of the background. It owns all input handling.
type Content interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// EbitenHost runs an EventLoop inside ebiten's game loop and provides the
// window as the Host viewport. It implements ebiten.Game.
type EbitenHost struct {
	*EventLoop

	start   time.Time
	content Content
	canvas  *ebitenCanvas
	noGPU   bool

	viewportW, viewportH int
	ratio                float64
	sized                bool
	resized              bool

	mount     func()
	unmount   func()
	mounted   bool
	unmounted bool
}

func NewEbitenHost(content Content) *EbitenHost {
	return &EbitenHost{
		EventLoop: NewEventLoop(0),
		start:     time.Now(),
		content:   content,
		ratio:     1,
	}
}

// OnMount registers fn to run on the first tick, once the viewport is known.
func (h *EbitenHost) OnMount(fn func()) { h.mount = fn }

// OnUnmount registers fn to run once when the window closes or content quits.
func (h *EbitenHost) OnUnmount(fn func()) { h.unmount = fn }

func (h *EbitenHost) DevicePixelRatio() float64 { return h.ratio }

func (h *EbitenHost) ViewportSize() (float64, float64) {
	return float64(h.viewportW), float64(h.viewportH)
}

func (h *EbitenHost) Canvas() (Canvas, bool) {
	if h.canvas != nil {
		return h.canvas, true
	}
	if h.noGPU {
		return nil, false
	}
	c, err := newEbitenCanvas()
	if err != nil {
		Logger().Warn("glow background: canvas unavailable", "err", err)
		h.noGPU = true
		return nil, false
	}
	h.canvas = c
	return c, true
}

func (h *EbitenHost) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.Shutdown()
		return ebiten.Termination
	}
	if !h.sized {
		return nil
	}
	if !h.mounted {
		h.mounted = true
		if h.mount != nil {
			h.mount()
		}
	}
	if h.resized {
		h.resized = false
		h.NotifyResize()
	}

	h.Advance(time.Since(h.start))

	if h.content != nil {
		if err := h.content.Update(); err != nil {
			h.Shutdown()
			return err
		}
	}
	return nil
}

func (h *EbitenHost) Draw(screen *ebiten.Image) {
	if h.canvas != nil && h.canvas.backing != nil {
		screen.DrawImage(h.canvas.backing, nil)
	}
	if h.content != nil {
		h.content.Draw(screen)
	}
}

// Layout reports the configured backing store. A window resize is only
// recorded here; the background picks it up after its quiet period, and until
// then ebiten scales the previous backing store to the window.
func (h *EbitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.layout(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
}

func (h *EbitenHost) layout(outsideWidth, outsideHeight int, ratio float64) (int, int) {
	if !(ratio >= 1) {
		ratio = 1
	}
	if !h.sized || outsideWidth != h.viewportW || outsideHeight != h.viewportH || ratio != h.ratio {
		if h.sized {
			h.resized = true
		}
		h.viewportW, h.viewportH, h.ratio = outsideWidth, outsideHeight, ratio
		h.sized = true
	}

	if h.canvas != nil && h.canvas.backing != nil {
		b := h.canvas.backing.Bounds()
		return b.Dx(), b.Dy()
	}
	return physicalSize(float64(h.viewportW), h.ratio), physicalSize(float64(h.viewportH), h.ratio)
}

// Shutdown runs the unmount hook once.
func (h *EbitenHost) Shutdown() {
	if h.unmounted || !h.mounted {
		return
	}
	h.unmounted = true
	if h.unmount != nil {
		h.unmount()
	}
}

var (
	_ Host        = (*EbitenHost)(nil)
	_ ebiten.Game = (*EbitenHost)(nil)
	_ Canvas      = (*ebitenCanvas)(nil)
)
