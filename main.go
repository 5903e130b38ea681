package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/glow-background/internal/config"
	"github.com/iburimskiy/glow-background/internal/game"
)

// overlay is the page content drawn over the background. Keyboard handling
// lives here; the background never sees input.
type overlay struct {
	bg      *game.Background
	preset  string
	showHUD bool
	hud     *ebiten.Image
}

// HUD text is laid out in logical pixels and scaled to the backing store.
const (
	hudMargin = 12
	hudWidth  = 480
	hudHeight = 36
)

func (o *overlay) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHUD = !o.showHUD
	}
	return nil
}

func (o *overlay) Draw(screen *ebiten.Image) {
	if !o.showHUD || o.bg == nil {
		return
	}
	if o.hud == nil {
		o.hud = ebiten.NewImage(hudWidth, hudHeight)
	}
	o.hud.Clear()

	stats := o.bg.Stats()
	status := fmt.Sprintf("preset: %s | %s | fps %.0f | frames %d | phase %.2f",
		o.preset, o.bg.State(), stats.FPS, stats.Frames, o.bg.Phase())
	ebitenutil.DebugPrintAt(o.hud, status, 0, 0)
	ebitenutil.DebugPrintAt(o.hud, "H: toggle info, Esc/Q: quit", 0, 16)

	screen.DrawImage(o.hud, hudOptions(o.bg.Scale()))
}

func hudOptions(scale float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.GeoM.Scale(scale, scale)
	return op
}

func main() {
	var (
		presetPath  = flag.String("preset", "", "path to a YAML preset")
		pick        = flag.Bool("pick", false, "choose the preset with a file dialog")
		speed       = flag.Float64("speed", 0, "global speed multiplier (overrides the preset)")
		segments    = flag.Int("segments", 0, "points per wave minus one (overrides the preset)")
		halo        = flag.String("halo", "", "halo preset: "+strings.Join(config.HaloPresetNames(), ", "))
		logLevel    = flag.String("log-level", "info", "debug, info, warn or error")
		width       = flag.Int("width", config.WindowWidth, "window width in logical pixels")
		height      = flag.Int("height", config.WindowHeight, "window height in logical pixels")
		fullscreen  = flag.Bool("fullscreen", false, "run fullscreen")
		passthrough = flag.Bool("passthrough", false, "let mouse events pass through the window")
		hud         = flag.Bool("hud", true, "show the info overlay")
	)
	flag.Parse()

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)
	game.SetLogger(logger)

	if *pick {
		path, err := pickPreset()
		if err != nil {
			logger.Warn("preset dialog failed", "err", err)
		} else if path != "" {
			*presetPath = path
		}
	}

	opts, name := loadOptions(logger, *presetPath)
	if *speed > 0 {
		opts.Speed = *speed
	}
	if *segments > 0 {
		opts.Segments = *segments
	}
	if *halo != "" {
		layers, ok := config.HaloPreset(*halo)
		if !ok {
			logger.Warn("unknown halo preset, keeping current", "halo", *halo, "known", config.HaloPresetNames())
		} else {
			opts.Halo = layers
		}
	}

	ui := &overlay{preset: name, showHUD: *hud}
	host := game.NewEbitenHost(ui)
	host.OnMount(func() { ui.bg = game.Mount(host, opts) })
	host.OnUnmount(func() { ui.bg.Unmount() })

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Glow Background")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowMousePassthrough(*passthrough)

	err := ebiten.RunGame(host)
	host.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}

// loadOptions never fails: a broken preset falls back to the defaults.
func loadOptions(logger *slog.Logger, path string) (game.Options, string) {
	if path == "" {
		return game.Options{}, "default"
	}
	p, err := config.LoadPreset(path)
	if err != nil {
		logger.Warn("failed to load preset, using defaults", "err", err)
		return game.Options{}, "default"
	}
	return game.Options{
		Waves:    p.WaveSpecs(),
		Speed:    p.SpeedOrDefault(),
		Segments: p.SegmentsOrDefault(),
		Halo:     p.HaloLayers(),
	}, path
}

func pickPreset() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Background Preset"),
		zenity.FileFilters{{
			Name:     "YAML preset",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
