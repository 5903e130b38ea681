package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/glow-background/internal/wave"
)

// Strokes below this blur (in device pixels) skip the shader passes.
const minBlurSigma = 0.5

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas draws into an offscreen backing store sized in device pixels.
// Each glow stroke is tessellated opaque into a scratch layer, blurred in two
// passes, and composited with the stroke alpha so a translucent stroke never
// darkens its own joins.
type ebitenCanvas struct {
	backing *ebiten.Image
	layer   *ebiten.Image
	scratch *ebiten.Image
	shader  *ebiten.Shader

	logicalW, logicalH float64
	scale              float64
	blend              ebiten.Blend

	vertices []ebiten.Vertex
	indices  []uint16
}

func newEbitenCanvas() (*ebitenCanvas, error) {
	shader, err := ebiten.NewShader([]byte(blurShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile blur shader: %w", err)
	}
	return &ebitenCanvas{shader: shader, scale: 1, blend: ebiten.BlendSourceOver}, nil
}

func (c *ebitenCanvas) Resize(logicalW, logicalH float64, physicalW, physicalH int) {
	c.logicalW, c.logicalH = logicalW, logicalH
	if c.backing != nil {
		b := c.backing.Bounds()
		if b.Dx() == physicalW && b.Dy() == physicalH {
			return
		}
		c.backing.Deallocate()
		c.layer.Deallocate()
		c.scratch.Deallocate()
	}
	c.backing = ebiten.NewImage(physicalW, physicalH)
	c.layer = ebiten.NewImage(physicalW, physicalH)
	c.scratch = ebiten.NewImage(physicalW, physicalH)
}

func (c *ebitenCanvas) SetScale(s float64) { c.scale = s }

func (c *ebitenCanvas) ClearDevice(col color.Color) {
	if c.backing == nil {
		return
	}
	c.backing.Fill(col)
}

func (c *ebitenCanvas) SetBlendMode(m BlendMode) {
	switch m {
	case BlendLighter:
		c.blend = ebiten.BlendLighter
	default:
		c.blend = ebiten.BlendSourceOver
	}
}

func (c *ebitenCanvas) StrokeGlow(points []wave.Point, s Stroke) {
	if c.backing == nil || len(points) < 2 || !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    float32(s.Width),
		LineCap:  vectorCap(s.Cap),
		LineJoin: vectorJoin(s.Join),
	})

	scale := float32(c.scale)
	r := float32(s.Color.R) / 0xff
	g := float32(s.Color.G) / 0xff
	b := float32(s.Color.B) / 0xff
	for i := range c.vertices {
		v := &c.vertices[i]
		v.DstX *= scale
		v.DstY *= scale
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = 1
	}

	c.layer.Clear()
	c.layer.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	alpha := float32(clamp01(s.Alpha))
	sigma := glowSigma(s.Blur, c.scale)
	if sigma == 0 {
		op := &ebiten.DrawImageOptions{Blend: c.blend}
		op.ColorScale.ScaleAlpha(alpha)
		c.backing.DrawImage(c.layer, op)
		return
	}

	bounds := c.backing.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	c.scratch.Clear()
	horizontal := &ebiten.DrawRectShaderOptions{Blend: ebiten.BlendCopy}
	horizontal.Images[0] = c.layer
	horizontal.Uniforms = map[string]any{
		"Direction": []float32{1, 0},
		"Sigma":     float32(sigma),
	}
	c.scratch.DrawRectShader(w, h, c.shader, horizontal)

	vertical := &ebiten.DrawRectShaderOptions{Blend: c.blend}
	vertical.Images[0] = c.scratch
	vertical.Uniforms = map[string]any{
		"Direction": []float32{0, 1},
		"Sigma":     float32(sigma),
	}
	vertical.ColorScale.ScaleAlpha(alpha)
	c.backing.DrawRectShader(w, h, c.shader, vertical)
}

// glowSigma converts a blur radius in logical pixels to a shader sigma in
// device pixels. Zero means the stroke is composited without blurring.
func glowSigma(blur, scale float64) float64 {
	sigma := blur * scale
	if !(sigma >= minBlurSigma) || math.IsInf(sigma, 0) {
		return 0
	}
	return sigma
}

func vectorCap(lc LineCap) vector.LineCap {
	if lc == CapRound {
		return vector.LineCapRound
	}
	return vector.LineCapButt
}

func vectorJoin(lj LineJoin) vector.LineJoin {
	if lj == JoinRound {
		return vector.LineJoinRound
	}
	return vector.LineJoinMiter
}
