package game

import "math"

// Surface keeps the canvas backing store sized to the viewport at native
// density while drawing code works in logical pixels.
type Surface struct {
	canvas Canvas

	logicalW, logicalH   float64
	ratio                float64
	physicalW, physicalH int
	configured           bool
}

func NewSurface(c Canvas) *Surface {
	return &Surface{canvas: c, ratio: 1}
}

// Configure resizes the backing store to ceil(logical*ratio), never below one
// device pixel per side, and installs a uniform ratio scale. Repeating the
// last inputs is a no-op.
func (s *Surface) Configure(logicalW, logicalH, ratio float64) {
	logicalW = nonNegative(logicalW)
	logicalH = nonNegative(logicalH)
	if !(ratio >= 1) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	if s.configured && logicalW == s.logicalW && logicalH == s.logicalH && ratio == s.ratio {
		return
	}

	s.logicalW, s.logicalH, s.ratio = logicalW, logicalH, ratio
	s.physicalW = physicalSize(logicalW, ratio)
	s.physicalH = physicalSize(logicalH, ratio)
	s.configured = true

	s.canvas.Resize(s.logicalW, s.logicalH, s.physicalW, s.physicalH)
	s.canvas.SetScale(s.ratio)
}

func (s *Surface) LogicalSize() (w, h float64) { return s.logicalW, s.logicalH }

func (s *Surface) PhysicalSize() (w, h int) { return s.physicalW, s.physicalH }

func (s *Surface) Ratio() float64 { return s.ratio }

// physicalSize rounds up, ignoring float noise such as 1000*1.1 = 1100.0000000000002.
func physicalSize(logical, ratio float64) int {
	n := int(math.Ceil(logical*ratio - 1e-9))
	if n < 1 {
		return 1
	}
	return n
}
