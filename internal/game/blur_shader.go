package game

// blurShaderSrc is a one-dimensional Gaussian blur along Direction with
// standard deviation Sigma in device pixels. Running it once horizontally
// and once vertically gives the full 2D blur. Taps are spread so the kernel
// always reaches 3 sigma.
const blurShaderSrc = `//kage:unit pixels

package main

var Direction vec2
var Sigma float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	step := max(1.0, Sigma*3.0/16.0)
	sum := vec4(0)
	total := 0.0
	for i := 0; i < 33; i++ {
		offset := float(i-16) * step
		weight := exp(-(offset * offset) / (2.0 * Sigma * Sigma))
		sum += imageSrc0At(srcPos+Direction*offset) * weight
		total += weight
	}
	return sum / total * color
}
`
