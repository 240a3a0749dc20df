package gfx

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

var interpolators = map[string]draw.Interpolator{
	"nearest":         draw.NearestNeighbor,
	"approx-bilinear": draw.ApproxBiLinear,
	"bilinear":        draw.BiLinear,
	"catmull-rom":     draw.CatmullRom,
}

// Interpolator looks up a resampling filter by name: nearest,
// approx-bilinear, bilinear or catmull-rom.
func Interpolator(name string) (draw.Interpolator, bool) {
	interp, ok := interpolators[strings.ToLower(name)]
	return interp, ok
}

// AffineF64 returns the 2D affine part of t in the row major layout used by
// golang.org/x/image: the orthographic projection of the mapped z=0 plane.
// It returns false when t has perspective, since no affine matrix maps that
// plane the same way.
func (t Transform) AffineF64() (f64.Aff3, bool) {
	m := t.matrix
	aff := f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 3),
		m.At(1, 0), m.At(1, 1), m.At(1, 3),
	}
	return aff, !t.HasPerspective()
}

// DrawTransformed draws src onto dst through t, composited with draw.Over.
// A nil transformer uses ApproxBiLinear. It returns false without drawing
// when t has no affine equivalent.
func DrawTransformed(dst draw.Image, src image.Image, t Transform, transformer draw.Transformer) bool {
	aff, ok := t.AffineF64()
	if !ok {
		return false
	}
	if transformer == nil {
		transformer = draw.ApproxBiLinear
	}

	transformer.Transform(dst, aff, src, src.Bounds(), draw.Over, nil)
	return true
}
