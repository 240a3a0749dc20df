package gfx

import "github.com/akmonengine/xform/decomp"

// Decompose splits t into translation, scale, skew, rotation and
// perspective. It fails for matrices with a zero w entry or a singular
// upper 3x3.
func (t Transform) Decompose() (decomp.DecomposedTransform, bool) {
	return decomp.Decompose(t.matrix)
}

// Compose returns the transform described by d.
func Compose(d decomp.DecomposedTransform) Transform {
	return Transform{matrix: decomp.Compose(d)}
}

// Blend interpolates from from (progress 0) to t (progress 1) and stores the
// result in t. Progress outside [0, 1] extrapolates.
//
// It returns false, leaving t untouched, when either transform cannot be
// decomposed or when the two rotations are 180 degrees apart.
func (t *Transform) Blend(from Transform, progress float64) bool {
	if progress == 0 {
		*t = from
		return true
	}

	toDecomp, ok := t.Decompose()
	if !ok {
		return false
	}
	fromDecomp, ok := from.Decompose()
	if !ok {
		return false
	}

	blended, ok := decomp.Interpolate(fromDecomp, toDecomp, progress)
	if !ok {
		return false
	}

	*t = Compose(blended)
	return true
}
