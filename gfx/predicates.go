package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type typeMask uint8

const (
	maskTranslate typeMask = 1 << iota
	maskScale
	maskAffine
	maskPerspective

	maskIdentity typeMask = 0
)

// typeMask classifies t from its entries alone. Any entry that differs from
// the identity, including NaN, sets the matching bit.
func (t Transform) typeMask() typeMask {
	m := t.matrix
	mask := maskIdentity

	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 || m.At(3, 3) != 1 {
		mask |= maskPerspective
	}
	if m.At(0, 3) != 0 || m.At(1, 3) != 0 || m.At(2, 3) != 0 {
		mask |= maskTranslate
	}
	if m.At(0, 0) != 1 || m.At(1, 1) != 1 || m.At(2, 2) != 1 {
		mask |= maskScale
	}
	if m.At(0, 1) != 0 || m.At(0, 2) != 0 ||
		m.At(1, 0) != 0 || m.At(1, 2) != 0 ||
		m.At(2, 0) != 0 || m.At(2, 1) != 0 {
		mask |= maskAffine
	}

	return mask
}

// IsIdentity reports whether every entry equals the identity within mathgl's
// FloatEqual tolerance.
func (t Transform) IsIdentity() bool {
	return t.matrix.ApproxFuncEqual(mgl64.Ident4(), mgl64.FloatEqual)
}

func (t Transform) IsIdentityOrTranslation() bool {
	return t.typeMask()&^maskTranslate == 0
}

// IsIdentityOrIntegerTranslation also requires every translation component
// to be a finite whole number.
func (t Transform) IsIdentityOrIntegerTranslation() bool {
	if !t.IsIdentityOrTranslation() {
		return false
	}
	for row := 0; row < 3; row++ {
		v := t.matrix.At(row, 3)
		if math.IsInf(v, 0) || v != math.Trunc(v) {
			return false
		}
	}
	return true
}

func (t Transform) IsScaleOrTranslation() bool {
	return t.typeMask()&^(maskTranslate|maskScale) == 0
}

func (t Transform) HasPerspective() bool {
	return t.typeMask()&maskPerspective != 0
}

// IsFlat reports whether t keeps the z=0 plane in place: z never feeds into
// x, y or w and x, y never feed into z.
func (t Transform) IsFlat() bool {
	m := t.matrix
	return m.At(0, 2) == 0 && m.At(1, 2) == 0 && m.At(3, 2) == 0 &&
		m.At(2, 0) == 0 && m.At(2, 1) == 0 && m.At(2, 3) == 0 && m.At(2, 2) == 1
}
