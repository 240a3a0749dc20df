package decomp

import "github.com/go-gl/mathgl/mgl64"

// Compose rebuilds the matrix
// perspective * translate * rotate * skew(yz) * skew(xz) * skew(xy) * scale.
func Compose(d DecomposedTransform) mgl64.Mat4 {
	m := mgl64.Ident4()
	m.SetRow(3, d.Perspective)

	m = m.Mul4(mgl64.Translate3D(d.Translate[0], d.Translate[1], d.Translate[2]))
	m = m.Mul4(d.Quaternion.Mat4())

	if d.Skew[2] != 0 {
		m = m.Mul4(skewMatrix(1, 2, d.Skew[2]))
	}
	if d.Skew[1] != 0 {
		m = m.Mul4(skewMatrix(0, 2, d.Skew[1]))
	}
	if d.Skew[0] != 0 {
		m = m.Mul4(skewMatrix(0, 1, d.Skew[0]))
	}

	return m.Mul4(mgl64.Scale3D(d.Scale[0], d.Scale[1], d.Scale[2]))
}

func skewMatrix(row, col int, value float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	m.Set(row, col, value)
	return m
}
