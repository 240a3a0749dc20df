package decomp

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// singularEpsilon is the smallest |det| of the perspective free part of a
// normalized matrix that Decompose accepts.
const singularEpsilon = 1e-8

// Decompose factors m into its components. It returns false, along with the
// identity decomposition, when m[3][3] is zero or when the upper 3x3 part of
// the normalized matrix is singular.
func Decompose(m mgl64.Mat4) (DecomposedTransform, bool) {
	d := NewDecomposedTransform()

	w := m.At(3, 3)
	if w == 0 {
		return d, false
	}
	for i := range m {
		m[i] /= w
	}

	// Same matrix with the perspective row cleared; it doubles as the
	// singularity test for the upper 3x3.
	perspectiveMatrix := m
	perspectiveMatrix.SetRow(3, mgl64.Vec4{0, 0, 0, 1})
	if math.Abs(perspectiveMatrix.Det()) < singularEpsilon {
		return d, false
	}

	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 {
		// Solve perspectiveMatrix^T * p = row 3 for p.
		rhs := m.Row(3)
		d.Perspective = perspectiveMatrix.Inv().Transpose().Mul4x1(rhs)
	}

	d.Translate = mgl64.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}

	var axes [3]mgl64.Vec3
	for i := range axes {
		axes[i] = m.Col(i).Vec3()
	}

	d.Scale[0] = axes[0].Len()
	axes[0] = axes[0].Mul(1 / d.Scale[0])

	d.Skew[0] = axes[0].Dot(axes[1])
	axes[1] = combine(axes[1], axes[0], 1, -d.Skew[0])

	d.Scale[1] = axes[1].Len()
	axes[1] = axes[1].Mul(1 / d.Scale[1])
	d.Skew[0] /= d.Scale[1]

	d.Skew[1] = axes[0].Dot(axes[2])
	axes[2] = combine(axes[2], axes[0], 1, -d.Skew[1])
	d.Skew[2] = axes[1].Dot(axes[2])
	axes[2] = combine(axes[2], axes[1], 1, -d.Skew[2])

	d.Scale[2] = axes[2].Len()
	axes[2] = axes[2].Mul(1 / d.Scale[2])
	d.Skew[1] /= d.Scale[2]
	d.Skew[2] /= d.Scale[2]

	// A negative triple product means the basis is mirrored.
	if axes[0].Dot(axes[1].Cross(axes[2])) < 0 {
		for i := range axes {
			d.Scale[i] = -d.Scale[i]
			axes[i] = axes[i].Mul(-1)
		}
	}

	d.Quaternion = quaternionFromAxes(axes)

	return d, true
}

// combine returns a*as + b*bs.
func combine(a, b mgl64.Vec3, as, bs float64) mgl64.Vec3 {
	return a.Mul(as).Add(b.Mul(bs))
}

// quaternionFromAxes extracts the rotation from an orthonormal basis given as
// the columns of the rotation matrix.
func quaternionFromAxes(axes [3]mgl64.Vec3) mgl64.Quat {
	q := mgl64.Quat{
		W: 0.5 * math.Sqrt(math.Max(1+axes[0][0]+axes[1][1]+axes[2][2], 0)),
		V: mgl64.Vec3{
			0.5 * math.Sqrt(math.Max(1+axes[0][0]-axes[1][1]-axes[2][2], 0)),
			0.5 * math.Sqrt(math.Max(1-axes[0][0]+axes[1][1]-axes[2][2], 0)),
			0.5 * math.Sqrt(math.Max(1-axes[0][0]-axes[1][1]+axes[2][2], 0)),
		},
	}

	if axes[2][1] > axes[1][2] {
		q.V[0] = -q.V[0]
	}
	if axes[0][2] > axes[2][0] {
		q.V[1] = -q.V[1]
	}
	if axes[1][0] > axes[0][1] {
		q.V[2] = -q.V[2]
	}

	return q
}
