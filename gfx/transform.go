// Package gfx provides Transform, a 4x4 homogeneous matrix used to place
// layers in 3D space, together with the geometry it maps.
//
// Points are column vectors: a transform maps p to M * p. Every composition
// method post-multiplies the receiver (this = this * X), so the operation
// applied last is the first one seen by a mapped point.
package gfx

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a 4x4 matrix. The zero value is the zero matrix; use
// Identity for the identity transform.
type Transform struct {
	matrix mgl64.Mat4
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{matrix: mgl64.Ident4()}
}

// NewTransform wraps a mathgl matrix.
func NewTransform(m mgl64.Mat4) Transform {
	return Transform{matrix: m}
}

// NewTransformFromRows builds a transform from its 16 entries given in row
// order.
func NewTransformFromRows(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64) Transform {
	return Transform{matrix: mgl64.Mat4FromRows(
		mgl64.Vec4{m00, m01, m02, m03},
		mgl64.Vec4{m10, m11, m12, m13},
		mgl64.Vec4{m20, m21, m22, m23},
		mgl64.Vec4{m30, m31, m32, m33},
	)}
}

// Matrix returns a copy of the underlying matrix.
func (t Transform) Matrix() mgl64.Mat4 {
	return t.matrix
}

// Clone returns a copy of t.
func (t Transform) Clone() Transform {
	return t
}

// At returns the entry at row, col.
func (t Transform) At(row, col int) float64 {
	return t.matrix.At(row, col)
}

// Set stores value at row, col.
func (t *Transform) Set(row, col int, value float64) {
	t.matrix.Set(row, col, value)
}

// MakeIdentity resets t to the identity.
func (t *Transform) MakeIdentity() *Transform {
	t.matrix = mgl64.Ident4()
	return t
}

// =============================================================================
// Composition
// =============================================================================

// Rotate rotates around the z axis. Positive angles turn x towards y.
func (t *Transform) Rotate(degrees float64) *Transform {
	return t.RotateAboutZAxis(degrees)
}

func (t *Transform) RotateAboutXAxis(degrees float64) *Transform {
	return t.PreconcatMatrix(mgl64.HomogRotate3DX(mgl64.DegToRad(degrees)))
}

func (t *Transform) RotateAboutYAxis(degrees float64) *Transform {
	return t.PreconcatMatrix(mgl64.HomogRotate3DY(mgl64.DegToRad(degrees)))
}

func (t *Transform) RotateAboutZAxis(degrees float64) *Transform {
	return t.PreconcatMatrix(mgl64.HomogRotate3DZ(mgl64.DegToRad(degrees)))
}

// RotateAbout rotates around an arbitrary axis, which does not need to be
// normalized. A zero length axis leaves t unchanged.
func (t *Transform) RotateAbout(axis mgl64.Vec3, degrees float64) *Transform {
	length := axis.Len()
	if length == 0 {
		return t
	}
	axis = axis.Mul(1 / length)

	switch axis {
	case mgl64.Vec3{1, 0, 0}:
		return t.RotateAboutXAxis(degrees)
	case mgl64.Vec3{0, 1, 0}:
		return t.RotateAboutYAxis(degrees)
	case mgl64.Vec3{0, 0, 1}:
		return t.RotateAboutZAxis(degrees)
	}

	return t.PreconcatMatrix(mgl64.HomogRotate3D(mgl64.DegToRad(degrees), axis))
}

func (t *Transform) Scale(x, y float64) *Transform {
	return t.Scale3d(x, y, 1)
}

func (t *Transform) Scale3d(x, y, z float64) *Transform {
	return t.PreconcatMatrix(mgl64.Scale3D(x, y, z))
}

func (t *Transform) Translate(x, y float64) *Transform {
	return t.Translate3d(x, y, 0)
}

func (t *Transform) Translate3d(x, y, z float64) *Transform {
	return t.PreconcatMatrix(mgl64.Translate3D(x, y, z))
}

// SkewX shears x by tan(degrees) * y.
func (t *Transform) SkewX(degrees float64) *Transform {
	skew := mgl64.Ident4()
	skew.Set(0, 1, math.Tan(mgl64.DegToRad(degrees)))
	return t.PreconcatMatrix(skew)
}

// SkewY shears y by tan(degrees) * x.
func (t *Transform) SkewY(degrees float64) *Transform {
	skew := mgl64.Ident4()
	skew.Set(1, 0, math.Tan(mgl64.DegToRad(degrees)))
	return t.PreconcatMatrix(skew)
}

// ApplyPerspectiveDepth applies a perspective projection with the viewer at
// distance depth from the z=0 plane. A depth of 0 is ignored.
func (t *Transform) ApplyPerspectiveDepth(depth float64) *Transform {
	if depth == 0 {
		return t
	}
	perspective := mgl64.Ident4()
	perspective.Set(3, 2, -1/depth)
	return t.PreconcatMatrix(perspective)
}

// PreconcatTransform sets t to t * other: other is applied first.
func (t *Transform) PreconcatTransform(other Transform) *Transform {
	return t.PreconcatMatrix(other.matrix)
}

// ConcatTransform sets t to other * t: other is applied last.
func (t *Transform) ConcatTransform(other Transform) *Transform {
	t.matrix = other.matrix.Mul4(t.matrix)
	return t
}

func (t *Transform) PreconcatMatrix(m mgl64.Mat4) *Transform {
	t.matrix = t.matrix.Mul4(m)
	return t
}

// Multiply returns t * other without modifying t.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{matrix: t.matrix.Mul4(other.matrix)}
}

// =============================================================================
// Inverse / Transpose
// =============================================================================

// IsInvertible reports whether the determinant is finite and non zero.
func (t Transform) IsInvertible() bool {
	det := t.matrix.Det()
	return !math.IsNaN(det) && !math.IsInf(det, 0) && !mgl64.FloatEqual(det, 0)
}

// GetInverse returns the inverse of t. When t is not invertible it returns
// the identity and false.
func (t Transform) GetInverse() (Transform, bool) {
	if !t.IsInvertible() {
		return Identity(), false
	}
	return Transform{matrix: t.matrix.Inv()}, true
}

// IsBackFaceVisible reports whether the back of a layer drawn with t faces
// the viewer. Singular transforms report false.
func (t Transform) IsBackFaceVisible() bool {
	inverse, ok := t.GetInverse()
	if !ok {
		return false
	}
	return inverse.matrix.At(2, 2) < 0
}

func (t *Transform) Transpose() *Transform {
	t.matrix = t.matrix.Transpose()
	return t
}

// =============================================================================
// Comparison
// =============================================================================

// Equal compares all 16 entries exactly.
func (t Transform) Equal(other Transform) bool {
	return t.matrix == other.matrix
}

// ApproxEqual compares all 16 entries with an absolute tolerance.
func (t Transform) ApproxEqual(other Transform, epsilon float64) bool {
	for i := range t.matrix {
		if math.Abs(t.matrix[i]-other.matrix[i]) > epsilon {
			return false
		}
	}
	return true
}

func (t Transform) String() string {
	return fmt.Sprintf("[ %+.4f %+.4f %+.4f %+.4f\n  %+.4f %+.4f %+.4f %+.4f\n  %+.4f %+.4f %+.4f %+.4f\n  %+.4f %+.4f %+.4f %+.4f ]",
		t.At(0, 0), t.At(0, 1), t.At(0, 2), t.At(0, 3),
		t.At(1, 0), t.At(1, 1), t.At(1, 2), t.At(1, 3),
		t.At(2, 0), t.At(2, 1), t.At(2, 2), t.At(2, 3),
		t.At(3, 0), t.At(3, 1), t.At(3, 2), t.At(3, 3))
}
