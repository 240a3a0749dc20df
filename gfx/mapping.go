package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// axisAlignedEpsilon is the absolute tolerance used to decide whether a
// mapped rectangle edge is still horizontal or vertical.
const axisAlignedEpsilon = 1e-9

// TransformPoint3 maps p through t, dividing by w when w is neither 0 nor 1.
func (t Transform) TransformPoint3(p Point3F) Point3F {
	return mapPoint(t.matrix, p)
}

// TransformPoint maps p in the z=0 plane and rounds the result to the
// nearest integer point.
func (t Transform) TransformPoint(p Point) Point {
	return roundPoint(mapPoint(t.matrix, Point3F{X: float64(p.X), Y: float64(p.Y)}))
}

// TransformPoint3Reverse maps p through the inverse of t. It returns p and
// false when t is not invertible.
func (t Transform) TransformPoint3Reverse(p Point3F) (Point3F, bool) {
	inverse, ok := t.GetInverse()
	if !ok {
		return p, false
	}
	return mapPoint(inverse.matrix, p), true
}

func (t Transform) TransformPointReverse(p Point) (Point, bool) {
	inverse, ok := t.GetInverse()
	if !ok {
		return p, false
	}
	return inverse.TransformPoint(p), true
}

// TransformRect maps the corners of r and returns their bounding rectangle.
// The boolean reports whether the mapped quad is itself an axis aligned
// rectangle, i.e. whether the result is exact.
func (t Transform) TransformRect(r RectF) (RectF, bool) {
	if t.typeMask() == maskIdentity {
		return r, true
	}
	return mapRect(t.matrix, r)
}

// TransformRectReverse is TransformRect through the inverse of t. It returns
// r unchanged and false when t is not invertible.
func (t Transform) TransformRectReverse(r RectF) (RectF, bool) {
	inverse, ok := t.GetInverse()
	if !ok {
		return r, false
	}
	return inverse.TransformRect(r)
}

// ProjectPoint follows the line of sight through the viewport point (x, y)
// back onto the z=0 plane that t draws. It returns false when t is not
// invertible or the line of sight runs parallel to that plane.
func (t Transform) ProjectPoint(x, y float64) (Point3F, bool) {
	inverse, ok := t.GetInverse()
	if !ok {
		return Point3F{}, false
	}

	m := inverse.matrix
	if m.At(2, 2) == 0 {
		return Point3F{}, false
	}
	// z at which the inverse lands on the plane
	z := -(m.At(2, 0)*x + m.At(2, 1)*y + m.At(2, 3)) / m.At(2, 2)

	p := mapPoint(m, Point3F{X: x, Y: y, Z: z})
	p.Z = 0
	return p, true
}

func mapPoint(m mgl64.Mat4, p Point3F) Point3F {
	v := m.Mul4x1(p.Vec3().Vec4(1))
	w := v.W()
	if w != 1 && w != 0 {
		return point3FromVec3(v.Vec3().Mul(1 / w))
	}
	return point3FromVec3(v.Vec3())
}

func mapRect(m mgl64.Mat4, r RectF) (RectF, bool) {
	corners := r.Corners()
	for i, corner := range corners {
		corners[i] = mapPoint(m, corner)
	}

	return BoundsOf(corners[:]...).RectF(), isAxisAligned(corners)
}

// isAxisAligned reports whether every edge of the quad is horizontal or
// vertical.
func isAxisAligned(quad [4]Point3F) bool {
	for i := range quad {
		a, b := quad[i], quad[(i+1)%len(quad)]
		horizontal := math.Abs(a.Y-b.Y) <= axisAlignedEpsilon
		vertical := math.Abs(a.X-b.X) <= axisAlignedEpsilon
		if !horizontal && !vertical {
			return false
		}
	}
	return true
}

func roundPoint(p Point3F) Point {
	return Point{
		X: int(math.Floor(p.X + 0.5)),
		Y: int(math.Floor(p.Y + 0.5)),
	}
}
