package gfx

import "github.com/go-gl/mathgl/mgl64"

// Point is an integer 2D point, the result of mapping and rounding.
type Point struct {
	X, Y int
}

// Point3F is a 3D point with float coordinates.
type Point3F struct {
	X, Y, Z float64
}

func (p Point3F) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func point3FromVec3(v mgl64.Vec3) Point3F {
	return Point3F{X: v[0], Y: v[1], Z: v[2]}
}

func (p Point3F) SquaredDistanceTo(other Point3F) float64 {
	return p.Vec3().Sub(other.Vec3()).LenSqr()
}

// RectF is an axis aligned rectangle in the z=0 plane.
type RectF struct {
	X, Y          float64
	Width, Height float64
}

func (r RectF) Right() float64 {
	return r.X + r.Width
}

func (r RectF) Bottom() float64 {
	return r.Y + r.Height
}

func (r RectF) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bounds returns the box of r in the z=0 plane.
func (r RectF) Bounds() Bounds {
	corners := r.Corners()
	return BoundsOf(corners[:]...)
}

// Corners returns the four corners in winding order, starting at the origin.
func (r RectF) Corners() [4]Point3F {
	return [4]Point3F{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}
