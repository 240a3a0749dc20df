package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds represents an axis-aligned bounding box
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyBounds returns an inverted box that any Extend call replaces.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// BoundsOf returns the smallest box containing all points.
func BoundsOf(points ...Point3F) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Extend grows the box to include point
func (b Bounds) Extend(point Point3F) Bounds {
	v := point.Vec3()
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], v[i])
		b.Max[i] = math.Max(b.Max[i], v[i])
	}
	return b
}

// ContainsPoint reports whether point lies inside the box, faces included.
// NaN coordinates are never inside.
func (b Bounds) ContainsPoint(point Point3F) bool {
	v := point.Vec3()
	for i := range v {
		if !(v[i] >= b.Min[i] && v[i] <= b.Max[i]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether the boxes share at least one point on every axis.
func (b Bounds) Overlaps(other Bounds) bool {
	for i := 0; i < 3; i++ {
		if !(b.Max[i] >= other.Min[i] && other.Max[i] >= b.Min[i]) {
			return false
		}
	}
	return true
}

// RectF drops z and returns the x/y extent.
func (b Bounds) RectF() RectF {
	return RectF{
		X:      b.Min.X(),
		Y:      b.Min.Y(),
		Width:  b.Max.X() - b.Min.X(),
		Height: b.Max.Y() - b.Min.Y(),
	}
}
