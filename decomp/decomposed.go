// Package decomp splits a 4x4 homogeneous matrix into translation, scale,
// skew, rotation and perspective components and puts it back together.
//
// The decomposition is the unmatrix algorithm from Graphics Gems II
// ("Decomposing a Matrix into Simple Transformations", Spencer W. Thomas)
// as adopted by the CSS Transforms specification for interpolating
// transform lists. Rotations are stored as unit quaternions so that two
// decompositions can be blended along the shortest arc.
package decomp

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DecomposedTransform holds the components of a matrix.
//
// Skew is ordered {xy, xz, yz}. Quaternion uses mathgl's layout, W is the
// scalar part.
type DecomposedTransform struct {
	Translate   mgl64.Vec3
	Scale       mgl64.Vec3
	Skew        mgl64.Vec3
	Perspective mgl64.Vec4
	Quaternion  mgl64.Quat
}

// NewDecomposedTransform returns the decomposition of the identity matrix.
func NewDecomposedTransform() DecomposedTransform {
	return DecomposedTransform{
		Translate:   mgl64.Vec3{0, 0, 0},
		Scale:       mgl64.Vec3{1, 1, 1},
		Skew:        mgl64.Vec3{0, 0, 0},
		Perspective: mgl64.Vec4{0, 0, 0, 1},
		Quaternion:  mgl64.QuatIdent(),
	}
}

func (d DecomposedTransform) String() string {
	return fmt.Sprintf("translate: %v scale: %v skew: %v perspective: %v quaternion: %v %v",
		d.Translate, d.Scale, d.Skew, d.Perspective, d.Quaternion.W, d.Quaternion.V)
}
