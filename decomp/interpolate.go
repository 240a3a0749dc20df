package decomp

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// quaternionEpsilon bounds both the "same rotation" and the "opposite
// rotation" tests on the quaternion dot product.
const quaternionEpsilon = 1e-5

// Interpolate blends two decompositions. Translation, scale, skew and
// perspective are interpolated linearly, the rotation spherically along the
// shortest arc.
//
// It returns false when the two rotations are 180 degrees apart, since no
// unique shortest arc exists. Progress 0 and 1 never fail.
func Interpolate(from, to DecomposedTransform, progress float64) (DecomposedTransform, bool) {
	q, ok := Slerp(from.Quaternion, to.Quaternion, progress)
	if !ok {
		return from, false
	}

	return DecomposedTransform{
		Translate:   lerp3(from.Translate, to.Translate, progress),
		Scale:       lerp3(from.Scale, to.Scale, progress),
		Skew:        lerp3(from.Skew, to.Skew, progress),
		Perspective: lerp4(from.Perspective, to.Perspective, progress),
		Quaternion:  q,
	}, true
}

// Slerp interpolates two unit quaternions along the shortest arc.
func Slerp(from, to mgl64.Quat, progress float64) (mgl64.Quat, bool) {
	switch progress {
	case 0:
		return from, true
	case 1:
		return to, true
	}

	dot := mgl64.Clamp(from.Dot(to), -1, 1)
	if math.Abs(math.Abs(dot)-1) < quaternionEpsilon {
		return from, true
	}
	if math.Abs(dot) < quaternionEpsilon {
		return from, false
	}

	return mgl64.QuatSlerp(from, to, progress), true
}

func lerp3(from, to mgl64.Vec3, progress float64) mgl64.Vec3 {
	return from.Mul(1 - progress).Add(to.Mul(progress))
}

func lerp4(from, to mgl64.Vec4, progress float64) mgl64.Vec4 {
	return from.Mul(1 - progress).Add(to.Mul(progress))
}
