package decomp

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertMat4InDelta(t *testing.T, expected, actual mgl64.Mat4, delta float64) {
	t.Helper()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.InDeltaf(t, expected.At(row, col), actual.At(row, col), delta, "entry (%d,%d)", row, col)
		}
	}
}

// =============================================================================
// Decompose
// =============================================================================

func TestDecompose_Identity(t *testing.T) {
	d, ok := Decompose(mgl64.Ident4())
	require.True(t, ok)
	assert.Equal(t, NewDecomposedTransform(), d)
}

func TestDecompose_Failures(t *testing.T) {
	tests := []struct {
		name string
		m    mgl64.Mat4
	}{
		{
			name: "zero w",
			m: mgl64.Mat4FromRows(
				mgl64.Vec4{1, 0, 0, 0},
				mgl64.Vec4{0, 1, 0, 0},
				mgl64.Vec4{0, 0, 1, 0},
				mgl64.Vec4{0, 0, 0, 0},
			),
		},
		{
			name: "flattened y",
			m:    mgl64.Scale3D(1, 0, 1),
		},
		{
			name: "all zero",
			m:    mgl64.Mat4{},
		},
		{
			name: "singular upper block",
			m: mgl64.Mat4FromRows(
				mgl64.Vec4{1, 2, 3, 0},
				mgl64.Vec4{2, 4, 6, 0},
				mgl64.Vec4{0, 0, 1, 0},
				mgl64.Vec4{0, 0, 0, 1},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Decompose(tt.m)
			assert.False(t, ok)
			assert.Equal(t, NewDecomposedTransform(), d)
		})
	}
}

func TestDecompose_TranslateRotateScale(t *testing.T) {
	for degrees := 0; degrees < 180; degrees++ {
		m := mgl64.Translate3D(float64(degrees), -float64(degrees), 0).
			Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(float64(degrees)))).
			Mul4(mgl64.Scale3D(float64(degrees+1), float64(2*degrees+1), 1))

		d, ok := Decompose(m)
		require.True(t, ok, "degrees %d", degrees)

		assert.InDelta(t, float64(degrees), d.Translate[0], tolerance)
		assert.InDelta(t, -float64(degrees), d.Translate[1], tolerance)
		assert.InDelta(t, float64(degrees+1), d.Scale[0], tolerance)
		assert.InDelta(t, float64(2*degrees+1), d.Scale[1], tolerance)
		assert.InDelta(t, 1.0, d.Scale[2], tolerance)

		angle := math.Acos(d.Quaternion.W) * 360 / math.Pi
		assert.InDelta(t, float64(degrees), angle, 1e-6, "degrees %d", degrees)
	}
}

func TestDecompose_Skew(t *testing.T) {
	m := mgl64.Ident4()
	m.Set(0, 1, 1) // skewX(45deg)

	d, ok := Decompose(m)
	require.True(t, ok)
	assert.InDelta(t, 1.0, d.Skew[0], tolerance)
	assert.InDelta(t, 0.0, d.Skew[1], tolerance)
	assert.InDelta(t, 0.0, d.Skew[2], tolerance)
	assert.InDelta(t, 1.0, d.Quaternion.W, tolerance)
}

func TestDecompose_Perspective(t *testing.T) {
	m := mgl64.Ident4()
	m.Set(3, 2, -1.0/200)

	d, ok := Decompose(m)
	require.True(t, ok)
	assert.InDelta(t, 0.0, d.Perspective[0], tolerance)
	assert.InDelta(t, 0.0, d.Perspective[1], tolerance)
	assert.InDelta(t, -0.005, d.Perspective[2], tolerance)
	assert.InDelta(t, 1.0, d.Perspective[3], tolerance)
}

func TestDecompose_Reflection(t *testing.T) {
	m := mgl64.Scale3D(-1, 1, 1)

	d, ok := Decompose(m)
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		assert.Less(t, d.Scale[i], 0.0)
	}
	assertMat4InDelta(t, m, Compose(d), tolerance)
}

// =============================================================================
// Compose
// =============================================================================

func TestCompose_Identity(t *testing.T) {
	assert.Equal(t, mgl64.Ident4(), Compose(NewDecomposedTransform()))
}

func TestCompose_RoundTrip(t *testing.T) {
	skewY := mgl64.Ident4()
	skewY.Set(1, 0, 1)

	perspective := mgl64.Ident4()
	perspective.Set(3, 2, -1)

	tests := []struct {
		name string
		m    mgl64.Mat4
	}{
		{"translate", mgl64.Translate3D(10, 20, 30)},
		{"scale", mgl64.Scale3D(2, 3, 4)},
		{"rotate x", mgl64.HomogRotate3DX(mgl64.DegToRad(30))},
		{"rotate axis", mgl64.HomogRotate3D(mgl64.DegToRad(70), mgl64.Vec3{1, 2, 3}.Normalize())},
		{"skew y", skewY},
		{
			name: "composite",
			m: mgl64.Translate3D(10, 20, 30).
				Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(25))).
				Mul4(skewY).
				Mul4(mgl64.Scale3D(6, 7, 8)),
		},
		{
			name: "perspective composite",
			m: perspective.
				Mul4(mgl64.Translate3D(10, 20, 30)).
				Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(25))).
				Mul4(mgl64.Scale3D(6, 7, 8)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Decompose(tt.m)
			require.True(t, ok)

			expected := tt.m.Mul(1 / tt.m.At(3, 3))
			assertMat4InDelta(t, expected, Compose(d), 1e-7)
		})
	}
}

// =============================================================================
// Interpolate / Slerp
// =============================================================================

func TestSlerp_Endpoints(t *testing.T) {
	from := mgl64.QuatIdent()
	to := mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})

	q, ok := Slerp(from, to, 0)
	assert.True(t, ok)
	assert.Equal(t, from, q)

	q, ok = Slerp(from, to, 1)
	assert.True(t, ok)
	assert.Equal(t, to, q)
}

func TestSlerp_Opposite(t *testing.T) {
	axes := []mgl64.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		mgl64.Vec3{1, 1, 1}.Normalize(),
	}

	for _, axis := range axes {
		to := mgl64.QuatRotate(math.Pi, axis)
		for _, progress := range []float64{0.25, 0.5, 0.75} {
			_, ok := Slerp(mgl64.QuatIdent(), to, progress)
			assert.False(t, ok, "axis %v progress %v", axis, progress)
		}
	}
}

func TestSlerp_SameRotation(t *testing.T) {
	from := mgl64.QuatRotate(0.3, mgl64.Vec3{0, 0, 1})
	negated := from.Scale(-1)

	q, ok := Slerp(from, negated, 0.5)
	require.True(t, ok)
	assert.Equal(t, from, q)
}

func TestSlerp_Halfway(t *testing.T) {
	to := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})

	q, ok := Slerp(mgl64.QuatIdent(), to, 0.5)
	require.True(t, ok)

	expected := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1})
	assert.True(t, expected.ApproxEqualThreshold(q, tolerance), "got %v", q)
}

func TestInterpolate_Linear(t *testing.T) {
	from := NewDecomposedTransform()
	from.Translate = mgl64.Vec3{100, 200, 100}
	from.Scale = mgl64.Vec3{2, 2, 2}
	from.Perspective = mgl64.Vec4{0, 0, -0.005, 1}

	to := NewDecomposedTransform()
	to.Translate = mgl64.Vec3{200, 100, 300}
	to.Scale = mgl64.Vec3{4, 1, 2}
	to.Skew = mgl64.Vec3{1, 0, 0}
	to.Perspective = mgl64.Vec4{0, 0, -0.00125, 1}

	d, ok := Interpolate(from, to, 0.25)
	require.True(t, ok)

	assert.Equal(t, mgl64.Vec3{125, 175, 150}, d.Translate)
	assert.Equal(t, mgl64.Vec3{2.5, 1.75, 2}, d.Scale)
	assert.Equal(t, mgl64.Vec3{0.25, 0, 0}, d.Skew)
	assert.InDelta(t, -0.00406250, d.Perspective[2], 1e-12)
	assert.Equal(t, mgl64.QuatIdent(), d.Quaternion)
}

func TestInterpolate_Fails(t *testing.T) {
	from := NewDecomposedTransform()
	to := NewDecomposedTransform()
	to.Quaternion = mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})

	_, ok := Interpolate(from, to, 0.5)
	assert.False(t, ok)

	d, ok := Interpolate(from, to, 1)
	assert.True(t, ok)
	assert.Equal(t, to.Quaternion, d.Quaternion)
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkDecompose(b *testing.B) {
	m := mgl64.Translate3D(10, 20, 30).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(25))).
		Mul4(mgl64.Scale3D(6, 7, 8))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decompose(m)
	}
}

func BenchmarkInterpolate(b *testing.B) {
	from, _ := Decompose(mgl64.Ident4())
	to, _ := Decompose(mgl64.HomogRotate3DZ(mgl64.DegToRad(90)).Mul4(mgl64.Scale3D(2, 2, 2)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Interpolate(from, to, 0.5)
	}
}
