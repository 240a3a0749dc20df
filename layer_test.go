package xform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/akmonengine/xform/gfx"
)

// createCardLayer creates a 10x10 layer pivoting around its center.
func createCardLayer(name string, position mgl64.Vec3) *Layer {
	layer := createTestLayer(name)
	layer.Content = gfx.RectF{Width: 10, Height: 10}
	layer.Origin = mgl64.Vec3{5, 5, 0}
	layer.Position = position
	return layer
}

func TestLayer_ScreenTransformDefaults(t *testing.T) {
	layer := createTestLayer("a")
	layer.Transform.Rotate(30).Translate(4, 2)

	assert.True(t, layer.ScreenTransform().ApproxEqual(layer.Transform, 1e-12))
}

func TestLayer_ScreenTransformOrigin(t *testing.T) {
	layer := createCardLayer("a", mgl64.Vec3{20, 30, 0})
	layer.Transform.Rotate(90)

	screen := layer.ScreenTransform()

	corner := screen.TransformPoint3(gfx.Point3F{X: 0, Y: 0})
	assert.InDelta(t, 30, corner.X, 1e-9)
	assert.InDelta(t, 30, corner.Y, 1e-9)

	center := screen.TransformPoint3(gfx.Point3F{X: 5, Y: 5})
	assert.InDelta(t, 25, center.X, 1e-9)
	assert.InDelta(t, 35, center.Y, 1e-9)
}

func TestLayer_Visible(t *testing.T) {
	viewport := gfx.RectF{Width: 50, Height: 50}

	tests := []struct {
		name     string
		layer    func() *Layer
		expected bool
	}{
		{
			name:     "inside",
			layer:    func() *Layer { return createCardLayer("a", mgl64.Vec3{10, 10, 0}) },
			expected: true,
		},
		{
			name:     "outside",
			layer:    func() *Layer { return createCardLayer("a", mgl64.Vec3{100, 100, 0}) },
			expected: false,
		},
		{
			name:     "right of the viewport",
			layer:    func() *Layer { return createCardLayer("a", mgl64.Vec3{52, 0, 0}) },
			expected: false,
		},
		{
			name: "rotated corner reaches in",
			layer: func() *Layer {
				layer := createCardLayer("a", mgl64.Vec3{52, 0, 0})
				layer.Transform.Rotate(45)
				return layer
			},
			expected: true,
		},
		{
			name: "empty content",
			layer: func() *Layer {
				layer := createCardLayer("a", mgl64.Vec3{10, 10, 0})
				layer.Content.Width = 0
				return layer
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.layer().Visible(viewport))
		})
	}
}

func TestLayer_HitTest(t *testing.T) {
	layer := createCardLayer("a", mgl64.Vec3{})
	assert.True(t, layer.HitTest(9.5, 9.5))
	assert.False(t, layer.HitTest(10.5, 5))

	layer.Transform.Rotate(45)
	assert.False(t, layer.HitTest(9.5, 9.5), "corner turned away")
	assert.True(t, layer.HitTest(5, 11.5), "corner turned in")
}

func TestLayer_HitTestTilted(t *testing.T) {
	layer := createCardLayer("a", mgl64.Vec3{})
	layer.Transform.RotateAboutYAxis(60)

	// Seen edge on, the content spans x in [2.5, 7.5].
	assert.True(t, layer.HitTest(7, 5))
	assert.False(t, layer.HitTest(8, 5))
}

func TestTimeline_VisibleAndHitTest(t *testing.T) {
	tl := NewTimeline(1)
	a := createCardLayer("a", mgl64.Vec3{0, 0, 0})
	b := createCardLayer("b", mgl64.Vec3{5, 5, 0})
	c := createCardLayer("c", mgl64.Vec3{200, 200, 0})
	tl.AddLayer(a)
	tl.AddLayer(b)
	tl.AddLayer(c)

	assert.Equal(t, []*Layer{a, b}, tl.Visible(gfx.RectF{Width: 20, Height: 20}))

	assert.Same(t, b, tl.HitTest(7, 7), "b is drawn above a")
	assert.Same(t, a, tl.HitTest(2, 2))
	assert.Same(t, c, tl.HitTest(205, 205))
	assert.Nil(t, tl.HitTest(100, 100))
}
