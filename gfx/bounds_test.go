package gfx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Bounds Utility Function Tests
// =============================================================================

func TestBoundsOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Bounds
		b        Bounds
		expected bool
	}{
		{
			name:     "Separated on X axis",
			a:        Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        Bounds{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
			expected: false,
		},
		{
			name:     "Separated on Y axis",
			a:        Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        Bounds{Min: mgl64.Vec3{0, -2, 0}, Max: mgl64.Vec3{1, -1, 1}},
			expected: false,
		},
		{
			name:     "Separated on Z axis",
			a:        Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        Bounds{Min: mgl64.Vec3{0, 0, 2}, Max: mgl64.Vec3{1, 1, 3}},
			expected: false,
		},
		{
			name:     "Touching faces",
			a:        Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        Bounds{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
			expected: true,
		},
		{
			name:     "Contained",
			a:        Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 4}},
			b:        Bounds{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("Overlaps() symmetry = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(
		Point3F{X: 1, Y: -2, Z: 0},
		Point3F{X: -3, Y: 4, Z: 5},
		Point3F{X: 2, Y: 0, Z: -1},
	)

	if b.Min != (mgl64.Vec3{-3, -2, -1}) {
		t.Errorf("Min = %v, want [-3 -2 -1]", b.Min)
	}
	if b.Max != (mgl64.Vec3{2, 4, 5}) {
		t.Errorf("Max = %v, want [2 4 5]", b.Max)
	}
	if !b.ContainsPoint(Point3F{X: 0, Y: 0, Z: 0}) {
		t.Errorf("origin should be inside %v", b)
	}
	if b.ContainsPoint(Point3F{X: 0, Y: 5, Z: 0}) {
		t.Errorf("point above the box should be outside %v", b)
	}

	rect := b.RectF()
	if rect != (RectF{X: -3, Y: -2, Width: 5, Height: 6}) {
		t.Errorf("RectF() = %v", rect)
	}
}

func TestEmptyBounds(t *testing.T) {
	b := EmptyBounds()
	if b.ContainsPoint(Point3F{}) {
		t.Errorf("empty bounds should contain nothing")
	}

	b = b.Extend(Point3F{X: 1, Y: 2, Z: 3})
	if b.Min != b.Max || b.Min != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("single point bounds = %v", b)
	}
}

func TestBoundsContainsPoint_NaN(t *testing.T) {
	b := Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	if b.ContainsPoint(Point3F{X: math.NaN(), Y: 0.5, Z: 0.5}) {
		t.Errorf("NaN point should be outside %v", b)
	}
	if b.Overlaps(Bounds{Min: mgl64.Vec3{math.NaN(), 0, 0}, Max: mgl64.Vec3{math.NaN(), 1, 1}}) {
		t.Errorf("NaN box should not overlap %v", b)
	}
}

func TestRectFBounds(t *testing.T) {
	b := RectF{X: 1, Y: 2, Width: 3, Height: 4}.Bounds()
	if b.Min != (mgl64.Vec3{1, 2, 0}) || b.Max != (mgl64.Vec3{4, 6, 0}) {
		t.Errorf("Bounds() = %v", b)
	}
	if !b.ContainsPoint(Point3F{X: 4, Y: 6}) {
		t.Errorf("corner should be inside %v", b)
	}
	if !(RectF{Width: 0, Height: 4}).IsEmpty() {
		t.Errorf("zero width rect should be empty")
	}
}
