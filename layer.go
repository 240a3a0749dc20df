package xform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/xform/gfx"
)

type LayerState uint8

const (
	LayerIdle LayerState = iota
	LayerRunning
	LayerFinished
	// LayerFailed layers hold their animation's To transform.
	LayerFailed
)

func (s LayerState) String() string {
	switch s {
	case LayerIdle:
		return "idle"
	case LayerRunning:
		return "running"
	case LayerFinished:
		return "finished"
	case LayerFailed:
		return "failed"
	}
	return "unknown"
}

// Layer is a drawable surface whose Transform is driven by an Animation.
type Layer struct {
	Name      string
	Animation *Animation
	// Transform is the value for the current frame
	Transform gfx.Transform
	// Elapsed time since Start, in seconds
	Elapsed float64
	State   LayerState

	// Content is the layer rectangle in its own space
	Content gfx.RectF
	// Position of the content origin in the viewport
	Position mgl64.Vec3
	// Origin is the point of the content that Transform pivots around
	Origin mgl64.Vec3
}

func NewLayer(name string, animation *Animation) *Layer {
	return &Layer{
		Name:      name,
		Animation: animation,
		Transform: animation.From.Clone(),
		State:     LayerIdle,
	}
}

// Start rewinds the layer and marks it running.
func (l *Layer) Start() {
	l.Elapsed = 0
	l.Transform = l.Animation.From.Clone()
	l.State = LayerRunning
}

// Progress returns the linear progress in [0, 1]. A non positive duration is
// always complete.
func (l *Layer) Progress() float64 {
	if l.Animation.Duration <= 0 {
		return 1
	}
	return min(l.Elapsed/l.Animation.Duration, 1)
}

// ScreenTransform maps content space to the viewport: Transform applied
// around Origin, then moved to Position.
func (l *Layer) ScreenTransform() gfx.Transform {
	anchor := l.Position.Add(l.Origin)

	screen := gfx.Identity()
	screen.Translate3d(anchor.X(), anchor.Y(), anchor.Z())
	screen.PreconcatTransform(l.Transform)
	screen.Translate3d(-l.Origin.X(), -l.Origin.Y(), -l.Origin.Z())
	return screen
}

// Visible reports whether the bounding box of the transformed content
// overlaps viewport. Empty content is never visible.
func (l *Layer) Visible(viewport gfx.RectF) bool {
	if l.Content.IsEmpty() || viewport.IsEmpty() {
		return false
	}
	mapped, _ := l.ScreenTransform().TransformRect(l.Content)
	return mapped.Bounds().Overlaps(viewport.Bounds())
}

// HitTest reports whether the viewport point (x, y) falls on the content.
func (l *Layer) HitTest(x, y float64) bool {
	if l.Content.IsEmpty() {
		return false
	}
	local, ok := l.ScreenTransform().ProjectPoint(x, y)
	return ok && l.Content.Bounds().ContainsPoint(local)
}

func (l *Layer) advance(dt float64) {
	if l.State != LayerRunning {
		return
	}

	l.Elapsed += dt
	progress := l.Progress()
	if progress >= 1 {
		l.Transform = l.Animation.To.Clone()
		l.State = LayerFinished
		return
	}

	sample, ok := l.Animation.Sample(progress)
	l.Transform = sample
	if !ok {
		l.State = LayerFailed
	}
}
