// Package xform animates layers between CSS style transforms.
//
// A Timeline owns a set of Layers. Each call to Step advances every running
// layer, blends its animation with gfx.Transform.Blend semantics, and then
// dispatches the buffered events to subscribers on the calling goroutine.
package xform

import "github.com/akmonengine/xform/gfx"

const DEFAULT_WORKERS = 1

type Timeline struct {
	// Layers in insertion order
	Layers []*Layer
	// Number of goroutines sampling layers during Step
	Workers int

	Events Events
}

func NewTimeline(workers int) *Timeline {
	return &Timeline{
		Workers: workers,
		Events:  NewEvents(),
	}
}

// AddLayer adds a layer to the timeline
func (tl *Timeline) AddLayer(layer *Layer) {
	tl.Layers = append(tl.Layers, layer)
	Logger().Debug("layer added", "layer", layer.Name, "state", layer.State)
}

// RemoveLayer removes a layer from the timeline
func (tl *Timeline) RemoveLayer(layer *Layer) {
	k := -1
	for i, l := range tl.Layers {
		if l == layer {
			k = i
			break
		}
	}

	if k != -1 {
		tl.Layers = append(tl.Layers[:k], tl.Layers[k+1:]...)
	}

	tl.Events.forget(layer)
}

// Layer returns the first layer with the given name, or nil.
func (tl *Timeline) Layer(name string) *Layer {
	for _, l := range tl.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Visible returns the layers whose content overlaps viewport, in insertion
// order.
func (tl *Timeline) Visible(viewport gfx.RectF) []*Layer {
	var visible []*Layer
	for _, l := range tl.Layers {
		if l.Visible(viewport) {
			visible = append(visible, l)
		}
	}
	return visible
}

// HitTest returns the topmost layer under the viewport point (x, y), or nil.
// Later layers are drawn above earlier ones.
func (tl *Timeline) HitTest(x, y float64) *Layer {
	for i := len(tl.Layers) - 1; i >= 0; i-- {
		if tl.Layers[i].HitTest(x, y) {
			return tl.Layers[i]
		}
	}
	return nil
}

// Running reports whether any layer is still running.
func (tl *Timeline) Running() bool {
	for _, l := range tl.Layers {
		if l.State == LayerRunning {
			return true
		}
	}
	return false
}

// Step advances every running layer by dt seconds, then flushes events.
func (tl *Timeline) Step(dt float64) {
	tl.Workers = max(DEFAULT_WORKERS, tl.Workers)

	running := make([]*Layer, 0, len(tl.Layers))
	for _, l := range tl.Layers {
		if l.State == LayerRunning {
			running = append(running, l)
		}
	}

	task(tl.Workers, running, func(layer *Layer) {
		layer.advance(dt)
	})

	tl.Events.processLayerEvents(tl.Layers)
	tl.Events.flush()
}
