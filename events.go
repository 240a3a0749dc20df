package xform

import "github.com/akmonengine/xform/gfx"

const (
	ANIMATION_START EventType = iota
	ANIMATION_FRAME
	ANIMATION_END
	BLEND_FAILED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type AnimationStartEvent struct {
	Layer *Layer
}

func (e AnimationStartEvent) Type() EventType { return ANIMATION_START }

// AnimationFrameEvent carries the transform computed for the frame.
type AnimationFrameEvent struct {
	Layer     *Layer
	Progress  float64
	Transform gfx.Transform
}

func (e AnimationFrameEvent) Type() EventType { return ANIMATION_FRAME }

type AnimationEndEvent struct {
	Layer *Layer
}

func (e AnimationEndEvent) Type() EventType { return ANIMATION_END }

// BlendFailedEvent is sent once when a layer's animation cannot be
// interpolated. The layer has already been snapped to its To transform.
type BlendFailedEvent struct {
	Layer    *Layer
	Progress float64
}

func (e BlendFailedEvent) Type() EventType { return BLEND_FAILED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Layer state seen at the end of the previous step
	layerStates map[*Layer]LayerState
}

func NewEvents() Events {
	return Events{
		listeners:   make(map[EventType][]EventListener),
		buffer:      make([]Event, 0, 64),
		layerStates: make(map[*Layer]LayerState),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// processLayerEvents compares every layer with its tracked state and buffers
// the matching Start/Frame/End/BlendFailed events. Finished and failed layers
// are reported once.
func (e *Events) processLayerEvents(layers []*Layer) {
	if e.layerStates == nil {
		e.layerStates = make(map[*Layer]LayerState)
	}

	for _, layer := range layers {
		previous, tracked := e.layerStates[layer]
		current := layer.State
		e.layerStates[layer] = current

		if current == LayerIdle {
			continue
		}
		if tracked && previous == current && current != LayerRunning {
			continue
		}

		if !tracked || previous != LayerRunning {
			e.buffer = append(e.buffer, AnimationStartEvent{Layer: layer})
			Logger().Debug("animation started", "layer", layer.Name)
		}

		switch current {
		case LayerRunning:
			e.buffer = append(e.buffer, e.frame(layer))
		case LayerFinished:
			e.buffer = append(e.buffer, e.frame(layer), AnimationEndEvent{Layer: layer})
			Logger().Debug("animation finished", "layer", layer.Name, "elapsed", layer.Elapsed)
		case LayerFailed:
			e.buffer = append(e.buffer, BlendFailedEvent{Layer: layer, Progress: layer.Progress()})
			Logger().Warn("blend failed, layer snapped to end state",
				"layer", layer.Name, "progress", layer.Progress())
		}
	}
}

func (e *Events) frame(layer *Layer) AnimationFrameEvent {
	return AnimationFrameEvent{
		Layer:     layer,
		Progress:  layer.Progress(),
		Transform: layer.Transform,
	}
}

// forget drops the tracked state of a removed layer
func (e *Events) forget(layer *Layer) {
	delete(e.layerStates, layer)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
