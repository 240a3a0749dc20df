package xform

import (
	"sync"

	"github.com/akmonengine/xform/decomp"
	"github.com/akmonengine/xform/gfx"
)

// Easing maps linear progress in [0, 1] to eased progress. Easings must map
// 0 to 0 and 1 to 1.
type Easing func(progress float64) float64

func Linear(progress float64) float64 { return progress }

func EaseIn(progress float64) float64 { return progress * progress }

func EaseOut(progress float64) float64 { return progress * (2 - progress) }

func EaseInOut(progress float64) float64 {
	if progress < 0.5 {
		return 2 * progress * progress
	}
	return -1 + (4-2*progress)*progress
}

// Animation blends From into To over Duration seconds.
//
// Both ends are decomposed once, on the first Sample, and reused for every
// frame. An Animation must not be copied after its first Sample.
type Animation struct {
	From     gfx.Transform
	To       gfx.Transform
	Duration float64
	// Easing defaults to Linear
	Easing Easing

	once         sync.Once
	from, to     decomp.DecomposedTransform
	decomposable bool
}

func NewAnimation(from, to gfx.Transform, duration float64) *Animation {
	return &Animation{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   Linear,
	}
}

func (a *Animation) prepare() {
	var okFrom, okTo bool
	a.from, okFrom = a.From.Decompose()
	a.to, okTo = a.To.Decompose()
	a.decomposable = okFrom && okTo
}

// Sample returns the transform at the given linear progress, the same value
// as To.Blend(From, eased progress). On failure it returns To and false.
// Sample is safe for concurrent use.
func (a *Animation) Sample(progress float64) (gfx.Transform, bool) {
	if a.Easing != nil {
		progress = a.Easing(progress)
	}
	if progress == 0 {
		return a.From.Clone(), true
	}

	a.once.Do(a.prepare)
	if !a.decomposable {
		return a.To.Clone(), false
	}

	blended, ok := decomp.Interpolate(a.from, a.to, progress)
	if !ok {
		return a.To.Clone(), false
	}
	return gfx.Compose(blended), true
}
