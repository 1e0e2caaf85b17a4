// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"slices"

	"cogentcore.org/core/math32"
)

// Renderable is anything drawn during a frame.
type Renderable interface {

	// Render draws the renderable using the current state of the
	// given draw context.
	Render(dc *DrawContext)
}

// OrderedRenderable is a [Renderable] drawn in back to front depth
// order during the ordered rendering phase of a frame, such as a
// translucent shape.
type OrderedRenderable interface {
	Renderable

	// EyeDistance returns the distance from the eye point to the
	// renderable's reference point, in meters. It is captured when the
	// renderable is added to the draw context.
	EyeDistance() float32
}

// orderedEntry captures an ordered renderable with its eye distance
// and insertion order at the time it was added.
type orderedEntry struct {
	renderable  OrderedRenderable
	eyeDistance float32
	order       int
}

// AddOrderedRenderable adds the given renderable to the frame's
// ordered renderable queue, capturing its current eye distance.
// Adding nil does nothing.
func (dc *DrawContext) AddOrderedRenderable(or OrderedRenderable) {
	if or == nil {
		return
	}
	dc.ordered = append(dc.ordered, orderedEntry{or, or.EyeDistance(), dc.orderedCounter})
	dc.orderedCounter++
}

// AddOrderedRenderableToBack adds the given renderable with an
// infinite eye distance, so that after sorting it is drawn behind
// everything added normally.
func (dc *DrawContext) AddOrderedRenderableToBack(or OrderedRenderable) {
	if or == nil {
		return
	}
	dc.ordered = append(dc.ordered, orderedEntry{or, math32.Infinity, dc.orderedCounter})
	dc.orderedCounter++
}

// SortOrderedRenderables sorts the ordered renderable queue from
// farthest to nearest eye distance. Renderables at the same distance
// keep their insertion order.
func (dc *DrawContext) SortOrderedRenderables() {
	slices.SortStableFunc(dc.ordered[dc.orderedNext:], func(a, b orderedEntry) int {
		return cmp.Compare(b.eyeDistance, a.eyeDistance)
	})
}

// PeekOrderedRenderable returns the next renderable in the queue
// without removing it, or nil if the queue is empty.
func (dc *DrawContext) PeekOrderedRenderable() OrderedRenderable {
	if dc.orderedNext >= len(dc.ordered) {
		return nil
	}
	return dc.ordered[dc.orderedNext].renderable
}

// PopOrderedRenderable removes and returns the next renderable in the
// queue, or nil if the queue is empty. Called repeatedly after
// [DrawContext.SortOrderedRenderables] to draw back to front.
func (dc *DrawContext) PopOrderedRenderable() OrderedRenderable {
	if dc.orderedNext >= len(dc.ordered) {
		return nil
	}
	or := dc.ordered[dc.orderedNext].renderable
	dc.orderedNext++
	return or
}

// OrderedRenderableCount returns the number of renderables remaining
// in the ordered queue.
func (dc *DrawContext) OrderedRenderableCount() int {
	return len(dc.ordered) - dc.orderedNext
}

// AddSurfaceRenderable adds the given renderable to the frame's
// surface renderable list, drawn onto the terrain in insertion order.
// Adding nil does nothing.
func (dc *DrawContext) AddSurfaceRenderable(r Renderable) {
	if r == nil {
		return
	}
	dc.surface = append(dc.surface, r)
}

// SurfaceRenderables returns the frame's surface renderables in
// insertion order. The slice is valid until the next
// [DrawContext.Reset].
func (dc *DrawContext) SurfaceRenderables() []Renderable {
	return dc.surface
}
