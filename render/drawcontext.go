// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the per-frame state for rendering a virtual
// globe scene: a draw context carrying the matrices, frustum, and eye
// geometry derived once per frame, a GPU resource cache with a context
// loss contract, and shared unit geometry buffers.
package render

import (
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"cogentcore.org/terra/geo"
	"cogentcore.org/terra/globe"
	"cogentcore.org/terra/view"
	"github.com/cogentcore/webgpu/wgpu"
)

// DrawContext is the per-frame state shared by everything that renders
// a scene. The renderer owns one per rendering surface and passes it
// to every rendering operation. Each frame, [DrawContext.Reset] clears
// the previous frame's accumulation, the renderer sets the globe,
// terrain, viewport, and the modelview and projection matrices, and
// [DrawContext.Update] derives the rest. Fields not touched by Reset
// persist across frames.
//
// A DrawContext is mutated only by the frame loop that owns it, never
// concurrently, so none of its state is locked.
type DrawContext struct {

	// Device is the GPU device resources are created on. It is nil
	// after a context loss, and may be nil throughout for headless
	// use, in which case buffers keep their CPU data but nothing is
	// uploaded.
	Device *gpu.Device

	// RenderPass is the render pass encoder for the frame currently
	// being drawn, or nil outside of a pass. Program binding applies
	// to this pass.
	RenderPass *wgpu.RenderPassEncoder

	// Cache holds this context's GPU resources. It is owned by the
	// context and cleared wholesale on context loss.
	Cache *ResourceCache

	// CurrentProgram is the currently bound program, or nil.
	CurrentProgram *Program

	// CurrentLayer is the layer currently rendering, or nil.
	CurrentLayer Renderable

	// Globe is the globe being rendered this frame.
	Globe globe.Globe

	// GlobeStateKey caches Globe.StateKey for the frame, so that
	// cached shapes can cheaply detect globe changes.
	GlobeStateKey string

	// Terrain is the terrain shapes place themselves against this
	// frame.
	Terrain Terrain

	// FrameTimestamp identifies the frame. It increases strictly from
	// frame to frame, even when the clock does not advance between
	// them.
	FrameTimestamp time.Time

	// EyePosition is the geographic position of the eye, derived by
	// Update from EyePoint.
	EyePosition geo.Position

	// EyePoint is the eye's model coordinates, derived by Update from
	// the modelview matrix.
	EyePoint math32.Vector3

	// Modelview is the current modelview matrix, set by the renderer
	// before Update.
	Modelview math32.Matrix4

	// Projection is the current projection matrix, set by the renderer
	// before Update.
	Projection math32.Matrix4

	// ModelviewProjection is Projection times Modelview, derived by
	// Update.
	ModelviewProjection math32.Matrix4

	// NormalTransform carries model normal vectors to eye coordinates,
	// derived by Update.
	NormalTransform math32.Matrix3

	// Frustum is the viewing frustum in model coordinates, derived by
	// Update. Renderables cull themselves against it.
	Frustum view.Frustum

	// Viewport is the current viewport rectangle in screen
	// coordinates, with the minimum corner at the lower left.
	Viewport image.Rectangle

	// PixelSizeFactor and PixelSizeOffset are the linear coefficients
	// giving the model size of a pixel at a distance from the eye,
	// derived by Update from the projection and viewport.
	PixelSizeFactor, PixelSizeOffset float32

	// Opacity is the opacity renderables draw with, for layer fading.
	Opacity float32

	ordered        []orderedEntry
	orderedCounter int
	orderedNext    int
	surface        []Renderable
}

// NewDrawContext returns a new draw context on the given device, which
// may be nil for headless use, with the given resource cache capacity
// in bytes, or [DefaultCacheSize] if it is not positive.
func NewDrawContext(dv *gpu.Device, cacheSize int64) *DrawContext {
	dc := &DrawContext{
		Device:  dv,
		Cache:   NewResourceCache(cacheSize),
		Opacity: 1,
	}
	dc.Modelview = *math32.Identity4()
	dc.Projection = *math32.Identity4()
	dc.ModelviewProjection = *math32.Identity4()
	dc.NormalTransform = math32.Identity3()
	return dc
}

// Reset clears the previous frame's accumulation state and advances
// the frame timestamp. It must be called exactly once at the start of
// every frame, before any other mutation of the context. The scene
// references and matrices are cleared and the opacity returns to 1;
// the viewport, pixel size coefficients, device, and cache persist.
func (dc *DrawContext) Reset() {
	now := time.Now()
	if !now.After(dc.FrameTimestamp) {
		now = dc.FrameTimestamp.Add(1)
	}
	dc.FrameTimestamp = now

	dc.ordered = dc.ordered[:0]
	dc.orderedCounter = 0
	dc.orderedNext = 0
	dc.surface = dc.surface[:0]

	dc.Globe = nil
	dc.GlobeStateKey = ""
	dc.Terrain = nil
	dc.CurrentLayer = nil
	dc.RenderPass = nil

	dc.EyePosition = geo.Position{}
	dc.EyePoint = math32.Vector3{}
	dc.Modelview = *math32.Identity4()
	dc.Projection = *math32.Identity4()
	dc.ModelviewProjection = *math32.Identity4()
	dc.NormalTransform = math32.Identity3()
	dc.Frustum = view.Frustum{}
	dc.Opacity = 1
}

// Update derives the frame's view dependent state after the renderer
// has set the globe, viewport, and the modelview and projection
// matrices: the eye point and its geographic position, the combined
// modelview projection matrix, the normal transform, the frustum in
// model coordinates, and the pixel size coefficients. It must be
// called before any operation that depends on them, and again if the
// matrices change within the frame.
func (dc *DrawContext) Update() {
	if dc.Globe == nil {
		errors.Log(errors.New("render.DrawContext.Update: globe is not set"))
		return
	}
	dc.GlobeStateKey = dc.Globe.StateKey()
	dc.EyePoint = view.ModelviewEyePoint(&dc.Modelview)
	dc.EyePosition = dc.Globe.PositionFromPoint(dc.EyePoint)
	dc.ModelviewProjection.MulMatrices(&dc.Projection, &dc.Modelview)
	dc.NormalTransform = view.ModelviewNormalTransform(&dc.Modelview)
	dc.Frustum = view.FrustumInModelCoordinates(&dc.Projection, &dc.Modelview)
	dc.PixelSizeFactor, dc.PixelSizeOffset = view.PixelSizeCoefficients(&dc.Projection, dc.Viewport)
}

// ContextLost tells the context its GPU device is gone: every cached
// resource is dropped and every GPU handle is invalid. The context
// keeps rendering nothing until [DrawContext.ContextRestored] supplies
// a new device.
func (dc *DrawContext) ContextLost() {
	dc.Cache.Clear()
	dc.CurrentProgram = nil
	dc.RenderPass = nil
	dc.Device = nil
}

// ContextRestored gives the context a new GPU device after a context
// loss. The cache is cleared again to drop resources cached between
// loss and restore by asynchronous completions; resources are then
// re-created on demand.
func (dc *DrawContext) ContextRestored(dv *gpu.Device) {
	dc.Cache.Clear()
	dc.Device = dv
}

// BindProgram makes the given program current, binding it on the
// current render pass. Binding the program that is already current is
// a no-op; binding nil leaves no program current.
func (dc *DrawContext) BindProgram(p *Program) {
	if p == dc.CurrentProgram {
		return
	}
	dc.CurrentProgram = p
	if p != nil {
		p.Bind(dc.RenderPass)
	}
}

// FindAndBindProgram returns the program cached under the given key,
// binding it. On a cache miss it calls create, binds the new program,
// and caches it under the key with its reported size. A create failure
// is logged, not propagated: the result is nil and the current program
// is unchanged, and rendering continues without the program.
func (dc *DrawContext) FindAndBindProgram(key string, create func(dc *DrawContext) (*Program, error)) *Program {
	if r := dc.Cache.Resource(key); r != nil {
		p, ok := r.(*Program)
		if !ok {
			errors.Log(errors.New("render.DrawContext.FindAndBindProgram: resource under key is not a program: " + key))
			return nil
		}
		dc.BindProgram(p)
		return p
	}
	p, err := create(dc)
	if errors.Log(err) != nil {
		return nil
	}
	if p == nil {
		return nil
	}
	p.Key = key
	dc.BindProgram(p)
	dc.Cache.Put(key, p, p.Size)
	return p
}

// Well-known resource cache keys for the shared unit geometry buffers.
const (
	unitCubeKey         = "render.UnitCube"
	unitCubeElementsKey = "render.UnitCubeElements"
	unitQuadKey         = "render.UnitQuad"
	unitQuad3Key        = "render.UnitQuad3"
)

// UnitCubeBuffer returns the shared vertex buffer holding the eight
// corners of the unit cube spanning (0, 0, 0) to (1, 1, 1), as x, y, z
// triples in the order: upper left, lower left, upper right, lower
// right, first at z = 0 and then at z = 1. The buffer is created and
// cached on first use; repeated calls return the same buffer without
// re-uploading.
func (dc *DrawContext) UnitCubeBuffer() *Buffer {
	b, _ := dc.Cache.Resource(unitCubeKey).(*Buffer)
	if b == nil {
		b = NewVertexBuffer("unit cube", []float32{
			0, 1, 0,
			0, 0, 0,
			1, 1, 0,
			1, 0, 0,
			0, 1, 1,
			0, 0, 1,
			1, 1, 1,
			1, 0, 1,
		})
		dc.Cache.Put(unitCubeKey, b, b.Size())
	}
	b.Upload(dc.Device)
	return b
}

// UnitCubeElements returns the shared index buffer triangulating the
// unit cube of [DrawContext.UnitCubeBuffer]: 36 indices forming two
// triangles per face, wound counter-clockwise seen from outside.
func (dc *DrawContext) UnitCubeElements() *Buffer {
	b, _ := dc.Cache.Resource(unitCubeElementsKey).(*Buffer)
	if b == nil {
		b = NewIndexBuffer("unit cube elements", []uint16{
			0, 2, 1, 2, 3, 1, // z = 0
			4, 5, 6, 6, 5, 7, // z = 1
			0, 1, 5, 0, 5, 4, // x = 0
			2, 6, 7, 2, 7, 3, // x = 1
			1, 3, 7, 1, 7, 5, // y = 0
			0, 4, 6, 0, 6, 2, // y = 1
		})
		dc.Cache.Put(unitCubeElementsKey, b, b.Size())
	}
	b.Upload(dc.Device)
	return b
}

// UnitQuadBuffer returns the shared vertex buffer holding the four
// corners of the unit quad spanning (0, 0) to (1, 1), as x, y pairs in
// triangle strip order: upper left, lower left, upper right, lower
// right.
func (dc *DrawContext) UnitQuadBuffer() *Buffer {
	b, _ := dc.Cache.Resource(unitQuadKey).(*Buffer)
	if b == nil {
		b = NewVertexBuffer("unit quad", []float32{
			0, 1,
			0, 0,
			1, 1,
			1, 0,
		})
		dc.Cache.Put(unitQuadKey, b, b.Size())
	}
	b.Upload(dc.Device)
	return b
}

// UnitQuadBuffer3 is [DrawContext.UnitQuadBuffer] with x, y, z triples
// at z = 0, for pipelines taking three component positions.
func (dc *DrawContext) UnitQuadBuffer3() *Buffer {
	b, _ := dc.Cache.Resource(unitQuad3Key).(*Buffer)
	if b == nil {
		b = NewVertexBuffer("unit quad 3d", []float32{
			0, 1, 0,
			0, 0, 0,
			1, 1, 0,
			1, 0, 0,
		})
		dc.Cache.Put(unitQuad3Key, b, b.Size())
	}
	b.Upload(dc.Device)
	return b
}

// PixelSizeAtDistance returns the approximate model size of a pixel at
// the given distance from the eye in meters, using the linear
// coefficients derived by Update. The result at distance 0 is the
// offset, and it grows linearly for a perspective projection.
func (dc *DrawContext) PixelSizeAtDistance(distance float32) float32 {
	return dc.PixelSizeFactor*distance + dc.PixelSizeOffset
}

// IsSmall reports whether the given bounding sphere occupies fewer
// than numPixels pixels on screen, measuring its diameter against the
// pixel size at its center's distance from the eye. A nil extent is
// not small.
func (dc *DrawContext) IsSmall(extent *math32.Sphere, numPixels int) bool {
	if extent == nil {
		return false
	}
	distance := extent.Center.Sub(dc.EyePoint).Length()
	return 2*extent.Radius < float32(numPixels)*dc.PixelSizeAtDistance(distance)
}
