// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Program is a shader program cached in a [ResourceCache] and bound
// through [DrawContext.BindProgram]. It wraps a [gpu.GraphicsPipeline]
// with the cache key it lives under and the footprint it is cached
// with. It implements [Releaser] so that cache eviction frees the
// pipeline.
type Program struct {

	// Key is the well-known cache key identifying this program.
	Key string

	// Pipeline is the graphics pipeline the program runs.
	Pipeline *gpu.GraphicsPipeline

	// Size is the cache footprint in bytes, typically the total
	// length of the program's shader sources.
	Size int64
}

// Bind binds the program's pipeline on the given render pass.
// It does nothing with a nil pipeline or render pass, so program
// bookkeeping works without a GPU.
func (p *Program) Bind(rp *wgpu.RenderPassEncoder) error {
	if p.Pipeline == nil || rp == nil {
		return nil
	}
	return p.Pipeline.BindPipeline(rp)
}

// Release frees the program's pipeline, if any.
func (p *Program) Release() {
	if p.Pipeline == nil {
		return
	}
	p.Pipeline.Release()
	p.Pipeline = nil
}
