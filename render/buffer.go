// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is a geometry buffer: CPU-side data together with the GPU
// buffer it is uploaded to. The GPU buffer is created lazily by
// [Buffer.Upload] and dropped by [Buffer.Release], so a Buffer can
// outlive a GPU context and be re-uploaded to a new one. It implements
// [Releaser] so that cache eviction frees the GPU buffer.
type Buffer struct {

	// Label identifies the buffer in GPU debugging tools.
	Label string

	// Usage are the WebGPU usage flags the GPU buffer is created with.
	Usage wgpu.BufferUsage

	// Format is the index element format, for index buffers.
	Format wgpu.IndexFormat

	// Data is the CPU-side buffer contents.
	Data []byte

	buffer    *wgpu.Buffer
	allocSize int
	dirty     bool
}

// NewVertexBuffer returns a vertex buffer holding the given values,
// typically flat (x, y, z) or (x, y) float32 coordinates.
func NewVertexBuffer(label string, values []float32) *Buffer {
	return &Buffer{
		Label: label,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Data:  wgpu.ToBytes(values),
	}
}

// NewIndexBuffer returns an index buffer holding the given elements.
func NewIndexBuffer(label string, elements []uint16) *Buffer {
	return &Buffer{
		Label:  label,
		Usage:  wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		Format: wgpu.IndexFormatUint16,
		Data:   wgpu.ToBytes(elements),
	}
}

// Size returns the size of the buffer data in bytes.
func (b *Buffer) Size() int64 {
	return int64(len(b.Data))
}

// Valid reports whether the buffer currently has a GPU buffer.
func (b *Buffer) Valid() bool {
	return b.buffer != nil
}

// Handle returns the GPU buffer, or nil if it has not been uploaded.
func (b *Buffer) Handle() *wgpu.Buffer {
	return b.buffer
}

// SetData replaces the CPU-side contents. The change reaches the GPU
// on the next [Buffer.Upload].
func (b *Buffer) SetData(data []byte) {
	b.Data = data
	b.dirty = true
}

// Upload ensures the GPU buffer exists and holds the current data,
// creating it or writing to it only when needed. It is a no-op with a
// nil device, so callers can run without a GPU.
func (b *Buffer) Upload(dv *gpu.Device) error {
	if dv == nil {
		return nil
	}
	if b.buffer != nil && b.allocSize == len(b.Data) {
		if !b.dirty {
			return nil
		}
		err := dv.Queue.WriteBuffer(b.buffer, 0, b.Data)
		if errors.Log(err) != nil {
			return err
		}
		b.dirty = false
		return nil
	}
	b.Release()
	buf, err := dv.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    b.Label,
		Contents: b.Data,
		Usage:    b.Usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	b.buffer = buf
	b.allocSize = len(b.Data)
	b.dirty = false
	return nil
}

// Release frees the GPU buffer, if any. The CPU-side data is kept, so
// a later [Buffer.Upload] restores the buffer.
func (b *Buffer) Release() {
	if b.buffer == nil {
		return
	}
	b.buffer.Release()
	b.buffer = nil
	b.allocSize = 0
}

// BindVertex sets the buffer as the vertex buffer for the given slot
// on the given render pass. It does nothing if the buffer has not been
// uploaded.
func (b *Buffer) BindVertex(rp *wgpu.RenderPassEncoder, slot uint32) {
	if b.buffer == nil {
		return
	}
	rp.SetVertexBuffer(slot, b.buffer, 0, wgpu.WholeSize)
}

// BindIndex sets the buffer as the index buffer on the given render
// pass. It does nothing if the buffer has not been uploaded.
func (b *Buffer) BindIndex(rp *wgpu.RenderPassEncoder) {
	if b.buffer == nil {
		return
	}
	rp.SetIndexBuffer(b.buffer, b.Format, 0, wgpu.WholeSize)
}
