// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestVertexBuffer(t *testing.T) {
	b := NewVertexBuffer("verts", []float32{0, 1, 2, 3, 4, 5})
	assert.Equal(t, int64(24), b.Size())
	assert.Equal(t, wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, b.Usage)
	assert.False(t, b.Valid())
	assert.Nil(t, b.Handle())

	// uploads and binds are no-ops without a device or GPU buffer
	assert.NoError(t, b.Upload(nil))
	assert.False(t, b.Valid())
	b.BindVertex(nil, 0)
	b.Release()
	b.Release()

	b.SetData(make([]byte, 12))
	assert.Equal(t, int64(12), b.Size())
}

func TestIndexBuffer(t *testing.T) {
	b := NewIndexBuffer("elems", []uint16{0, 1, 2, 2, 1, 3})
	assert.Equal(t, int64(12), b.Size())
	assert.Equal(t, wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst, b.Usage)
	assert.Equal(t, wgpu.IndexFormatUint16, b.Format)
	b.BindIndex(nil)
}
