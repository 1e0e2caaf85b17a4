// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	vp := image.Rect(0, 0, 800, 600)
	proj := PerspectiveProjection(vp, 1, 1000)

	// a point centered in the frustum lands in the viewport center with
	// depth inside (0, 1)
	sp, ok := Project(math32.Vec3(0, 0, -10), &proj, vp)
	assert.True(t, ok)
	tolassert.EqualTol(t, 400, sp.X, 1.0e-3)
	tolassert.EqualTol(t, 300, sp.Y, 1.0e-3)
	assert.Greater(t, sp.Z, float32(0))
	assert.Less(t, sp.Z, float32(1))

	// x right of center, y above center
	sp, ok = Project(math32.Vec3(1, 0.5, -10), &proj, vp)
	assert.True(t, ok)
	assert.Greater(t, sp.X, float32(400))
	assert.Greater(t, sp.Y, float32(300))

	// nearer than the near plane, beyond the far plane, behind the eye
	_, ok = Project(math32.Vec3(0, 0, -0.5), &proj, vp)
	assert.False(t, ok)
	_, ok = Project(math32.Vec3(0, 0, -2000), &proj, vp)
	assert.False(t, ok)
	_, ok = Project(math32.Vec3(0, 0, 10), &proj, vp)
	assert.False(t, ok)

	// a pure projection matrix sends z=0 points to w=0
	_, ok = Project(math32.Vec3(5, 5, 0), &proj, vp)
	assert.False(t, ok)

	// viewport offsets shift the result
	ovp := image.Rect(100, 50, 900, 650)
	sp, ok = Project(math32.Vec3(0, 0, -10), &proj, ovp)
	assert.True(t, ok)
	tolassert.EqualTol(t, 500, sp.X, 1.0e-3)
	tolassert.EqualTol(t, 350, sp.Y, 1.0e-3)
}

func TestProjectDepth(t *testing.T) {
	vp := image.Rect(0, 0, 800, 600)
	proj := PerspectiveProjection(vp, 1, 1000)
	pt := math32.Vec3(2, -1, -10)

	sp, ok := Project(pt, &proj, vp)
	assert.True(t, ok)
	sd, ok := ProjectDepth(pt, 0, &proj, vp)
	assert.True(t, ok)
	assert.Equal(t, sp, sd)

	// negative offsets pull toward the eye, positive push away
	near, ok := ProjectDepth(pt, -0.1, &proj, vp)
	assert.True(t, ok)
	assert.Less(t, near.Z, sp.Z)
	assert.Equal(t, sp.X, near.X)
	assert.Equal(t, sp.Y, near.Y)
	far, ok := ProjectDepth(pt, 0.1, &proj, vp)
	assert.True(t, ok)
	assert.Greater(t, far.Z, sp.Z)

	// an offset can push a point past the far plane
	_, ok = ProjectDepth(math32.Vec3(0, 0, -990), 0.2, &proj, vp)
	assert.False(t, ok)
}

func TestUnproject(t *testing.T) {
	vp := image.Rect(0, 0, 800, 600)
	proj := PerspectiveProjection(vp, 1, 1000)
	pt := math32.Vec3(12, 3, -70)

	sp, ok := Project(pt, &proj, vp)
	assert.True(t, ok)
	back, ok := Unproject(sp, &proj, vp)
	assert.True(t, ok)
	tolassert.EqualTol(t, pt.X, back.X, 0.01)
	tolassert.EqualTol(t, pt.Y, back.Y, 0.01)
	tolassert.EqualTol(t, pt.Z, back.Z, 0.01)

	// outside the viewport
	_, ok = Unproject(math32.Vec3(-10, 300, 0.5), &proj, vp)
	assert.False(t, ok)
	_, ok = Unproject(math32.Vec3(400, 700, 0.5), &proj, vp)
	assert.False(t, ok)

	// empty viewport and singular matrix
	_, ok = Unproject(sp, &proj, image.Rectangle{})
	assert.False(t, ok)
	var zero math32.Matrix4
	_, ok = Unproject(math32.Vec3(400, 300, 0.5), &zero, vp)
	assert.False(t, ok)
}
