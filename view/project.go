// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Project transforms the given model point by the given combined
// modelview-projection matrix and maps the result into the given
// viewport rectangle, whose minimum corner is its lower left with y
// increasing upward. The returned point holds the window x and y and a
// normalized depth in [0, 1].
//
// The ok result is false, with the point undefined, when the clip w
// coordinate is 0 or the perspective-divided z lies outside [-1, 1]:
// both are expected outcomes for points at infinity or beyond the near
// and far planes, and callers skip such points rather than treating
// them as errors.
func Project(modelPoint math32.Vector3, mvp *math32.Matrix4, viewport image.Rectangle) (math32.Vector3, bool) {
	clip := math32.Vec4(modelPoint.X, modelPoint.Y, modelPoint.Z, 1).MulMatrix4(mvp)
	if clip.W == 0 {
		return math32.Vector3{}, false
	}
	ndc := clip.PerspDiv()
	if ndc.Z < -1 || ndc.Z > 1 {
		return math32.Vector3{}, false
	}
	return math32.Vec3(
		float32(viewport.Min.X)+(ndc.X*0.5+0.5)*float32(viewport.Dx()),
		float32(viewport.Min.Y)+(ndc.Y*0.5+0.5)*float32(viewport.Dy()),
		ndc.Z*0.5+0.5), true
}

// ProjectDepth is [Project] with the clip z coordinate scaled by
// 1+depthOffset before the perspective divide. Small negative offsets
// pull geometry toward the eye so that shapes coincident with the globe
// surface resolve in front of it; positive offsets push it deeper.
// An offset of 0 is exactly [Project].
func ProjectDepth(modelPoint math32.Vector3, depthOffset float32, mvp *math32.Matrix4, viewport image.Rectangle) (math32.Vector3, bool) {
	clip := math32.Vec4(modelPoint.X, modelPoint.Y, modelPoint.Z, 1).MulMatrix4(mvp)
	if clip.W == 0 {
		return math32.Vector3{}, false
	}
	clip.Z *= 1 + depthOffset
	ndc := clip.PerspDiv()
	if ndc.Z < -1 || ndc.Z > 1 {
		return math32.Vector3{}, false
	}
	return math32.Vec3(
		float32(viewport.Min.X)+(ndc.X*0.5+0.5)*float32(viewport.Dx()),
		float32(viewport.Min.Y)+(ndc.Y*0.5+0.5)*float32(viewport.Dy()),
		ndc.Z*0.5+0.5), true
}

// Unproject is the inverse of [Project]: it maps a window point with
// normalized depth back to model coordinates through the inverse of the
// given modelview-projection matrix. The ok result is false for a
// window point outside the viewport, an empty viewport, a singular
// matrix, or a point mapping to infinity.
func Unproject(screenPoint math32.Vector3, mvp *math32.Matrix4, viewport image.Rectangle) (math32.Vector3, bool) {
	if viewport.Dx() == 0 || viewport.Dy() == 0 {
		return math32.Vector3{}, false
	}
	sx := (screenPoint.X - float32(viewport.Min.X)) / float32(viewport.Dx())
	sy := (screenPoint.Y - float32(viewport.Min.Y)) / float32(viewport.Dy())
	if sx < 0 || sx > 1 || sy < 0 || sy > 1 {
		return math32.Vector3{}, false
	}
	inv, err := mvp.Inverse()
	if errors.Log(err) != nil {
		return math32.Vector3{}, false
	}
	clip := math32.Vec4(sx*2-1, sy*2-1, screenPoint.Z*2-1, 1).MulMatrix4(&inv)
	if clip.W == 0 {
		return math32.Vector3{}, false
	}
	return clip.PerspDiv(), true
}
