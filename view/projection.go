// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// PerspectiveProjection returns a perspective projection matrix for the
// given viewport, with near and far clip distances in meters and depth
// mapped to [-1, 1].
//
// The frustum cross-section at distance d has its smaller dimension
// equal to d and its larger dimension scaled by the viewport aspect
// ratio. Sizing by the smaller dimension keeps the scene the same size
// on screen when the viewport width and height are swapped, as when a
// device rotates. It returns the identity matrix, after logging an
// error, for an empty viewport or a degenerate near and far range.
func PerspectiveProjection(viewport image.Rectangle, near, far float32) math32.Matrix4 {
	vw := float32(viewport.Dx())
	vh := float32(viewport.Dy())
	if vw <= 0 || vh <= 0 || near <= 0 || far <= near {
		errors.Log(errors.New("view.PerspectiveProjection: viewport is empty or clip distances are degenerate"))
		return *math32.Identity4()
	}
	var width, height float32
	if vw < vh {
		width = near
		height = near * vh / vw
	} else {
		width = near * vw / vh
		height = near
	}
	return math32.Matrix4{
		2 * near / width, 0, 0, 0,
		0, 2 * near / height, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -2 * far * near / (far - near), 0,
	}
}

// PixelSizeCoefficients returns the factor and offset of the linear
// function factor*distance + offset giving the approximate model size
// of a pixel at a distance from the eye, for the given projection
// matrix and viewport. The fit uses the frustum cross-sections at the
// near and far planes, on the premise that cross-section width grows
// linearly with distance. A perspective projection yields an offset of
// 0; an orthographic projection yields a factor of 0. Both results are
// 0, after logging an error, for a singular or degenerate projection
// or an empty viewport.
func PixelSizeCoefficients(projection *math32.Matrix4, viewport image.Rectangle) (factor, offset float32) {
	inv, err := projection.Inverse()
	if errors.Log(err) != nil {
		return 0, 0
	}
	nbl := math32.Vec4(-1, -1, -1, 1).MulMatrix4(&inv).PerspDiv()
	ntr := math32.Vec4(1, 1, -1, 1).MulMatrix4(&inv).PerspDiv()
	fbl := math32.Vec4(-1, -1, 1, 1).MulMatrix4(&inv).PerspDiv()
	ftr := math32.Vec4(1, 1, 1, 1).MulMatrix4(&inv).PerspDiv()

	nearWidth := ntr.X - nbl.X
	farWidth := ftr.X - fbl.X
	// the eye looks down -z, so distances negate z
	nearDist := -nbl.Z
	farDist := -fbl.Z

	vw := float32(viewport.Dx())
	if vw <= 0 || farDist == nearDist {
		errors.Log(errors.New("view.PixelSizeCoefficients: viewport is empty or projection is degenerate"))
		return 0, 0
	}
	factor = (farWidth - nearWidth) / ((farDist - nearDist) * vw)
	offset = (nearWidth*farDist - farWidth*nearDist) / ((farDist - nearDist) * vw)
	return factor, offset
}
