// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/terra/geo"
	"cogentcore.org/terra/globe"
	"github.com/stretchr/testify/assert"
)

func TestPlane(t *testing.T) {
	p := Plane{math32.Vec3(3, 4, 0), 10}
	p.Normalize()
	tolassert.Equal(t, 0.6, p.Normal.X)
	tolassert.Equal(t, 0.8, p.Normal.Y)
	tolassert.Equal(t, 2, p.Distance)

	z := Plane{math32.Vec3(0, 0, 0), 5}
	z.Normalize()
	assert.Equal(t, float32(5), z.Distance)

	d := Plane{math32.Vec3(0, 1, 0), -2}
	assert.Equal(t, float32(5), d.Dot(math32.Vec3(3, 7, 1)))
}

func TestFrustumFromProjection(t *testing.T) {
	vp := image.Rect(0, 0, 500, 500)
	proj := PerspectiveProjection(vp, 1, 100)
	f := FrustumFromProjection(&proj)

	// near and far planes face along z at the clip distances
	tolassert.EqualTol(t, 0, f.Near.Normal.X, 1.0e-6)
	tolassert.EqualTol(t, 0, f.Near.Normal.Y, 1.0e-6)
	tolassert.EqualTol(t, -1, f.Near.Normal.Z, 1.0e-6)
	tolassert.EqualTol(t, -1, f.Near.Distance, 1.0e-5)
	tolassert.EqualTol(t, 1, f.Far.Normal.Z, 1.0e-6)
	tolassert.EqualTol(t, 100, f.Far.Distance, 0.01)

	// a square viewport subtends 45 degrees each side of the axis
	inv := 1 / math32.Sqrt(5)
	tolassert.EqualTol(t, 2*inv, f.Left.Normal.X, 1.0e-6)
	tolassert.EqualTol(t, -inv, f.Left.Normal.Z, 1.0e-6)
	tolassert.EqualTol(t, 0, f.Left.Distance, 1.0e-6)
	tolassert.EqualTol(t, -2*inv, f.Right.Normal.X, 1.0e-6)
	tolassert.EqualTol(t, 2*inv, f.Bottom.Normal.Y, 1.0e-6)
	tolassert.EqualTol(t, -2*inv, f.Top.Normal.Y, 1.0e-6)

	assert.True(t, f.ContainsPoint(math32.Vec3(0, 0, -10)))
	assert.True(t, f.ContainsPoint(math32.Vec3(4, 4, -10)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, -0.5)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, -200)))
	assert.False(t, f.ContainsPoint(math32.Vec3(30, 0, -10)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, 10)))

	s := math32.Sphere{Center: math32.Vec3(0, 0, -10), Radius: 1}
	assert.True(t, f.IntersectsSphere(&s))
	// center 13.4 outside the top plane
	s = math32.Sphere{Center: math32.Vec3(0, 20, -10), Radius: 10}
	assert.False(t, f.IntersectsSphere(&s))
	s.Radius = 15
	assert.True(t, f.IntersectsSphere(&s))
}

func TestFrustumBoundaries(t *testing.T) {
	// an axis-aligned volume with exact plane constants: -1 <= x, y <= 1
	// and -100 <= z <= -1
	f := Frustum{
		Left:   Plane{math32.Vec3(1, 0, 0), 1},
		Right:  Plane{math32.Vec3(-1, 0, 0), 1},
		Bottom: Plane{math32.Vec3(0, 1, 0), 1},
		Top:    Plane{math32.Vec3(0, -1, 0), 1},
		Near:   Plane{math32.Vec3(0, 0, -1), -1},
		Far:    Plane{math32.Vec3(0, 0, 1), 100},
	}
	assert.True(t, f.ContainsPoint(math32.Vec3(0, 0, -50)))

	// boundary points are not contained
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, -1)))
	assert.False(t, f.ContainsPoint(math32.Vec3(1, 0, -50)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, -1, -50)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, -100)))

	// a sphere reaching a plane intersects; one short of it does not
	s := math32.Sphere{Center: math32.Vec3(3, 0, -50), Radius: 1}
	assert.False(t, f.IntersectsSphere(&s))
	s.Radius = 2
	assert.True(t, f.IntersectsSphere(&s))
	s = math32.Sphere{Center: math32.Vec3(0, 0, -120), Radius: 10}
	assert.False(t, f.IntersectsSphere(&s))
	s.Radius = 25
	assert.True(t, f.IntersectsSphere(&s))
	assert.False(t, f.IntersectsSphere(nil))
}

func TestFrustumInModelCoordinates(t *testing.T) {
	vp := image.Rect(0, 0, 500, 500)
	proj := PerspectiveProjection(vp, 1, 100)

	// a pure translation shifts the clip distances
	mv := math32.Matrix4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, -5, 1}
	f := FrustumInModelCoordinates(&proj, &mv)
	tolassert.EqualTol(t, -1, f.Near.Normal.Z, 1.0e-6)
	tolassert.EqualTol(t, 4, f.Near.Distance, 1.0e-5)
	tolassert.EqualTol(t, 1, f.Far.Normal.Z, 1.0e-6)
	tolassert.EqualTol(t, 95, f.Far.Distance, 0.01)
	assert.True(t, f.ContainsPoint(math32.Vec3(0, 0, 0)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, 5)))

	// a rotation turning the eye to look down model +x
	mv = math32.Matrix4{0, 0, -1, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1}
	f = FrustumInModelCoordinates(&proj, &mv)
	assert.True(t, f.ContainsPoint(math32.Vec3(50, 0, 0)))
	assert.False(t, f.ContainsPoint(math32.Vec3(-50, 0, 0)))
	assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, -50)))
}

func TestFrustumOverGlobe(t *testing.T) {
	g := globe.NewSphere(6371000)
	eye := geo.Pos(0, 0, 1000)
	mv := FirstPersonModelview(eye, 0, 0, 0, g)
	vp := image.Rect(0, 0, 500, 500)
	proj := PerspectiveProjection(vp, 10, 10000)
	f := FrustumInModelCoordinates(&proj, &mv)

	// the surface point under the eye is in view; the antipode and a
	// point behind the eye are not
	assert.True(t, f.ContainsPoint(g.PointFromPosition(0, 0, 0)))
	assert.False(t, f.ContainsPoint(g.PointFromPosition(0, 180, 0)))
	assert.False(t, f.ContainsPoint(g.PointFromPosition(0, 0, 1100)))

	s := math32.Sphere{Center: g.PointFromPosition(0, 0, 0), Radius: 100}
	assert.True(t, f.IntersectsSphere(&s))
}
