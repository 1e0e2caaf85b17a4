// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "cogentcore.org/core/math32"

// Plane is a plane in four-component form: the points p where
// Normal.Dot(p) + Distance == 0. The normal need not be unit length
// until [Plane.Normalize] is called.
type Plane struct {
	// Normal is the plane normal. Frustum plane normals point into the
	// frustum volume.
	Normal math32.Vector3

	// Distance is the plane's signed distance term, in units of the
	// normal's length.
	Distance float32
}

// Dot returns Normal.Dot(pt) + Distance: zero on the plane, positive on
// the side the normal points to, and for a normalized plane the signed
// distance from the plane to the point.
func (p Plane) Dot(pt math32.Vector3) float32 {
	return p.Normal.Dot(pt) + p.Distance
}

// Normalize scales the plane so its normal is unit length, preserving
// its point set. A zero normal is left unchanged.
func (p *Plane) Normalize() {
	n := p.Normal.Length()
	if n == 0 {
		return
	}
	p.Normal = p.Normal.MulScalar(1 / n)
	p.Distance /= n
}

// TransformedBy returns the plane multiplied, as the 4-vector
// (Normal, Distance), by the rows of the given matrix. Planes transform
// by the inverse transpose of the matrix that transforms points, so to
// carry eye coordinate planes into model coordinates, pass the
// transpose of the modelview matrix.
func (p Plane) TransformedBy(m *math32.Matrix4) Plane {
	v := math32.Vec4(p.Normal.X, p.Normal.Y, p.Normal.Z, p.Distance).MulMatrix4(m)
	return Plane{math32.Vec3(v.X, v.Y, v.Z), v.W}
}

// Frustum is a camera viewing volume bounded by six planes whose
// normals point into the volume.
type Frustum struct {
	Left, Right, Bottom, Top, Near, Far Plane
}

// FrustumFromProjection returns the viewing frustum of the given
// projection matrix, in eye coordinates, with all planes normalized.
// Each plane is the sum or difference of the matrix's fourth row with
// one other row, which orients the normals inward.
func FrustumFromProjection(p *math32.Matrix4) Frustum {
	f := Frustum{
		Left:   Plane{math32.Vec3(p[3]+p[0], p[7]+p[4], p[11]+p[8]), p[15] + p[12]},
		Right:  Plane{math32.Vec3(p[3]-p[0], p[7]-p[4], p[11]-p[8]), p[15] - p[12]},
		Bottom: Plane{math32.Vec3(p[3]+p[1], p[7]+p[5], p[11]+p[9]), p[15] + p[13]},
		Top:    Plane{math32.Vec3(p[3]-p[1], p[7]-p[5], p[11]-p[9]), p[15] - p[13]},
		Near:   Plane{math32.Vec3(p[3]+p[2], p[7]+p[6], p[11]+p[10]), p[15] + p[14]},
		Far:    Plane{math32.Vec3(p[3]-p[2], p[7]-p[6], p[11]-p[10]), p[15] - p[14]},
	}
	f.Normalize()
	return f
}

// FrustumInModelCoordinates returns the viewing frustum of the given
// projection matrix carried into model coordinates by the given
// modelview matrix, normalized. This is the frustum renderables test
// themselves against.
func FrustumInModelCoordinates(projection, modelview *math32.Matrix4) Frustum {
	mt := transposed(modelview)
	f := FrustumFromProjection(projection).TransformedBy(&mt)
	f.Normalize()
	return f
}

// Normalize normalizes all six planes. See [Plane.Normalize].
func (f *Frustum) Normalize() {
	f.Left.Normalize()
	f.Right.Normalize()
	f.Bottom.Normalize()
	f.Top.Normalize()
	f.Near.Normalize()
	f.Far.Normalize()
}

// TransformedBy returns the frustum with all six planes transformed by
// the given matrix. See [Plane.TransformedBy].
func (f Frustum) TransformedBy(m *math32.Matrix4) Frustum {
	return Frustum{
		Left:   f.Left.TransformedBy(m),
		Right:  f.Right.TransformedBy(m),
		Bottom: f.Bottom.TransformedBy(m),
		Top:    f.Top.TransformedBy(m),
		Near:   f.Near.TransformedBy(m),
		Far:    f.Far.TransformedBy(m),
	}
}

// ContainsPoint returns whether the given point is strictly inside the
// frustum. Points on a boundary plane are not contained.
func (f Frustum) ContainsPoint(pt math32.Vector3) bool {
	if f.Left.Dot(pt) <= 0 {
		return false
	}
	if f.Right.Dot(pt) <= 0 {
		return false
	}
	if f.Bottom.Dot(pt) <= 0 {
		return false
	}
	if f.Top.Dot(pt) <= 0 {
		return false
	}
	if f.Near.Dot(pt) <= 0 {
		return false
	}
	return f.Far.Dot(pt) > 0
}

// IntersectsSphere returns whether any part of the given sphere is
// inside the frustum, which must be normalized for the plane distances
// to be meaningful. A nil sphere does not intersect.
func (f Frustum) IntersectsSphere(s *math32.Sphere) bool {
	if s == nil {
		return false
	}
	if f.Left.Dot(s.Center) < -s.Radius {
		return false
	}
	if f.Right.Dot(s.Center) < -s.Radius {
		return false
	}
	if f.Bottom.Dot(s.Center) < -s.Radius {
		return false
	}
	if f.Top.Dot(s.Center) < -s.Radius {
		return false
	}
	if f.Near.Dot(s.Center) < -s.Radius {
		return false
	}
	return f.Far.Dot(s.Center) >= -s.Radius
}

func transposed(m *math32.Matrix4) math32.Matrix4 {
	return math32.Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}
