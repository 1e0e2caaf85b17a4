// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view builds and analyzes the viewing transforms of a virtual
// globe camera: first person and look-at modelview matrices over a
// globe, eye point extraction, model to screen projection, frustum
// planes, and the projection helpers that size pixels at a distance.
//
// Matrices are [math32.Matrix4], stored column-major. Angles are in
// degrees and distances in meters throughout. Heading turns the view
// about the local vertical relative to north, tilt pitches it away from
// straight down, and roll banks it about the view direction.
package view

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/terra/geo"
	"cogentcore.org/terra/globe"
)

// MulFirstPersonModelview right-multiplies matrix m by a first person
// viewing matrix for a viewer at the given geographic eye position on
// the given globe, oriented per heading, tilt and roll in degrees.
//
// The viewing matrix is the product of four transforms, applied to
// model points in reverse of the order multiplied: the local frame
// transform takes points into the east, north, up frame at the eye
// point, with the eye point at the origin; heading then turns about the
// z axis clockwise; tilt turns about the x axis and roll about the z
// axis, both counter-clockwise for the viewer. Heading turning opposite
// to roll is part of the contract: by the heading stage, points are no
// longer in the frame the viewer sees.
//
// Angles outside [-180, 180] are not wrapped; they feed the trig terms
// directly. There is no special casing at the poles, where the frame
// inherits the globe's degenerate north direction.
func MulFirstPersonModelview(m *math32.Matrix4, eye geo.Position, heading, tilt, roll float32, g globe.Globe) {
	eyePoint := g.PointFromPosition(eye.Latitude, eye.Longitude, eye.Altitude)
	x, y, z := globe.LocalAxes(eyePoint, g)

	ch := math32.Cos(math32.DegToRad(heading))
	sh := math32.Sin(math32.DegToRad(heading))
	ct := math32.Cos(math32.DegToRad(tilt))
	st := math32.Sin(math32.DegToRad(tilt))
	cr := math32.Cos(math32.DegToRad(roll))
	sr := math32.Sin(math32.DegToRad(roll))

	// literals below are column-major, written one column per line

	// roll about the z axis, negated sine terms: counter-clockwise
	rollM := math32.Matrix4{
		cr, -sr, 0, 0,
		sr, cr, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	// tilt about the x axis, same counter-clockwise convention
	tiltM := math32.Matrix4{
		1, 0, 0, 0,
		0, ct, -st, 0,
		0, st, ct, 0,
		0, 0, 0, 1,
	}
	// heading about the z axis, standard signs: clockwise
	headingM := math32.Matrix4{
		ch, sh, 0, 0,
		-sh, ch, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	// rows are the local axes; the translation column carries the eye
	// point to the origin
	frame := math32.Matrix4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eyePoint), -y.Dot(eyePoint), -z.Dot(eyePoint), 1,
	}

	var rt, rth math32.Matrix4
	rt.MulMatrices(&rollM, &tiltM)
	rth.MulMatrices(&rt, &headingM)
	var fp math32.Matrix4
	fp.MulMatrices(&rth, &frame)

	prev := *m
	m.MulMatrices(&prev, &fp)
}

// FirstPersonModelview returns the first person viewing matrix for the
// given eye position and orientation on the given globe.
// See [MulFirstPersonModelview].
func FirstPersonModelview(eye geo.Position, heading, tilt, roll float32, g globe.Globe) math32.Matrix4 {
	m := math32.Identity4()
	MulFirstPersonModelview(m, eye, heading, tilt, roll, g)
	return *m
}

// MulLookAtModelview right-multiplies matrix m by a look-at viewing
// matrix: a first person viewer at the given look-at position, backed
// away rng meters along the view direction so that the look-at point
// sits centered at that distance. A range of 0 is exactly the first
// person transform. Negative ranges place the eye beyond the look-at
// point and are not meaningful.
func MulLookAtModelview(m *math32.Matrix4, lookAt geo.Position, rng, heading, tilt, roll float32, g globe.Globe) {
	// back the eye away while the look-at point stays centered
	shift := math32.Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -rng, 1,
	}
	prev := *m
	m.MulMatrices(&prev, &shift)
	MulFirstPersonModelview(m, lookAt, heading, tilt, roll, g)
}

// LookAtModelview returns the look-at viewing matrix for the given
// look-at position, range and orientation on the given globe.
// See [MulLookAtModelview].
func LookAtModelview(lookAt geo.Position, rng, heading, tilt, roll float32, g globe.Globe) math32.Matrix4 {
	m := math32.Identity4()
	MulLookAtModelview(m, lookAt, rng, heading, tilt, roll, g)
	return *m
}

// ModelviewEyePoint returns the eye point of the given modelview matrix
// in model coordinates: the origin taken through the matrix inverse,
// simplified for a rigid transform to the negated product of the
// transposed rotation block with the translation column. The result is
// undefined if the upper 3x3 block is not orthonormal.
func ModelviewEyePoint(m *math32.Matrix4) math32.Vector3 {
	return math32.Vec3(
		-(m[0]*m[12]+m[1]*m[13]+m[2]*m[14]),
		-(m[4]*m[12]+m[5]*m[13]+m[6]*m[14]),
		-(m[8]*m[12]+m[9]*m[13]+m[10]*m[14]))
}

// ModelviewNormalTransform returns the matrix that carries normal
// vectors along the given modelview matrix: the transpose of the upper
// 3x3 block of its inverse. It returns the zero matrix for a singular
// modelview, after logging the error.
func ModelviewNormalTransform(m *math32.Matrix4) math32.Matrix3 {
	inv, err := m.Inverse()
	if errors.Log(err) != nil {
		return math32.Matrix3{}
	}
	return math32.Matrix3{
		inv[0], inv[4], inv[8],
		inv[1], inv[5], inv[9],
		inv[2], inv[6], inv[10],
	}
}
