// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package globe models the reference globe that terra renders against:
// the mapping between geographic positions and Cartesian model
// coordinates, surface normals and north tangents for local coordinate
// frames, and terrain elevation lookup.
//
// Model coordinates follow the virtual globe convention: the origin is
// at the globe center, +Y points through the north pole, +Z through the
// intersection of the equator and prime meridian (0°N, 0°E), and +X
// through (0°N, 90°E), completing a right-handed system.
package globe

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/terra/geo"
)

// Globe is the interface to a globe model, mapping between geographic
// and Cartesian model coordinates. [Ellipsoid] is the standard
// implementation.
type Globe interface {
	// PointFromPosition returns the model coordinates of the given
	// latitude and longitude in degrees and altitude in meters.
	PointFromPosition(latitude, longitude, altitude float32) math32.Vector3

	// PositionFromPoint returns the geographic position of the given
	// model point.
	PositionFromPoint(point math32.Vector3) geo.Position

	// SurfaceNormalAtPoint returns the unit normal of the globe surface
	// under the given model point.
	SurfaceNormalAtPoint(point math32.Vector3) math32.Vector3

	// NorthTangentAtPoint returns the unit vector tangent to the globe
	// and pointing north at the given model point.
	NorthTangentAtPoint(point math32.Vector3) math32.Vector3

	// ElevationAt returns the terrain elevation in meters at the given
	// latitude and longitude in degrees.
	ElevationAt(latitude, longitude float32) float32

	// StateKey returns an opaque token identifying the current state of
	// the globe. The token changes whenever the globe's elevations or
	// shape change, so cached state derived from the globe can be
	// invalidated by comparing tokens.
	StateKey() string
}

// ElevationModel provides terrain elevations for a globe.
type ElevationModel interface {
	// ElevationAt returns the elevation in meters at the given latitude
	// and longitude in degrees.
	ElevationAt(latitude, longitude float32) float32

	// Timestamp returns the time the elevation content last changed.
	// Globes fold this into their [Globe.StateKey].
	Timestamp() time.Time
}

// ZeroElevation is an [ElevationModel] that is zero everywhere,
// representing a smooth ellipsoid with no terrain.
type ZeroElevation struct{}

func (ze ZeroElevation) ElevationAt(latitude, longitude float32) float32 { return 0 }

func (ze ZeroElevation) Timestamp() time.Time { return time.Time{} }

// LocalAxes returns the orthonormal basis of the local coordinate frame
// at the given model point on the given globe: z is the surface normal,
// y is tangent to the globe pointing north, and x completes the
// right-handed frame pointing east. The frame is degenerate at the exact
// poles, where north is undefined.
func LocalAxes(point math32.Vector3, g Globe) (x, y, z math32.Vector3) {
	z = g.SurfaceNormalAtPoint(point)
	y = g.NorthTangentAtPoint(point)
	x = y.Cross(z).Normal()
	y = z.Cross(x).Normal()
	return
}

// HorizonDistance returns the distance to the horizon from a viewer at
// the given altitude in meters above a globe of the given radius.
// It returns 0 if either the radius or the altitude is not positive.
func HorizonDistance(globeRadius, altitude float32) float32 {
	if globeRadius <= 0 || altitude <= 0 {
		return 0
	}
	return math32.Sqrt(altitude * (2*globeRadius + altitude))
}
