// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/terra/geo"
	"cogentcore.org/terra/globe"
)

// Terrain resolves geographic locations to model points on or above
// the terrain surface. The draw context holds the terrain for the
// current frame so that shapes can place themselves relative to it.
type Terrain interface {

	// SurfacePoint returns the model point for the given location and
	// altitude, interpreted per the given altitude mode: the altitude
	// is measured from the ellipsoid for [geo.Absolute], from the
	// terrain surface for [geo.RelativeToGround], and ignored for
	// [geo.ClampToGround], which returns the surface itself.
	SurfacePoint(latitude, longitude, altitude float32, mode geo.AltitudeMode) math32.Vector3
}

// GlobeTerrain is a [Terrain] that stands directly on a globe's
// elevation model, with no tessellated detail of its own.
type GlobeTerrain struct {
	Globe globe.Globe
}

func (gt *GlobeTerrain) SurfacePoint(latitude, longitude, altitude float32, mode geo.AltitudeMode) math32.Vector3 {
	switch mode {
	case geo.ClampToGround:
		altitude = gt.Globe.ElevationAt(latitude, longitude)
	case geo.RelativeToGround:
		altitude += gt.Globe.ElevationAt(latitude, longitude)
	}
	return gt.Globe.PointFromPosition(latitude, longitude, altitude)
}
