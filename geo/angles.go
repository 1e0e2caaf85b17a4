// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "cogentcore.org/core/math32"

// NormalizedLatitude folds the given angle in degrees into the range
// [-90, 90]. Angles beyond a pole fold back over it, so 91 becomes 89,
// reflecting a track that crosses the pole and continues down the far side.
func NormalizedLatitude(degrees float32) float32 {
	lat := math32.Mod(degrees, 180)
	switch {
	case lat > 90:
		return 180 - lat
	case lat < -90:
		return -180 - lat
	}
	return lat
}

// NormalizedLongitude wraps the given angle in degrees into the range
// [-180, 180], crossing the antimeridian as needed, so 181 becomes -179.
func NormalizedLongitude(degrees float32) float32 {
	lon := math32.Mod(degrees, 360)
	switch {
	case lon > 180:
		return lon - 360
	case lon < -180:
		return lon + 360
	}
	return lon
}

// Normalized returns the position with latitude folded into [-90, 90]
// and longitude wrapped into [-180, 180]. Altitude is unchanged.
func (p Position) Normalized() Position {
	return Position{NormalizedLatitude(p.Latitude), NormalizedLongitude(p.Longitude), p.Altitude}
}

// Normalized returns the location with latitude folded into [-90, 90]
// and longitude wrapped into [-180, 180].
func (l Location) Normalized() Location {
	return Location{NormalizedLatitude(l.Latitude), NormalizedLongitude(l.Longitude)}
}
