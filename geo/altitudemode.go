// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

// AltitudeMode specifies how the altitude of a [Position] is interpreted
// relative to the terrain surface.
type AltitudeMode int32

const (
	// Absolute interprets altitude as a distance from the reference
	// ellipsoid, ignoring the terrain surface.
	Absolute AltitudeMode = iota

	// RelativeToGround interprets altitude as a distance above the
	// terrain surface directly below the position.
	RelativeToGround

	// ClampToGround ignores altitude and places the position on the
	// terrain surface.
	ClampToGround
)

func (am AltitudeMode) String() string {
	switch am {
	case Absolute:
		return "Absolute"
	case RelativeToGround:
		return "RelativeToGround"
	case ClampToGround:
		return "ClampToGround"
	}
	return "AltitudeModeInvalid"
}
