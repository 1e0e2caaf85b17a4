// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo provides the geographic value types used throughout the
// terra virtual globe packages: [Position] and [Location] in degrees of
// latitude and longitude with altitude in meters, the [AltitudeMode]
// that interprets altitude against the terrain surface, and helpers for
// normalizing angles back into geographic range.
package geo

import "fmt"

// Position is a geographic position: latitude and longitude in degrees,
// and altitude in meters. The interpretation of altitude depends on the
// [AltitudeMode] in effect where the position is used.
type Position struct {
	// Latitude is the angle north (positive) or south (negative) of the
	// equator, in degrees.
	Latitude float32

	// Longitude is the angle east (positive) or west (negative) of the
	// prime meridian, in degrees.
	Longitude float32

	// Altitude is the distance above the reference surface, in meters.
	Altitude float32
}

// Pos returns a new [Position] with the given latitude, longitude and altitude.
func Pos(latitude, longitude, altitude float32) Position {
	return Position{latitude, longitude, altitude}
}

// Location returns the latitude and longitude of the position,
// dropping the altitude.
func (p Position) Location() Location {
	return Location{p.Latitude, p.Longitude}
}

func (p Position) String() string {
	return fmt.Sprintf("(%g°, %g°, %gm)", p.Latitude, p.Longitude, p.Altitude)
}

// Location is a geographic location: latitude and longitude in degrees,
// with no altitude.
type Location struct {
	// Latitude is the angle north (positive) or south (negative) of the
	// equator, in degrees.
	Latitude float32

	// Longitude is the angle east (positive) or west (negative) of the
	// prime meridian, in degrees.
	Longitude float32
}

// Loc returns a new [Location] with the given latitude and longitude.
func Loc(latitude, longitude float32) Location {
	return Location{latitude, longitude}
}

// Position returns the location as a [Position] at the given altitude.
func (l Location) Position(altitude float32) Position {
	return Position{l.Latitude, l.Longitude, altitude}
}

func (l Location) String() string {
	return fmt.Sprintf("(%g°, %g°)", l.Latitude, l.Longitude)
}
