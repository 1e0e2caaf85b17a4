// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/terra/geo"
)

// Ellipsoid is a [Globe] modeled as an oblate ellipsoid of revolution,
// with an optional [ElevationModel] for terrain.
type Ellipsoid struct {
	// EquatorialRadius is the semi-major axis, in meters.
	EquatorialRadius float32

	// PolarRadius is the semi-minor axis, in meters.
	PolarRadius float32

	// EccentricitySquared is the square of the ellipsoid's first
	// eccentricity, derived from the radii.
	EccentricitySquared float32

	// Elevations is the terrain elevation model. nil is treated as
	// [ZeroElevation].
	Elevations ElevationModel

	id uint64
}

var lastEllipsoidID uint64

// NewEllipsoid returns a new [Ellipsoid] with the given equatorial and
// polar radii in meters.
func NewEllipsoid(equatorialRadius, polarRadius float32) *Ellipsoid {
	a := float64(equatorialRadius)
	b := float64(polarRadius)
	lastEllipsoidID++
	return &Ellipsoid{
		EquatorialRadius:    equatorialRadius,
		PolarRadius:         polarRadius,
		EccentricitySquared: float32((a*a - b*b) / (a * a)),
		id:                  lastEllipsoidID,
	}
}

// NewSphere returns a new spherical [Ellipsoid] with the given radius
// in meters.
func NewSphere(radius float32) *Ellipsoid {
	return NewEllipsoid(radius, radius)
}

// WGS84 returns a new [Ellipsoid] with the WGS 84 reference radii.
func WGS84() *Ellipsoid {
	return NewEllipsoid(6378137, 6356752.3)
}

// PointFromPosition returns the model coordinates of the given latitude
// and longitude in degrees and altitude in meters, using the standard
// prime-vertical radius of curvature mapping.
func (g *Ellipsoid) PointFromPosition(latitude, longitude, altitude float32) math32.Vector3 {
	lat := math32.DegToRad(latitude)
	lon := math32.DegToRad(longitude)
	cosLat := math32.Cos(lat)
	sinLat := math32.Sin(lat)
	cosLon := math32.Cos(lon)
	sinLon := math32.Sin(lon)

	// prime-vertical radius of curvature at this latitude
	rpm := g.EquatorialRadius / math32.Sqrt(1-g.EccentricitySquared*sinLat*sinLat)

	return math32.Vec3(
		(rpm+altitude)*cosLat*sinLon,
		(rpm*(1-g.EccentricitySquared)+altitude)*sinLat,
		(rpm+altitude)*cosLat*cosLon)
}

// PositionFromPoint returns the geographic position of the given model
// point, using Vermeille's analytical method (Journal of Geodesy, 2011).
// It is computed in float64: the method's intermediate terms cancel
// badly enough at Earth scale that float32 would cost meters of
// accuracy.
func (g *Ellipsoid) PositionFromPoint(point math32.Vector3) geo.Position {
	// the method's geocentric axes: X through (0°N, 0°E), Z polar
	X := float64(point.Z)
	Y := float64(point.X)
	Z := float64(point.Y)

	a := float64(g.EquatorialRadius)
	e2 := float64(g.EccentricitySquared)
	e4 := e2 * e2
	xxpyy := X*X + Y*Y
	sqrtXXpYY := math.Sqrt(xxpyy)
	p := xxpyy / (a * a)
	q := Z * Z * (1 - e2) / (a * a)
	r := (p + q - e4) / 6

	var h, phi float64
	evoluteBorder := 8*r*r*r + e4*p*q
	if evoluteBorder > 0 || q != 0 {
		var u float64
		if evoluteBorder > 0 {
			// outside the evolute
			rad1 := math.Sqrt(evoluteBorder)
			rad2 := math.Sqrt(e4 * p * q)
			if evoluteBorder > 10*e2 {
				rad3 := math.Cbrt((rad1 + rad2) * (rad1 + rad2))
				u = r + 0.5*rad3 + 2*r*r/rad3
			} else {
				// near the evolute cusps the difference form is stabler
				u = r + 0.5*math.Cbrt((rad1+rad2)*(rad1+rad2)) +
					0.5*math.Cbrt((rad1-rad2)*(rad1-rad2))
			}
		} else {
			// inside the evolute, off the singular disc
			rad1 := math.Sqrt(-evoluteBorder)
			rad2 := math.Sqrt(-8 * r * r * r)
			rad3 := math.Sqrt(e4 * p * q)
			atan := 2 * math.Atan2(rad3, rad1+rad2) / 3
			u = -4 * r * math.Sin(atan) * math.Cos(math.Pi/6+atan)
		}

		v := math.Sqrt(u*u + e4*q)
		w := e2 * (u + v - q) / (2 * v)
		k := (u + v) / (math.Sqrt(w*w+u+v) + w)
		d := k * sqrtXXpYY / (k + e2)
		sqrtDDpZZ := math.Sqrt(d*d + Z*Z)

		h = (k + e2 - 1) * sqrtDDpZZ / k
		phi = 2 * math.Atan2(Z, sqrtDDpZZ+d)
	} else {
		// on the singular disc, including the globe center
		if e2 == 0 {
			return geo.Pos(90, 0, -g.EquatorialRadius)
		}
		e := math.Sqrt(e2)
		h = -a * math.Sqrt(1-e2) * math.Sqrt(e2-p) / e
		phi = 2 * math.Atan2(math.Sqrt(e4-p), e*math.Sqrt(e2-p)+math.Sqrt(1-e2)*math.Sqrt(p))
	}

	var lambda float64
	if sqrtXXpYY > 0 {
		lambda = math.Atan2(Y, X)
	}
	rad := 180 / math.Pi
	return geo.Pos(float32(phi*rad), float32(lambda*rad), float32(h))
}

// SurfaceNormalAtLocation returns the unit normal of the ellipsoid
// surface at the given latitude and longitude in degrees. For geodetic
// latitude this is exact for any altitude above the location.
func (g *Ellipsoid) SurfaceNormalAtLocation(latitude, longitude float32) math32.Vector3 {
	lat := math32.DegToRad(latitude)
	lon := math32.DegToRad(longitude)
	cosLat := math32.Cos(lat)
	return math32.Vec3(cosLat*math32.Sin(lon), math32.Sin(lat), cosLat*math32.Cos(lon))
}

// SurfaceNormalAtPoint returns the unit normal of the ellipsoid surface
// under the given model point, from the gradient of the ellipsoid
// equation.
func (g *Ellipsoid) SurfaceNormalAtPoint(point math32.Vector3) math32.Vector3 {
	eqSquared := g.EquatorialRadius * g.EquatorialRadius
	polSquared := g.PolarRadius * g.PolarRadius
	return math32.Vec3(point.X/eqSquared, point.Y/polSquared, point.Z/eqSquared).Normal()
}

// NorthTangentAtLocation returns the unit vector tangent to the
// ellipsoid and pointing north at the given latitude and longitude in
// degrees.
func (g *Ellipsoid) NorthTangentAtLocation(latitude, longitude float32) math32.Vector3 {
	lat := math32.DegToRad(latitude)
	lon := math32.DegToRad(longitude)
	sinLat := math32.Sin(lat)
	return math32.Vec3(-sinLat*math32.Sin(lon), math32.Cos(lat), -sinLat*math32.Cos(lon))
}

// NorthTangentAtPoint returns the unit vector tangent to the ellipsoid
// and pointing north at the given model point.
func (g *Ellipsoid) NorthTangentAtPoint(point math32.Vector3) math32.Vector3 {
	pos := g.PositionFromPoint(point)
	return g.NorthTangentAtLocation(pos.Latitude, pos.Longitude)
}

// RadiusAt returns the geocentric radius of the ellipsoid surface at
// the given latitude and longitude in degrees.
func (g *Ellipsoid) RadiusAt(latitude, longitude float32) float32 {
	es := g.EccentricitySquared
	sinLat := math32.Sin(math32.DegToRad(latitude))
	rpm := g.EquatorialRadius / math32.Sqrt(1-es*sinLat*sinLat)
	return rpm * math32.Sqrt(1+(es*es-2*es)*sinLat*sinLat)
}

// ElevationAt returns the terrain elevation in meters at the given
// latitude and longitude in degrees, from the [Ellipsoid.Elevations]
// model, or 0 if there is none.
func (g *Ellipsoid) ElevationAt(latitude, longitude float32) float32 {
	if g.Elevations == nil {
		return 0
	}
	return g.Elevations.ElevationAt(latitude, longitude)
}

// StateKey returns a token identifying this globe and the timestamp of
// its elevation content.
func (g *Ellipsoid) StateKey() string {
	var ts int64
	if g.Elevations != nil {
		ts = g.Elevations.Timestamp().UnixNano()
	}
	return fmt.Sprintf("globe %d elevations %d", g.id, ts)
}
