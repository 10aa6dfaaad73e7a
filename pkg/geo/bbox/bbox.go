// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package bbox implements interval arithmetic for latitude/longitude
// bounding boxes on the sphere.
//
// Longitude intervals follow the s1.Interval convention from the S2 library,
// ported to degree space: an interval with West > East wraps through the
// antimeridian and covers [West, 180] ∪ [-180, East]. The full circle is
// represented as [-180, 180]. Latitude intervals are ordinary closed
// intervals clamped to [-90, 90].
package bbox

import "math"

// Epsilon is the widening, in degrees, applied to bare points so that a
// point yields a box with extent usable by downstream spatial indexing.
const Epsilon = 1e-8

// NormalizeLng normalizes a longitude in degrees to (-180, 180].
func NormalizeLng(lng float64) float64 {
	l := math.Mod(lng, 360)
	if l <= -180 {
		l += 360
	} else if l > 180 {
		l -= 360
	}
	return l
}

// LngInterval is a closed longitude interval in degrees. West > East encodes
// a wraparound through the antimeridian. This encoding is load-bearing:
// consumers interpret West > East as a wrap and the pair must never be
// re-normalized by swapping.
type LngInterval struct {
	West float64
	East float64
}

// FullLng returns the interval covering the entire circle of longitudes.
func FullLng() LngInterval {
	return LngInterval{West: -180, East: 180}
}

// LngIntervalFromPointPair returns the minimal interval containing the two
// longitudes, going in whichever circular direction spans at most 180
// degrees. A tie (exactly 180 degrees apart) resolves east-going from a.
func LngIntervalFromPointPair(a, b float64) LngInterval {
	if positiveLngDistance(a, b) <= 180 {
		return LngInterval{West: a, East: b}
	}
	return LngInterval{West: b, East: a}
}

// IsFull reports whether the interval covers all longitudes.
func (i LngInterval) IsFull() bool {
	return i.West == -180 && i.East == 180
}

// Contains reports whether the interval contains the given longitude,
// which must already be normalized to (-180, 180].
func (i LngInterval) Contains(lng float64) bool {
	if i.West <= i.East {
		return i.West <= lng && lng <= i.East
	}
	return lng >= i.West || lng <= i.East
}

// ContainsInterval reports whether the interval contains o entirely.
func (i LngInterval) ContainsInterval(o LngInterval) bool {
	if i.West > i.East {
		if o.West > o.East {
			return o.West >= i.West && o.East <= i.East
		}
		return o.West >= i.West || o.East <= i.East
	}
	if o.West > o.East {
		return i.IsFull()
	}
	return o.West >= i.West && o.East <= i.East
}

// Width returns the angular span of the interval in degrees.
func (i LngInterval) Width() float64 {
	w := i.East - i.West
	if w < 0 {
		w += 360
	}
	return w
}

// positiveLngDistance returns the distance from a to b going eastward,
// in [0, 360).
func positiveLngDistance(a, b float64) float64 {
	d := b - a
	if d >= 0 {
		return math.Mod(d, 360)
	}
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// MergeLng returns the smallest interval containing both a and b. When the
// inputs are disjoint and the two closure directions are equal, the gap east
// of a is closed (the s1.Interval.Union convention).
func MergeLng(a, b LngInterval) LngInterval {
	if a.IsFull() || b.IsFull() {
		return FullLng()
	}
	if a.Contains(b.West) {
		if a.Contains(b.East) {
			// Either b is inside a, or the two intervals together cover the
			// whole circle.
			if a.ContainsInterval(b) {
				return a
			}
			return FullLng()
		}
		return LngInterval{West: a.West, East: b.East}
	}
	if a.Contains(b.East) {
		return LngInterval{West: b.West, East: a.East}
	}
	// Neither endpoint of b is inside a: either a is inside b, or the two
	// are disjoint.
	if b.Contains(a.West) {
		return b
	}
	dWest := positiveLngDistance(b.East, a.West)
	dEast := positiveLngDistance(a.East, b.West)
	if dWest < dEast {
		return LngInterval{West: b.West, East: a.East}
	}
	return LngInterval{West: a.West, East: b.East}
}

// LatInterval is a closed latitude interval in degrees, South <= North.
type LatInterval struct {
	South float64
	North float64
}

// MergeLat returns the smallest interval containing both a and b, clamped
// to [-90, 90].
func MergeLat(a, b LatInterval) LatInterval {
	return LatInterval{
		South: math.Max(-90, math.Min(a.South, b.South)),
		North: math.Min(90, math.Max(a.North, b.North)),
	}
}

// Box is an axis-aligned bounding box in longitude/latitude space.
type Box struct {
	Lng LngInterval
	Lat LatInterval
}

// Union returns the componentwise merge of the two boxes.
func Union(a, b Box) Box {
	return Box{
		Lng: MergeLng(a.Lng, b.Lng),
		Lat: MergeLat(a.Lat, b.Lat),
	}
}

// BufferPoint returns the box for a bare point, widened by Epsilon in every
// direction. The longitude interval wraps through the antimeridian when
// needed. A point within Epsilon of a pole produces a degenerate latitude
// band with South == North == ±(90-Epsilon).
func BufferPoint(lat, lng float64) Box {
	south, north := lat-Epsilon, lat+Epsilon
	if north > 90 {
		south, north = 90-Epsilon, 90-Epsilon
	} else if south < -90 {
		south, north = -90+Epsilon, -90+Epsilon
	}
	return Box{
		Lng: LngInterval{
			West: NormalizeLng(lng - Epsilon),
			East: NormalizeLng(lng + Epsilon),
		},
		Lat: LatInterval{South: south, North: north},
	}
}

// Coords returns the box as [west, south, east, north]. West > East signals
// an antimeridian wraparound.
func (b Box) Coords() [4]float64 {
	return [4]float64{b.Lng.West, b.Lat.South, b.Lng.East, b.Lat.North}
}
