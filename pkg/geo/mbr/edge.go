// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package mbr

import (
	"math"

	"github.com/cockroachdb/spatialbound/pkg/geo"
	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
	"github.com/golang/geo/s2"
)

// latConversionSlop absorbs the radian round-tripping noise of the s2 edge
// bound (at most a few 1e-14 degrees). Latitude extremes within this slop of
// the endpoint latitudes are endpoint latitudes; only a genuine geodesic
// bulge extends the interval, keeping endpoint coordinates exact in the
// result.
const latConversionSlop = 1e-12

const degreesPerRadian = 180 / math.Pi

// PointBox returns the box for a single point, widened by bbox.Epsilon.
func PointBox(p geo.Point) bbox.Box {
	return bbox.BufferPoint(p.Lat, p.Lng)
}

// EdgeBox returns the box enclosing the geodesic arc from a to b.
//
// The longitude span takes the shorter of the two circular directions
// between the endpoint longitudes. Endpoints whose longitudes are exactly
// 180 degrees apart (but which are not antipodal) widen to the full circle,
// since either half is a valid geodesic under perturbation.
//
// The latitude interval starts from the endpoint latitudes and is extended
// to the arc's true extreme where the great circle's vertex falls inside
// the edge: an arc between two points at the same non-equatorial latitude
// bulges poleward of both endpoints.
//
// Returns DegenerateArcError when the endpoints are identical or antipodal
// and the great circle is undefined.
func EdgeBox(a, b geo.Point) (bbox.Box, error) {
	if PointsCoincide(a, b) || antipodal(a, b) {
		return bbox.Box{}, geo.NewDegenerateArcError(a, b)
	}

	var lng bbox.LngInterval
	if lngSeparation(a.Lng, b.Lng) == 180 {
		lng = bbox.FullLng()
	} else {
		lng = bbox.LngIntervalFromPointPair(a.Lng, b.Lng)
	}

	lat := bbox.LatInterval{
		South: math.Min(a.Lat, b.Lat),
		North: math.Max(a.Lat, b.Lat),
	}
	rb := s2.NewRectBounder()
	rb.AddPoint(a.S2())
	rb.AddPoint(b.S2())
	bound := rb.RectBound()
	if lo := bound.Lat.Lo * degreesPerRadian; lo < lat.South-latConversionSlop {
		lat.South = math.Max(-90, lo)
	}
	if hi := bound.Lat.Hi * degreesPerRadian; hi > lat.North+latConversionSlop {
		lat.North = math.Min(90, hi)
	}

	return bbox.Box{Lng: lng, Lat: lat}, nil
}

// PointsCoincide reports whether a and b are the same physical point on the
// sphere. At a pole, all longitudes denote the same point.
func PointsCoincide(a, b geo.Point) bool {
	if a.Lat != b.Lat {
		return false
	}
	return a.Lng == b.Lng || a.Lat == 90 || a.Lat == -90
}

// antipodal reports whether a and b are diametrically opposite.
func antipodal(a, b geo.Point) bool {
	if a.Lat != -b.Lat {
		return false
	}
	if a.Lat == 90 || a.Lat == -90 {
		return true
	}
	return lngSeparation(a.Lng, b.Lng) == 180
}

// lngSeparation returns the angular separation of two longitudes, in
// [0, 180].
func lngSeparation(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}
