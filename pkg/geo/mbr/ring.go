// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package mbr

import (
	"math"

	"github.com/cockroachdb/spatialbound/pkg/geo"
	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
)

// poleWindingTolerance is the allowed deviation, in degrees, of a ring's
// accumulated longitude traversal from a full ±360 turn when testing for
// pole enclosure. Genuine enclosures land on ±360 up to float error;
// non-enclosing rings sum to 0.
const poleWindingTolerance = 1e-6

// LineBox returns the box enclosing every geodesic segment of the line.
// Zero-length segments are skipped. A line whose points all coincide
// degrades to a buffered point.
func LineBox(l geo.Line) (bbox.Box, error) {
	if len(l.Points) < 2 {
		return bbox.Box{}, geo.NewMalformedGeometryError(
			"line must have at least 2 points, got %d", len(l.Points))
	}
	var out *bbox.Box
	for i := 0; i+1 < len(l.Points); i++ {
		a, b := l.Points[i], l.Points[i+1]
		if PointsCoincide(a, b) {
			continue
		}
		eb, err := EdgeBox(a, b)
		if err != nil {
			return bbox.Box{}, err
		}
		if out == nil {
			out = &eb
		} else {
			*out = bbox.Union(*out, eb)
		}
	}
	if out == nil {
		return PointBox(l.Points[0]), nil
	}
	return *out, nil
}

// RingBox returns the box enclosing the closed ring, including the closing
// edge back to the first point. If the ring encircles a pole, the longitude
// interval is forced to the full circle and the latitude interval extended
// to the enclosed pole.
func RingBox(r geo.Ring) (bbox.Box, error) {
	pts := r.Points
	n := len(pts)
	if n < 3 {
		return bbox.Box{}, geo.NewMalformedGeometryError(
			"ring must have at least 3 points, got %d", n)
	}

	var out *bbox.Box
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		if PointsCoincide(a, b) {
			continue
		}
		eb, err := EdgeBox(a, b)
		if err != nil {
			return bbox.Box{}, err
		}
		if out == nil {
			out = &eb
		} else {
			*out = bbox.Union(*out, eb)
		}
	}
	if out == nil {
		return bbox.Box{}, geo.NewMalformedGeometryError(
			"ring has no non-degenerate edges")
	}

	if pole, enclosed := enclosedPole(pts); enclosed {
		out.Lng = bbox.FullLng()
		if pole > 0 {
			out.Lat.North = 90
		} else {
			out.Lat.South = -90
		}
	}
	return *out, nil
}

// enclosedPole runs the pole-enclosure test: walking the ring's longitudes
// in order and accumulating signed deltas (always the shorter wraparound
// direction), a ring that encircles a pole accumulates a net ±360 turn.
// This is a topological property of the whole ring, independent of edge
// geometry and of winding orientation. The enclosed pole is chosen by the
// sign of the ring's mean latitude; a ring cannot enclose both.
func enclosedPole(pts []geo.Point) (pole int, enclosed bool) {
	var winding float64
	n := len(pts)
	for i := 0; i < n; i++ {
		winding += signedLngDelta(pts[i].Lng, pts[(i+1)%n].Lng)
	}
	if math.Abs(math.Abs(winding)-360) > poleWindingTolerance {
		return 0, false
	}
	var latSum float64
	for _, p := range pts {
		latSum += p.Lat
	}
	if latSum >= 0 {
		return 1, true
	}
	return -1, true
}

// signedLngDelta returns the signed longitude change from a to b taking the
// shorter circular direction, in (-180, 180]. An exact 180-degree
// separation resolves eastward (+180).
func signedLngDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
