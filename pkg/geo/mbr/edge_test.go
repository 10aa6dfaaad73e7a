// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package mbr

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spatialbound/pkg/geo"
	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
	"github.com/stretchr/testify/require"
)

func TestEdgeBoxEndpointBounded(t *testing.T) {
	// An ascending arc whose great-circle vertex lies outside the edge:
	// the endpoint coordinates bound the arc exactly.
	b, err := EdgeBox(geo.MakePoint(10, 35), geo.MakePoint(15, 45))
	require.NoError(t, err)
	require.Equal(t, bbox.Box{
		Lng: bbox.LngInterval{West: 35, East: 45},
		Lat: bbox.LatInterval{South: 10, North: 15},
	}, b)
}

func TestEdgeBoxMeridianArc(t *testing.T) {
	// An arc along a single meridian has no longitude extent and no bulge.
	b, err := EdgeBox(geo.MakePoint(15, 45), geo.MakePoint(25, 45))
	require.NoError(t, err)
	require.Equal(t, bbox.Box{
		Lng: bbox.LngInterval{West: 45, East: 45},
		Lat: bbox.LatInterval{South: 15, North: 25},
	}, b)
}

func TestEdgeBoxSameLatitudeBulge(t *testing.T) {
	// Two points at latitude 10 separated by 10 degrees of longitude: the
	// geodesic bulges poleward. The vertex latitude satisfies
	// tan(latMax) = tan(lat) / cos(halfSpan).
	b, err := EdgeBox(geo.MakePoint(10, 175), geo.MakePoint(10, -175))
	require.NoError(t, err)
	require.Equal(t, bbox.LngInterval{West: 175, East: -175}, b.Lng)
	require.Equal(t, 10.0, b.Lat.South)
	expectedMax := math.Atan(math.Tan(10*math.Pi/180)/math.Cos(5*math.Pi/180)) * 180 / math.Pi
	require.InDelta(t, expectedMax, b.Lat.North, 1e-6)
	require.InDelta(t, 10.03742305, b.Lat.North, 1e-6)
}

func TestEdgeBoxSouthernBulge(t *testing.T) {
	b, err := EdgeBox(geo.MakePoint(-10, 175), geo.MakePoint(-10, -175))
	require.NoError(t, err)
	require.Equal(t, -10.0, b.Lat.North)
	require.InDelta(t, -10.03742305, b.Lat.South, 1e-6)
}

func TestEdgeBoxAntimeridianShortWay(t *testing.T) {
	// The shorter circular direction wins, not the numeric order.
	b, err := EdgeBox(geo.MakePoint(0, 170), geo.MakePoint(5, -170))
	require.NoError(t, err)
	require.Equal(t, bbox.LngInterval{West: 170, East: -170}, b.Lng)
}

func TestEdgeBoxOppositeLongitudes(t *testing.T) {
	// Non-antipodal endpoints with longitudes exactly 180 degrees apart:
	// both half-circle paths are valid geodesics, so the span widens to the
	// full circle.
	b, err := EdgeBox(geo.MakePoint(10, 0), geo.MakePoint(20, 180))
	require.NoError(t, err)
	require.Equal(t, bbox.FullLng(), b.Lng)
}

func TestEdgeBoxDegenerate(t *testing.T) {
	testCases := []struct {
		name string
		a, b geo.Point
	}{
		{"identical", geo.MakePoint(10, 10), geo.MakePoint(10, 10)},
		{"identical pole, different longitudes", geo.MakePoint(90, 0), geo.MakePoint(90, 50)},
		{"antipodal", geo.MakePoint(45, 45), geo.MakePoint(-45, -135)},
		{"antipodal poles", geo.MakePoint(90, 0), geo.MakePoint(-90, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EdgeBox(tc.a, tc.b)
			require.Error(t, err)
			var degenerate *geo.DegenerateArcError
			require.True(t, errors.As(err, &degenerate))
		})
	}
}

func TestEdgeBoxNotDegenerate(t *testing.T) {
	// Same latitude pair at opposite longitudes is not antipodal.
	_, err := EdgeBox(geo.MakePoint(45, 45), geo.MakePoint(45, -135))
	require.NoError(t, err)
}

func TestPointBox(t *testing.T) {
	b := PointBox(geo.MakePoint(10, 35))
	require.Equal(t, bbox.BufferPoint(10, 35), b)
}
