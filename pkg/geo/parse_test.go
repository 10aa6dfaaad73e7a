// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestParseTokenBundle(t *testing.T) {
	b, err := ParseTokenBundle(TokenBundle{
		Points: []string{"10 20", "-5.5,30.25"},
		Lines:  []string{"0 0, 10 10, 20 20"},
		Polygons: [][]string{
			{"0 0 0 10 10 10 10 0"},
			{"50 50 50 60 60 60", "50 -50 50 -60 60 -60"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []Point{{10, 20}, {-5.5, 30.25}}, b.Points)
	require.Len(t, b.Lines, 1)
	require.Equal(t, []Point{{0, 0}, {10, 10}, {20, 20}}, b.Lines[0].Points)
	require.Len(t, b.Rings, 3)
}

func TestParseTokenBundleNormalizesLongitude(t *testing.T) {
	b, err := ParseTokenBundle(TokenBundle{Points: []string{"0 -180", "0 190"}})
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 180}, {0, -170}}, b.Points)
}

func TestParseTokenBundleClosedRingStripped(t *testing.T) {
	b, err := ParseTokenBundle(TokenBundle{
		Polygons: [][]string{{"0 0 0 10 10 10 0 0"}},
	})
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {0, 10}, {10, 10}}, b.Rings[0].Points)
}

func TestParseTokenBundleErrors(t *testing.T) {
	testCases := []struct {
		name  string
		tb    TokenBundle
		empty bool
	}{
		{"empty bundle", TokenBundle{}, true},
		{"garbage token", TokenBundle{Points: []string{"ten twenty"}}, false},
		{"odd tokens", TokenBundle{Lines: []string{"1 2 3"}}, false},
		{"point with two pairs", TokenBundle{Points: []string{"1 2 3 4"}}, false},
		{"latitude out of range", TokenBundle{Points: []string{"-91 0"}}, false},
		{"nan latitude", TokenBundle{Points: []string{"NaN 0"}}, false},
		{"infinite longitude", TokenBundle{Points: []string{"0 Inf"}}, false},
		{"short ring", TokenBundle{Polygons: [][]string{{"0 0 1 1"}}}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTokenBundle(tc.tb)
			require.Error(t, err)
			if tc.empty {
				var empty *EmptyGeometryError
				require.True(t, errors.As(err, &empty))
			} else {
				var malformed *MalformedGeometryError
				require.True(t, errors.As(err, &malformed))
			}
		})
	}
}

func TestParseUMMBundle(t *testing.T) {
	b, err := ParseUMMBundle(UMMBundle{
		Points: []UMMPoint{{Latitude: 10, Longitude: 20}},
		Lines: []UMMLine{{Points: []UMMPoint{
			{Latitude: 0, Longitude: 0},
			{Latitude: 10, Longitude: 10},
		}}},
		BoundingRectangles: []UMMBoundingRectangle{{
			WestBoundingCoordinate:  -10,
			SouthBoundingCoordinate: -10,
			EastBoundingCoordinate:  10,
			NorthBoundingCoordinate: 10,
		}},
		GPolygons: []UMMGPolygon{{Boundary: UMMBoundary{Points: []UMMPoint{
			{Latitude: 0, Longitude: 0},
			{Latitude: 0, Longitude: 10},
			{Latitude: 10, Longitude: 10},
		}}}},
	})
	require.NoError(t, err)
	require.Len(t, b.Points, 1)
	require.Len(t, b.Lines, 1)
	require.Len(t, b.Rectangles, 1)
	require.Len(t, b.Rings, 1)
}

func TestParseUMMBundleRectangleErrors(t *testing.T) {
	_, err := ParseUMMBundle(UMMBundle{
		BoundingRectangles: []UMMBoundingRectangle{{
			WestBoundingCoordinate:  0,
			SouthBoundingCoordinate: 10,
			EastBoundingCoordinate:  10,
			NorthBoundingCoordinate: -10, // south > north
		}},
	})
	require.Error(t, err)
	var malformed *MalformedGeometryError
	require.True(t, errors.As(err, &malformed))
}

func TestBundleFromGeom(t *testing.T) {
	gc := geom.NewGeometryCollection()
	require.NoError(t, gc.Push(
		geom.NewPointFlat(geom.XY, []float64{20, 10}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 10}),
		geom.NewPolygonFlat(geom.XY, []float64{
			0, 0, 10, 0, 10, 10, 0, 10, 0, 0,
			2, 2, 8, 2, 8, 8, 2, 8, 2, 2,
		}, []int{10, 20}),
	))
	b, err := BundleFromGeom(gc)
	require.NoError(t, err)
	require.Equal(t, []Point{{10, 20}}, b.Points)
	require.Len(t, b.Lines, 1)
	// Only the outer ring is kept; the hole cannot affect a bounding box.
	require.Len(t, b.Rings, 1)
	require.Len(t, b.Rings[0].Points, 4)
}

func TestBundleFromGeomEmpty(t *testing.T) {
	_, err := BundleFromGeom(geom.NewGeometryCollection())
	require.Error(t, err)
	var empty *EmptyGeometryError
	require.True(t, errors.As(err, &empty))
}

func TestBundleFromGeomMultiPolygon(t *testing.T) {
	mp := geom.NewMultiPolygonFlat(geom.XY, []float64{
		0, 0, 10, 0, 10, 10, 0, 0,
		20, 20, 30, 20, 30, 30, 20, 20,
	}, [][]int{{8}, {16}})
	b, err := BundleFromGeom(mp)
	require.NoError(t, err)
	require.Len(t, b.Rings, 2)
}
