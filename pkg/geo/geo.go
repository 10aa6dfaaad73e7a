// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geo contains the canonical geometry types for the spherical
// bounding engine and the adapters that build them from external formats.
//
// Three adapters produce the same canonical Bundle:
//   - ParseTokenBundle, for raw "lat lon" token strings;
//   - ParseUMMBundle, for structured granule metadata;
//   - BundleFromGeom, for go-geom geometries (GeoJSON, WKB, ...).
//
// Subpackages:
//   - geo/bbox implements the wraparound-aware interval algebra;
//   - geo/mbr computes minimum bounding rectangles over Bundles;
//   - geo/geoindex indexes computed rectangles for spatial queries.
package geo

import (
	"math"

	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
	"github.com/golang/geo/s2"
)

// Point is a position on the sphere in degrees. Latitude is in [-90, 90]
// and longitude in (-180, 180] after normalization.
type Point struct {
	Lat float64
	Lng float64
}

// MakePoint returns a Point with the longitude normalized to (-180, 180].
// The latitude must already be valid; adapters validate before calling.
func MakePoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: bbox.NormalizeLng(lng)}
}

// S2 returns the point as a unit vector on the sphere.
func (p Point) S2() s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lng))
}

// Line is an ordered sequence of at least 2 points. No closure is implied.
type Line struct {
	Points []Point
}

// Ring is an ordered sequence of at least 3 distinct points forming a
// polygon boundary. The ring is implicitly closed: the last point connects
// back to the first. Interior holes are not modeled.
type Ring struct {
	Points []Point
}

// BoundingRectangle is a directly-supplied box with explicit bounds. It
// bypasses geometric computation but participates in box unions. West >
// East encodes an antimeridian crossing.
type BoundingRectangle struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Bundle is the canonical geometry set for one bounding computation. Any
// mixture of kinds may be present.
type Bundle struct {
	Points     []Point
	Lines      []Line
	Rings      []Ring
	Rectangles []BoundingRectangle
}

// Empty reports whether the bundle contains no geometry of any kind.
func (b *Bundle) Empty() bool {
	return len(b.Points) == 0 && len(b.Lines) == 0 &&
		len(b.Rings) == 0 && len(b.Rectangles) == 0
}

// validLat reports whether lat is a finite latitude in [-90, 90].
func validLat(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

// validLng reports whether lng is a finite longitude. Any finite value is
// accepted; normalization maps it into (-180, 180].
func validLng(lng float64) bool {
	return !math.IsNaN(lng) && !math.IsInf(lng, 0)
}

// distinctPoints returns the number of distinct points in the sequence,
// ignoring an explicit closing duplicate of the first point.
func distinctPoints(pts []Point) int {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	seen := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// makeRing validates and builds a Ring from a parsed point sequence. An
// explicit closing duplicate of the first point is dropped; the closure is
// implied by the type.
func makeRing(pts []Point) (Ring, error) {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if n := distinctPoints(pts); n < 3 {
		return Ring{}, NewMalformedGeometryError(
			"ring must have at least 3 distinct points, got %d", n)
	}
	return Ring{Points: pts}, nil
}

// makeRectangle validates and normalizes a caller-supplied rectangle.
func makeRectangle(west, south, east, north float64) (BoundingRectangle, error) {
	if !validLat(south) || !validLat(north) || south > north {
		return BoundingRectangle{}, NewMalformedGeometryError(
			"invalid latitude bounds [%v, %v]", south, north)
	}
	if !validLng(west) || !validLng(east) {
		return BoundingRectangle{}, NewMalformedGeometryError(
			"invalid longitude bounds [%v, %v]", west, east)
	}
	return BoundingRectangle{
		West:  bbox.NormalizeLng(west),
		South: south,
		East:  bbox.NormalizeLng(east),
		North: north,
	}, nil
}
