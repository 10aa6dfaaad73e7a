// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"github.com/twpayne/go-geom"
)

// BundleFromGeom adapts a go-geom geometry into the canonical Bundle.
// Coordinates are interpreted as (X=longitude, Y=latitude). Polygons
// contribute only their outer rings; interior holes do not affect a
// bounding box and are ignored. An empty geometry yields an
// EmptyGeometryError.
func BundleFromGeom(t geom.T) (*Bundle, error) {
	out := &Bundle{}
	if err := appendGeom(out, t); err != nil {
		return nil, err
	}
	if out.Empty() {
		return nil, NewEmptyGeometryError()
	}
	return out, nil
}

func appendGeom(out *Bundle, t geom.T) error {
	switch t := t.(type) {
	case *geom.Point:
		pt, err := geomPoint(t.Coords())
		if err != nil {
			return err
		}
		out.Points = append(out.Points, pt)
	case *geom.MultiPoint:
		for i := 0; i < t.NumPoints(); i++ {
			pt, err := geomPoint(t.Point(i).Coords())
			if err != nil {
				return err
			}
			out.Points = append(out.Points, pt)
		}
	case *geom.LineString:
		return appendGeomLine(out, t.Coords())
	case *geom.MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			if err := appendGeomLine(out, t.LineString(i).Coords()); err != nil {
				return err
			}
		}
	case *geom.Polygon:
		return appendGeomPolygon(out, t)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			if err := appendGeomPolygon(out, t.Polygon(i)); err != nil {
				return err
			}
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeoms(); i++ {
			if err := appendGeom(out, t.Geom(i)); err != nil {
				return err
			}
		}
	default:
		return NewMalformedGeometryError("unsupported geometry type %T", t)
	}
	return nil
}

func geomPoint(c geom.Coord) (Point, error) {
	if len(c) < 2 {
		return Point{}, NewMalformedGeometryError("coordinate has %d ordinates", len(c))
	}
	lng, lat := c[0], c[1]
	if !validLat(lat) {
		return Point{}, NewMalformedGeometryError("latitude %v out of range [-90, 90]", lat)
	}
	if !validLng(lng) {
		return Point{}, NewMalformedGeometryError("longitude %v is not finite", lng)
	}
	return MakePoint(lat, lng), nil
}

func appendGeomLine(out *Bundle, coords []geom.Coord) error {
	if len(coords) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(coords))
	for _, c := range coords {
		pt, err := geomPoint(c)
		if err != nil {
			return err
		}
		pts = append(pts, pt)
	}
	if len(pts) < 2 {
		return NewMalformedGeometryError("line must have at least 2 points, got %d", len(pts))
	}
	out.Lines = append(out.Lines, Line{Points: pts})
	return nil
}

func appendGeomPolygon(out *Bundle, poly *geom.Polygon) error {
	if poly.NumLinearRings() == 0 {
		return nil
	}
	coords := poly.LinearRing(0).Coords()
	pts := make([]Point, 0, len(coords))
	for _, c := range coords {
		pt, err := geomPoint(c)
		if err != nil {
			return err
		}
		pts = append(pts, pt)
	}
	ring, err := makeRing(pts)
	if err != nil {
		return err
	}
	out.Rings = append(out.Rings, ring)
	return nil
}
