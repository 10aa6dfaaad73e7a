// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

// The UMM types mirror the structured granule-metadata spatial fields.
// Field names (and JSON keys) match the metadata format rather than Go
// conventions so documents decode directly into these structs.

// UMMPoint is a structured-metadata point.
type UMMPoint struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// UMMLine is a structured-metadata polyline.
type UMMLine struct {
	Points []UMMPoint `json:"Points"`
}

// UMMBoundingRectangle is a structured-metadata rectangle with explicit
// west/south/east/north bounds.
type UMMBoundingRectangle struct {
	WestBoundingCoordinate  float64 `json:"WestBoundingCoordinate"`
	SouthBoundingCoordinate float64 `json:"SouthBoundingCoordinate"`
	EastBoundingCoordinate  float64 `json:"EastBoundingCoordinate"`
	NorthBoundingCoordinate float64 `json:"NorthBoundingCoordinate"`
}

// UMMBoundary is the outer boundary of a structured-metadata polygon.
type UMMBoundary struct {
	Points []UMMPoint `json:"Points"`
}

// UMMGPolygon is a structured-metadata polygon. Only the outer boundary is
// modeled; the format's exclusive zones are not used by any producer.
type UMMGPolygon struct {
	Boundary UMMBoundary `json:"Boundary"`
}

// UMMBundle is the structured-metadata geometry format.
type UMMBundle struct {
	Points             []UMMPoint             `json:"Points,omitempty"`
	Lines              []UMMLine              `json:"Lines,omitempty"`
	BoundingRectangles []UMMBoundingRectangle `json:"BoundingRectangles,omitempty"`
	GPolygons          []UMMGPolygon          `json:"GPolygons,omitempty"`
}

// ParseUMMBundle adapts a UMMBundle into the canonical Bundle. Absent or
// empty fields are no-ops, but a bundle with no geometry at all is an
// EmptyGeometryError.
func ParseUMMBundle(ub UMMBundle) (*Bundle, error) {
	out := &Bundle{}
	for _, p := range ub.Points {
		pt, err := ummPoint(p)
		if err != nil {
			return nil, err
		}
		out.Points = append(out.Points, pt)
	}
	for _, l := range ub.Lines {
		pts, err := ummPoints(l.Points)
		if err != nil {
			return nil, err
		}
		if len(pts) < 2 {
			return nil, NewMalformedGeometryError(
				"line must have at least 2 points, got %d", len(pts))
		}
		out.Lines = append(out.Lines, Line{Points: pts})
	}
	for _, r := range ub.BoundingRectangles {
		rect, err := makeRectangle(
			r.WestBoundingCoordinate,
			r.SouthBoundingCoordinate,
			r.EastBoundingCoordinate,
			r.NorthBoundingCoordinate,
		)
		if err != nil {
			return nil, err
		}
		out.Rectangles = append(out.Rectangles, rect)
	}
	for _, gp := range ub.GPolygons {
		pts, err := ummPoints(gp.Boundary.Points)
		if err != nil {
			return nil, err
		}
		ring, err := makeRing(pts)
		if err != nil {
			return nil, err
		}
		out.Rings = append(out.Rings, ring)
	}
	if out.Empty() {
		return nil, NewEmptyGeometryError()
	}
	return out, nil
}

func ummPoint(p UMMPoint) (Point, error) {
	if !validLat(p.Latitude) {
		return Point{}, NewMalformedGeometryError(
			"latitude %v out of range [-90, 90]", p.Latitude)
	}
	if !validLng(p.Longitude) {
		return Point{}, NewMalformedGeometryError(
			"longitude %v is not finite", p.Longitude)
	}
	return MakePoint(p.Latitude, p.Longitude), nil
}

func ummPoints(pts []UMMPoint) ([]Point, error) {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		pt, err := ummPoint(p)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}
