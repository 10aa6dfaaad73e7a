// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenBundle is the raw token-string geometry format. Each string is a
// whitespace- or comma-separated sequence of "lat lon" pairs. Points carry
// exactly one pair per string, Lines concatenate the pairs of one polyline,
// and Polygons enumerate one token string per ring.
type TokenBundle struct {
	Points   []string   `json:"points,omitempty"`
	Lines    []string   `json:"lines,omitempty"`
	Polygons [][]string `json:"polygons,omitempty"`
}

// ParseTokenBundle adapts a TokenBundle into the canonical Bundle. Absent
// or empty fields are no-ops, but a bundle with no geometry at all is an
// EmptyGeometryError.
func ParseTokenBundle(tb TokenBundle) (*Bundle, error) {
	out := &Bundle{}
	for _, s := range tb.Points {
		pts, err := parsePointTokens(s)
		if err != nil {
			return nil, err
		}
		if len(pts) != 1 {
			return nil, NewMalformedGeometryError(
				"point must be a single \"lat lon\" pair, got %d pairs in %q", len(pts), s)
		}
		out.Points = append(out.Points, pts[0])
	}
	for _, s := range tb.Lines {
		pts, err := parsePointTokens(s)
		if err != nil {
			return nil, err
		}
		if len(pts) < 2 {
			return nil, NewMalformedGeometryError(
				"line must have at least 2 points, got %d in %q", len(pts), s)
		}
		out.Lines = append(out.Lines, Line{Points: pts})
	}
	for _, ringStrs := range tb.Polygons {
		for _, s := range ringStrs {
			pts, err := parsePointTokens(s)
			if err != nil {
				return nil, err
			}
			ring, err := makeRing(pts)
			if err != nil {
				return nil, err
			}
			out.Rings = append(out.Rings, ring)
		}
	}
	if out.Empty() {
		return nil, NewEmptyGeometryError()
	}
	return out, nil
}

// parsePointTokens parses a token string of "lat lon [lat lon ...]" pairs.
// Tokens are separated by any mix of whitespace and commas.
func parsePointTokens(s string) ([]Point, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(tokens) == 0 {
		return nil, NewMalformedGeometryError("no coordinates in %q", s)
	}
	if len(tokens)%2 != 0 {
		return nil, NewMalformedGeometryError(
			"odd number of coordinate tokens (%d) in %q", len(tokens), s)
	}
	pts := make([]Point, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		lat, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, NewMalformedGeometryError("invalid latitude %q", tokens[i])
		}
		lng, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return nil, NewMalformedGeometryError("invalid longitude %q", tokens[i+1])
		}
		if !validLat(lat) {
			return nil, NewMalformedGeometryError("latitude %v out of range [-90, 90]", lat)
		}
		if !validLng(lng) {
			return nil, NewMalformedGeometryError("longitude %v is not finite", lng)
		}
		pts = append(pts, MakePoint(lat, lng))
	}
	return pts, nil
}
