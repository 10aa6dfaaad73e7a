// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package mbr computes minimum bounding rectangles for geometries on the
// sphere.
//
// Edges are treated as great-circle arcs, not planar segments: an arc
// between two points at the same latitude bulges toward the nearer pole,
// longitude spans may wrap through the antimeridian (encoded as west >
// east), and a ring that encircles a pole reports the full longitude range
// together with the enclosed polar cap.
//
// Every function is a pure computation over its input; concurrent calls
// need no coordination.
package mbr

import (
	"github.com/cockroachdb/spatialbound/pkg/geo"
	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
	"github.com/twpayne/go-geom"
)

// Compute returns the minimum bounding rectangle enclosing every geometry
// in the canonical bundle, as the union of the per-geometry boxes. Bare
// points are widened by bbox.Epsilon; rectangles pass through as supplied.
func Compute(b *geo.Bundle) (bbox.Box, error) {
	if b == nil || b.Empty() {
		return bbox.Box{}, geo.NewEmptyGeometryError()
	}
	var out *bbox.Box
	merge := func(bx bbox.Box) {
		if out == nil {
			out = &bx
		} else {
			*out = bbox.Union(*out, bx)
		}
	}
	for _, p := range b.Points {
		merge(PointBox(p))
	}
	for _, l := range b.Lines {
		bx, err := LineBox(l)
		if err != nil {
			return bbox.Box{}, err
		}
		merge(bx)
	}
	for _, r := range b.Rings {
		bx, err := RingBox(r)
		if err != nil {
			return bbox.Box{}, err
		}
		merge(bx)
	}
	for _, r := range b.Rectangles {
		merge(bbox.Box{
			Lng: bbox.LngInterval{West: r.West, East: r.East},
			Lat: bbox.LatInterval{South: r.South, North: r.North},
		})
	}
	return *out, nil
}

// ComputeMBR returns the bounding rectangle for a raw token-string bundle.
func ComputeMBR(tb geo.TokenBundle) (bbox.Box, error) {
	b, err := geo.ParseTokenBundle(tb)
	if err != nil {
		return bbox.Box{}, err
	}
	return Compute(b)
}

// ComputeUMMMBR returns the bounding rectangle for a structured-metadata
// bundle. Inputs semantically equivalent to a token bundle produce an
// identical box.
func ComputeUMMMBR(ub geo.UMMBundle) (bbox.Box, error) {
	b, err := geo.ParseUMMBundle(ub)
	if err != nil {
		return bbox.Box{}, err
	}
	return Compute(b)
}

// ComputeGeomMBR returns the bounding rectangle for a go-geom geometry.
func ComputeGeomMBR(t geom.T) (bbox.Box, error) {
	b, err := geo.BundleFromGeom(t)
	if err != nil {
		return bbox.Box{}, err
	}
	return Compute(b)
}
