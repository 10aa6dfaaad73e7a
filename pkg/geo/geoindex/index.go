// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geoindex provides an in-memory spatial index over computed
// bounding rectangles.
//
// The index stores boxes in an R-tree keyed by caller-supplied ids. Boxes
// whose longitude interval wraps through the antimeridian (west > east) are
// split into two planar rectangles at ±180 before insertion, and queries
// split the same way, so wraparound geometries intersect correctly without
// the tree itself knowing about the sphere.
package geoindex

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
	"github.com/dhconnelly/rtreego"
)

// minExtent keeps R-tree rectangle dimensions strictly positive. Engine
// boxes already carry at least bbox.Epsilon of extent in each dimension,
// but a wrap split exactly at ±180 can leave one half degenerate.
const minExtent = bbox.Epsilon / 2

// Index is a queryable collection of bounding rectangles. Safe for
// concurrent use.
type Index struct {
	mu sync.RWMutex
	rt *rtreego.Rtree
	n  int
}

type entry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// New returns an empty index.
func New() *Index {
	return &Index{rt: rtreego.NewTree(2, 25, 50)}
}

// Insert adds a box under the given id. Ids need not be unique; each call
// adds one entry.
func (idx *Index) Insert(id string, b bbox.Box) {
	rects := splitRects(b)
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, r := range rects {
		idx.rt.Insert(&entry{id: id, rect: r})
	}
	idx.n++
}

// Intersecting returns the ids of all boxes intersecting b, sorted and
// deduplicated.
func (idx *Index) Intersecting(b bbox.Box) []string {
	rects := splitRects(b)
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, r := range rects {
		for _, sp := range idx.rt.SearchIntersect(r) {
			seen[sp.(*entry).id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of boxes inserted.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.n
}

// splitRects converts a box into one planar rectangle, or two when the
// longitude interval wraps through the antimeridian.
func splitRects(b bbox.Box) []rtreego.Rect {
	if b.Lng.West <= b.Lng.East {
		return []rtreego.Rect{planarRect(b.Lng.West, b.Lng.East, b.Lat)}
	}
	return []rtreego.Rect{
		planarRect(b.Lng.West, 180, b.Lat),
		planarRect(-180, b.Lng.East, b.Lat),
	}
}

func planarRect(west, east float64, lat bbox.LatInterval) rtreego.Rect {
	width := east - west
	if width < minExtent {
		width = minExtent
	}
	height := lat.North - lat.South
	if height < minExtent {
		height = minExtent
	}
	r, err := rtreego.NewRect(rtreego.Point{west, lat.South}, []float64{width, height})
	if err != nil {
		// Reachable only through a bug in the split above.
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "building index rectangle"))
	}
	return r
}
