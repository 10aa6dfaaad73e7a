// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// MalformedGeometryError is returned when an input geometry cannot be
// adapted: a token string that does not parse as pairs of finite numbers, a
// coordinate out of range, or a ring with fewer than 3 distinct points.
type MalformedGeometryError struct {
	cause error
}

// NewMalformedGeometryError returns a MalformedGeometryError with the given
// message.
func NewMalformedGeometryError(format string, args ...interface{}) error {
	return &MalformedGeometryError{cause: errors.NewWithDepthf(1, format, args...)}
}

func (e *MalformedGeometryError) Error() string {
	return "malformed geometry: " + e.cause.Error()
}

// Unwrap implements errors.Wrapper.
func (e *MalformedGeometryError) Unwrap() error { return e.cause }

// EmptyGeometryError is returned when a geometry bundle contains no usable
// geometry. Empty or absent fields within a bundle are no-ops; only a bundle
// that is empty as a whole is an error.
type EmptyGeometryError struct{}

// NewEmptyGeometryError returns an EmptyGeometryError.
func NewEmptyGeometryError() error {
	return &EmptyGeometryError{}
}

func (e *EmptyGeometryError) Error() string {
	return "geometry bundle contains no usable geometry"
}

// DegenerateArcError is returned for a geodesic edge whose great circle is
// undefined: two identical endpoints, or two antipodal endpoints.
type DegenerateArcError struct {
	A, B Point
}

// NewDegenerateArcError returns a DegenerateArcError for the edge (a, b).
func NewDegenerateArcError(a, b Point) error {
	return &DegenerateArcError{A: a, B: b}
}

func (e *DegenerateArcError) Error() string {
	return fmt.Sprintf(
		"degenerate arc: great circle through (%v, %v) and (%v, %v) is undefined",
		e.A.Lat, e.A.Lng, e.B.Lat, e.B.Lng,
	)
}
