// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// spatialbound computes minimum bounding rectangles for geospatial granule
// geometries. It reads one JSON document describing a geometry bundle and
// prints the enclosing [west, south, east, north] box; west > east in the
// output signals an antimeridian wraparound.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spatialbound/pkg/geo"
	"github.com/cockroachdb/spatialbound/pkg/geo/bbox"
	"github.com/cockroachdb/spatialbound/pkg/geo/mbr"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var rootCmd = &cobra.Command{
	Use:           "spatialbound",
	Short:         "spherical minimum-bounding-rectangle toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var format string

var computeCmd = &cobra.Command{
	Use:   "compute [file]",
	Short: "compute the bounding rectangle of a geometry document",
	Long: `Compute the minimum bounding rectangle of a JSON geometry document
read from the given file, or from stdin when no file is given.

Supported formats:
  tokens   {"points": ["lat lon", ...], "lines": [...], "polygons": [[...]]}
  umm      {"Points": [...], "Lines": [...], "BoundingRectangles": [...], "GPolygons": [...]}
  geojson  any GeoJSON geometry, Feature, or FeatureCollection
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		box, err := computeBox(data, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatBox(box))
		return nil
	},
}

func main() {
	computeCmd.Flags().StringVar(&format, "format", "auto",
		"input format: auto, tokens, umm, or geojson")
	rootCmd.AddCommand(computeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func computeBox(data []byte, format string) (bbox.Box, error) {
	switch format {
	case "auto":
		return computeBox(data, detectFormat(data))
	case "tokens":
		var tb geo.TokenBundle
		if err := json.Unmarshal(data, &tb); err != nil {
			return bbox.Box{}, errors.Wrap(err, "decoding token bundle")
		}
		return mbr.ComputeMBR(tb)
	case "umm":
		var ub geo.UMMBundle
		if err := json.Unmarshal(data, &ub); err != nil {
			return bbox.Box{}, errors.Wrap(err, "decoding structured bundle")
		}
		return mbr.ComputeUMMMBR(ub)
	case "geojson":
		return computeGeoJSON(data)
	default:
		return bbox.Box{}, errors.Newf("unknown format %q", format)
	}
}

// detectFormat picks a format from the document's top-level keys: a "type"
// key means GeoJSON, capitalized metadata field names mean the structured
// format, anything else is a token bundle.
func detectFormat(data []byte) string {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return "tokens"
	}
	if _, ok := keys["type"]; ok {
		return "geojson"
	}
	for _, k := range []string{"Points", "Lines", "BoundingRectangles", "GPolygons"} {
		if _, ok := keys[k]; ok {
			return "umm"
		}
	}
	return "tokens"
}

func computeGeoJSON(data []byte) (bbox.Box, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return bbox.Box{}, errors.Wrap(err, "decoding GeoJSON")
	}
	switch probe.Type {
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return bbox.Box{}, errors.Wrap(err, "decoding GeoJSON feature")
		}
		return mbr.ComputeGeomMBR(f.Geometry)
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return bbox.Box{}, errors.Wrap(err, "decoding GeoJSON feature collection")
		}
		var out *bbox.Box
		for _, f := range fc.Features {
			b, err := mbr.ComputeGeomMBR(f.Geometry)
			if err != nil {
				return bbox.Box{}, err
			}
			if out == nil {
				out = &b
			} else {
				*out = bbox.Union(*out, b)
			}
		}
		if out == nil {
			return bbox.Box{}, geo.NewEmptyGeometryError()
		}
		return *out, nil
	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return bbox.Box{}, errors.Wrap(err, "decoding GeoJSON geometry")
		}
		return mbr.ComputeGeomMBR(g)
	}
}

func formatBox(b bbox.Box) string {
	coords := b.Coords()
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
