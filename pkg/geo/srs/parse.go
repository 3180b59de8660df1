// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package srs

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/geodb/geodb/pkg/geo/srs/wkt"
)

// ParseWKT parses the WKT definition of a spatial reference system into a
// validated description. The SRID is used only for error reporting.
//
// On success the result is a *GeographicSRS or a *ProjectedSRS depending on
// the kind of coordinate system the definition describes; projected systems
// are dispatched on the EPSG code of their PROJECTION authority clause. On
// failure the result is nil; no partially built description ever escapes.
func ParseWKT(srid geopb.SRID, wktText geopb.WKT) (SpatialReference, error) {
	if len(wktText) == 0 {
		return nil, &ParseError{SRID: srid}
	}

	cs, err := wkt.Parse(string(wktText))
	if err != nil {
		return nil, &ParseError{SRID: srid, cause: err}
	}

	switch cs := cs.(type) {
	case *wkt.ProjectedCS:
		method := projectionMethodForCode(projectionMethodCode(&cs.Projection))
		return newProjectedSRS(srid, method, cs)
	case *wkt.GeographicCS:
		return newGeographicSRS(cs)
	default:
		return nil, errors.AssertionFailedf("unknown coordinate system type %T", cs)
	}
}

// projectionMethodCode reads the EPSG coordinate operation method code from
// a PROJECTION authority clause. A missing clause, a non-EPSG authority or a
// non-numeric code all mean the method is unknown (code 0); none of these
// are errors.
func projectionMethodCode(proj *wkt.Projection) int {
	if !strings.EqualFold(proj.Authority.Name, "EPSG") {
		return 0
	}
	code, err := strconv.Atoi(proj.Authority.Code)
	if err != nil {
		return 0
	}
	return code
}
