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
	"fmt"

	"github.com/geodb/geodb/pkg/geo/geopb"
)

// ParseError is returned when a spatial reference system definition cannot
// be parsed, either because it is empty or because it is not valid WKT. The
// cause, if any, carries the grammar-level diagnostic.
type ParseError struct {
	SRID  geopb.SRID
	cause error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("can't parse the spatial reference system definition of SRID %d", e.SRID)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap implements the errors unwrap interface.
func (e *ParseError) Unwrap() error { return e.cause }

// MissingParameterError is returned when a projection parameter that is
// mandatory for the projection method is not present in the definition.
type MissingParameterError struct {
	SRID geopb.SRID
	// Name is the canonical EPSG name of the parameter, e.g. "false_northing".
	Name string
	// Code is the EPSG parameter code, e.g. 8807.
	Code int
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf(
		"the spatial reference system definition for SRID %d does not specify the mandatory %s (EPSG %d) projection parameter",
		e.SRID, e.Name, e.Code,
	)
}
