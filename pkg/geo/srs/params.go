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
	"math"
	"strconv"
	"strings"

	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/geodb/geodb/pkg/geo/srs/wkt"
)

// paramNames is the canonical EPSG name of each projection parameter code
// this package extracts. Definitions without an EPSG authority clause on a
// parameter are matched by these names instead.
var paramNames = map[int]string{
	1026: "c1",
	1027: "c2",
	1028: "c3",
	1029: "c4",
	1030: "c5",
	1031: "c6",
	1032: "c7",
	1033: "c8",
	1034: "c9",
	1035: "c10",
	1036: "azimuth",
	1038: "ellipsoid_scale_factor",
	1039: "projection_plane_height_at_origin",
	8617: "evaluation_point_ordinate_1",
	8618: "evaluation_point_ordinate_2",
	8801: "latitude_of_origin",
	8802: "central_meridian",
	8805: "scale_factor",
	8806: "false_easting",
	8807: "false_northing",
	8811: "latitude_of_center",
	8812: "longitude_of_center",
	8813: "azimuth",
	8814: "rectified_grid_angle",
	8815: "scale_factor",
	8816: "false_easting",
	8817: "false_northing",
	8818: "pseudo_standard_parallel_1",
	8819: "scale_factor",
	8821: "latitude_of_origin",
	8822: "central_meridian",
	8823: "standard_parallel_1",
	8824: "standard_parallel_2",
	8826: "false_easting",
	8827: "false_northing",
	8830: "initial_longitude",
	8831: "zone_width",
	8832: "standard_parallel",
	8833: "longitude_of_center",
}

// paramAliases are alternate spellings seen in the wild for some parameter
// names.
var paramAliases = map[int]string{
	8823: "standard_parallel1",
	8824: "standard_parallel2",
}

// paramBinding binds an EPSG parameter code to the field it should be
// extracted into. Mandatory fields must be seeded with NaN before
// extraction; optional fields must be seeded with their default value.
type paramBinding struct {
	epsg int
	dst  *float64
}

// setParameters extracts projection parameter values from the parse tree
// into the bound fields.
//
// For each parsed parameter, each binding is tried in order. If the
// parameter has an EPSG authority clause, only its code is compared against
// the binding's code; otherwise the parameter name is compared against the
// canonical name and then the aliases of the binding's code. All comparisons
// are case-insensitive. Every parameter is matched against every binding, so
// when several parameters hit the same binding the last one in definition
// order wins.
//
// After the scan, any binding still holding NaN is a missing mandatory
// parameter and is reported with the given SRID.
func setParameters(srid geopb.SRID, proj *wkt.ProjectedCS, bindings []paramBinding) error {
	for i := range proj.Parameters {
		param := &proj.Parameters[i]
		for _, b := range bindings {
			if strings.EqualFold(param.Authority.Name, "EPSG") {
				if strings.EqualFold(param.Authority.Code, strconv.Itoa(b.epsg)) {
					*b.dst = param.Value
				}
			} else if strings.EqualFold(param.Name, paramNames[b.epsg]) {
				*b.dst = param.Value
			} else if alias, ok := paramAliases[b.epsg]; ok && strings.EqualFold(param.Name, alias) {
				*b.dst = param.Value
			}
		}
	}

	for _, b := range bindings {
		if math.IsNaN(*b.dst) {
			return &MissingParameterError{SRID: srid, Name: paramNames[b.epsg], Code: b.epsg}
		}
	}
	return nil
}
