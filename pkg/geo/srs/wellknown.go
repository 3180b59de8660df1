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

import "github.com/geodb/geodb/pkg/geo/geopb"

// wellKnownDefinitions are the definitions of the spatial reference systems
// databases preload into their spatial reference system catalog.
var wellKnownDefinitions = map[geopb.SRID]geopb.WKT{
	4326: `GEOGCS["WGS 84",DATUM["World Geodetic System 1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.017453292519943278,AUTHORITY["EPSG","9122"]],AXIS["Lat",NORTH],AXIS["Lon",EAST],AUTHORITY["EPSG","4326"]]`,
	3857: `PROJCS["WGS 84 / Pseudo-Mercator",GEOGCS["WGS 84",DATUM["World Geodetic System 1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.017453292519943278,AUTHORITY["EPSG","9122"]],AXIS["Lat",NORTH],AXIS["Lon",EAST],AUTHORITY["EPSG","4326"]],PROJECTION["Popular Visualisation Pseudo Mercator",AUTHORITY["EPSG","1024"]],PARAMETER["Latitude of natural origin",0,AUTHORITY["EPSG","8801"]],PARAMETER["Longitude of natural origin",0,AUTHORITY["EPSG","8802"]],PARAMETER["False easting",0,AUTHORITY["EPSG","8806"]],PARAMETER["False northing",0,AUTHORITY["EPSG","8807"]],UNIT["metre",1,AUTHORITY["EPSG","9001"]],AXIS["X",EAST],AXIS["Y",NORTH],AUTHORITY["EPSG","3857"]]`,
}

// wellKnownSystems holds the parsed form of wellKnownDefinitions. It is
// built once at package initialization and never mutated, so it is safe for
// unsynchronized concurrent reads.
var wellKnownSystems = func() map[geopb.SRID]SpatialReference {
	m := make(map[geopb.SRID]SpatialReference, len(wellKnownDefinitions))
	for srid, def := range wellKnownDefinitions {
		sr, err := ParseWKT(srid, def)
		if err != nil {
			panic(err)
		}
		m[srid] = sr
	}
	return m
}()

// WellKnown returns the spatial reference system for a well-known SRID, if
// there is one. The returned value is shared and must not be modified.
func WellKnown(srid geopb.SRID) (SpatialReference, bool) {
	sr, ok := wellKnownSystems[srid]
	return sr, ok
}
