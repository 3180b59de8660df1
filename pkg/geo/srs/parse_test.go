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
	"testing"

	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const testGeographicWKT = `GEOGCS["WGS 84",DATUM["World Geodetic System 1984",` +
	`SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],TOWGS84[1,2,3],` +
	`AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],` +
	`UNIT["degree",0.017453292519943278,AUTHORITY["EPSG","9122"]],` +
	`AXIS["Lat",NORTH],AXIS["Lon",EAST],AUTHORITY["EPSG","4326"]]`

// testProjectedWKT builds a UTM zone 32N definition around the given
// PROJECTION and PARAMETER clauses.
func testProjectedWKT(projection string, parameters string) geopb.WKT {
	return geopb.WKT(`PROJCS["WGS 84 / UTM zone 32N",GEOGCS["WGS 84",` +
		`DATUM["World Geodetic System 1984",SPHEROID["WGS 84",6378137,298.257223563]],` +
		`PRIMEM["Greenwich",0],UNIT["degree",0.017453292519943278]],` +
		projection + `,` + parameters + `,UNIT["metre",1,AUTHORITY["EPSG","9001"]],` +
		`AXIS["E",EAST],AXIS["N",NORTH],AUTHORITY["EPSG","32632"]]`)
}

const testTransverseMercatorProjection = `PROJECTION["Transverse_Mercator",AUTHORITY["EPSG","9807"]]`

const testUTM32NParameters = `PARAMETER["latitude_of_origin",0],PARAMETER["central_meridian",9],` +
	`PARAMETER["scale_factor",0.9996],PARAMETER["false_easting",500000],PARAMETER["false_northing",0]`

func TestParseWKTGeographic(t *testing.T) {
	sr, err := ParseWKT(4326, testGeographicWKT)
	require.NoError(t, err)

	expected := &GeographicSRS{
		SemiMajorAxis:     6378137,
		InverseFlattening: 298.257223563,
		ToWGS84:           &ToWGS84{Dx: 1, Dy: 2, Dz: 3},
		PrimeMeridian:     0,
		AngularUnit:       0.017453292519943278,
		Axes:              &AxisPair{X: geopb.AxisDirectionNorth, Y: geopb.AxisDirectionEast},
	}
	require.Empty(t, cmp.Diff(expected, sr))
}

func TestParseWKTProjected(t *testing.T) {
	sr, err := ParseWKT(32632, testProjectedWKT(testTransverseMercatorProjection, testUTM32NParameters))
	require.NoError(t, err)

	expected := &ProjectedSRS{
		Geographic: GeographicSRS{
			SemiMajorAxis:     6378137,
			InverseFlattening: 298.257223563,
			AngularUnit:       0.017453292519943278,
		},
		Kind: ProjectionTransverseMercator,
		Params: &TransverseMercatorParams{
			LatitudeOfOrigin: 0,
			CentralMeridian:  9,
			ScaleFactor:      0.9996,
			FalseEasting:     500000,
			FalseNorthing:    0,
		},
		LinearUnit: 1,
		Axes:       &AxisPair{X: geopb.AxisDirectionEast, Y: geopb.AxisDirectionNorth},
	}
	require.Empty(t, cmp.Diff(expected, sr))
}

func TestParseWKTUnknownProjection(t *testing.T) {
	testCases := []struct {
		desc       string
		projection string
	}{
		{
			desc:       "no authority clause",
			projection: `PROJECTION["Transverse_Mercator"]`,
		},
		{
			desc:       "non-EPSG authority",
			projection: `PROJECTION["Transverse_Mercator",AUTHORITY["ESRI","9807"]]`,
		},
		{
			desc:       "non-numeric code",
			projection: `PROJECTION["Transverse_Mercator",AUTHORITY["EPSG","ABC"]]`,
		},
		{
			desc:       "uncatalogued code",
			projection: `PROJECTION["Transverse_Mercator",AUTHORITY["EPSG","9999"]]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			sr, err := ParseWKT(32632, testProjectedWKT(tc.projection, testUTM32NParameters))
			require.NoError(t, err)

			// The projection is unknown but the base of the projected system
			// is still fully populated.
			proj, ok := sr.(*ProjectedSRS)
			require.True(t, ok)
			require.Equal(t, ProjectionUnknown, proj.Kind)
			require.Equal(t, &UnknownParams{}, proj.Params)
			require.Equal(t, 6378137.0, proj.Geographic.SemiMajorAxis)
			require.Equal(t, 1.0, proj.LinearUnit)
			require.Equal(t, &AxisPair{X: geopb.AxisDirectionEast, Y: geopb.AxisDirectionNorth}, proj.Axes)
		})
	}
}

func TestParseWKTDuplicateParameterLastWins(t *testing.T) {
	parameters := testUTM32NParameters + `,PARAMETER["central_meridian",15]`
	sr, err := ParseWKT(32632, testProjectedWKT(testTransverseMercatorProjection, parameters))
	require.NoError(t, err)

	proj, ok := sr.(*ProjectedSRS)
	require.True(t, ok)
	params, ok := proj.Params.(*TransverseMercatorParams)
	require.True(t, ok)
	require.Equal(t, 15.0, params.CentralMeridian)
}

func TestParseWKTMissingParameter(t *testing.T) {
	// All UTM 32N parameters except false_northing.
	parameters := `PARAMETER["latitude_of_origin",0],PARAMETER["central_meridian",9],` +
		`PARAMETER["scale_factor",0.9996],PARAMETER["false_easting",500000]`
	sr, err := ParseWKT(32632, testProjectedWKT(testTransverseMercatorProjection, parameters))
	require.Error(t, err)
	require.Nil(t, sr)

	var missingErr *MissingParameterError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, geopb.SRID(32632), missingErr.SRID)
	require.Equal(t, "false_northing", missingErr.Name)
	require.Equal(t, 8807, missingErr.Code)
}

func TestParseWKTInvalid(t *testing.T) {
	testCases := []struct {
		desc string
		wkt  geopb.WKT
	}{
		{desc: "empty definition", wkt: ``},
		{desc: "not WKT at all", wkt: `SELECT 1`},
		{desc: "truncated definition", wkt: `GEOGCS["WGS 84"`},
		{
			desc: "valid prefix with trailing garbage",
			wkt:  geopb.WKT(testGeographicWKT + `!`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			sr, err := ParseWKT(4396, tc.wkt)
			require.Error(t, err)
			require.Nil(t, sr)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, geopb.SRID(4396), parseErr.SRID)
			require.Contains(t, err.Error(), "can't parse the spatial reference system definition of SRID 4396")
		})
	}
}

func TestGeographicSRSConversions(t *testing.T) {
	g := &GeographicSRS{PrimeMeridian: 3, AngularUnit: 0.5}
	require.Equal(t, 2.0, g.ToRadians(4))
	require.Equal(t, 4.0, g.FromRadians(2))
	require.Equal(t, 2.0, g.ToNormalizedLongitude(1))
	require.Equal(t, 1.0, g.FromNormalizedLongitude(2))

	p := &ProjectedSRS{LinearUnit: 1000}
	require.Equal(t, 3000.0, p.ToMeters(3))
	require.Equal(t, 3.0, p.FromMeters(3000))
}
