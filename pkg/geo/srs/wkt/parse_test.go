// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package wkt

import (
	"strings"
	"testing"

	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/stretchr/testify/require"
)

func TestParseGeographicCS(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected GeographicCS
	}{
		{
			desc:  "minimal",
			input: `GEOGCS["simple",DATUM["d",SPHEROID["s",6378137,298.25]],PRIMEM["Greenwich",0],UNIT["degree",0.5]]`,
			expected: GeographicCS{
				Name: "simple",
				Datum: Datum{
					Name:     "d",
					Spheroid: Spheroid{Name: "s", SemiMajorAxis: 6378137, InverseFlattening: 298.25},
				},
				PrimeMeridian: PrimeMeridian{Name: "Greenwich"},
				AngularUnit:   Unit{Name: "degree", ConversionFactor: 0.5},
			},
		},
		{
			desc: "all optional clauses",
			input: `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563,` +
				`AUTHORITY["EPSG","7030"]],TOWGS84[1,2,3,4,5,6,7],AUTHORITY["EPSG","6326"]],` +
				`PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.5,AUTHORITY["EPSG","9122"]],` +
				`AXIS["Lat",NORTH],AXIS["Lon",EAST],AUTHORITY["EPSG","4326"]]`,
			expected: GeographicCS{
				Name: "WGS 84",
				Datum: Datum{
					Name: "WGS_1984",
					Spheroid: Spheroid{
						Name:              "WGS 84",
						SemiMajorAxis:     6378137,
						InverseFlattening: 298.257223563,
						Authority:         Authority{Valid: true, Name: "EPSG", Code: "7030"},
					},
					ToWGS84:   ToWGS84{Valid: true, Dx: 1, Dy: 2, Dz: 3, Ex: 4, Ey: 5, Ez: 6, Ppm: 7},
					Authority: Authority{Valid: true, Name: "EPSG", Code: "6326"},
				},
				PrimeMeridian: PrimeMeridian{
					Name:      "Greenwich",
					Authority: Authority{Valid: true, Name: "EPSG", Code: "8901"},
				},
				AngularUnit: Unit{
					Name:             "degree",
					ConversionFactor: 0.5,
					Authority:        Authority{Valid: true, Name: "EPSG", Code: "9122"},
				},
				Axes: AxisPair{
					Valid: true,
					X:     Axis{Name: "Lat", Direction: geopb.AxisDirectionNorth},
					Y:     Axis{Name: "Lon", Direction: geopb.AxisDirectionEast},
				},
				Authority: Authority{Valid: true, Name: "EPSG", Code: "4326"},
			},
		},
		{
			desc:  "short TOWGS84 defaults trailing values to zero",
			input: `GEOGCS["g",DATUM["d",SPHEROID["s",1,0],TOWGS84[10,20,30]],PRIMEM["p",0],UNIT["u",1]]`,
			expected: GeographicCS{
				Name: "g",
				Datum: Datum{
					Name:     "d",
					Spheroid: Spheroid{Name: "s", SemiMajorAxis: 1},
					ToWGS84:  ToWGS84{Valid: true, Dx: 10, Dy: 20, Dz: 30},
				},
				PrimeMeridian: PrimeMeridian{Name: "p"},
				AngularUnit:   Unit{Name: "u", ConversionFactor: 1},
			},
		},
		{
			desc:  "parentheses and lowercase keywords",
			input: ` geogcs ( "g" , datum ( "d" , spheroid ( "s" , 1e3 , 0 ) ) , primem ( "p" , -10.5 ) , unit ( "u" , 1 ) ) `,
			expected: GeographicCS{
				Name: "g",
				Datum: Datum{
					Name:     "d",
					Spheroid: Spheroid{Name: "s", SemiMajorAxis: 1000},
				},
				PrimeMeridian: PrimeMeridian{Name: "p", Longitude: -10.5},
				AngularUnit:   Unit{Name: "u", ConversionFactor: 1},
			},
		},
		{
			desc:  "doubled quote escapes",
			input: `GEOGCS["the ""one""",DATUM["d",SPHEROID["s",1,0]],PRIMEM["p",0],UNIT["u",1]]`,
			expected: GeographicCS{
				Name: `the "one"`,
				Datum: Datum{
					Name:     "d",
					Spheroid: Spheroid{Name: "s", SemiMajorAxis: 1},
				},
				PrimeMeridian: PrimeMeridian{Name: "p"},
				AngularUnit:   Unit{Name: "u", ConversionFactor: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cs, err := Parse(tc.input)
			require.NoError(t, err)
			g, ok := cs.(*GeographicCS)
			require.True(t, ok)
			require.Equal(t, tc.expected, *g)
		})
	}
}

func TestParseProjectedCS(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected ProjectedCS
	}{
		{
			desc: "no parameters",
			input: `PROJCS["p",GEOGCS["g",DATUM["d",SPHEROID["s",1,0]],PRIMEM["pm",0],UNIT["au",1]],` +
				`PROJECTION["mystery"],UNIT["metre",1]]`,
			expected: ProjectedCS{
				Name: "p",
				GeographicCS: GeographicCS{
					Name: "g",
					Datum: Datum{
						Name:     "d",
						Spheroid: Spheroid{Name: "s", SemiMajorAxis: 1},
					},
					PrimeMeridian: PrimeMeridian{Name: "pm"},
					AngularUnit:   Unit{Name: "au", ConversionFactor: 1},
				},
				Projection: Projection{Name: "mystery"},
				LinearUnit: Unit{Name: "metre", ConversionFactor: 1},
			},
		},
		{
			desc: "parameters and optional clauses",
			input: `PROJCS["UTM 32N",GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],` +
				`PRIMEM["Greenwich",0],UNIT["degree",0.5]],PROJECTION["Transverse_Mercator",AUTHORITY["EPSG","9807"]],` +
				`PARAMETER["latitude_of_origin",0],PARAMETER["central_meridian",9,AUTHORITY["EPSG","8802"]],` +
				`UNIT["metre",1,AUTHORITY["EPSG","9001"]],AXIS["Easting",EAST],AXIS["Northing",NORTH],` +
				`AUTHORITY["EPSG","32632"]]`,
			expected: ProjectedCS{
				Name: "UTM 32N",
				GeographicCS: GeographicCS{
					Name: "WGS 84",
					Datum: Datum{
						Name:     "WGS_1984",
						Spheroid: Spheroid{Name: "WGS 84", SemiMajorAxis: 6378137, InverseFlattening: 298.257223563},
					},
					PrimeMeridian: PrimeMeridian{Name: "Greenwich"},
					AngularUnit:   Unit{Name: "degree", ConversionFactor: 0.5},
				},
				Projection: Projection{
					Name:      "Transverse_Mercator",
					Authority: Authority{Valid: true, Name: "EPSG", Code: "9807"},
				},
				Parameters: []Parameter{
					{Name: "latitude_of_origin"},
					{
						Name:      "central_meridian",
						Value:     9,
						Authority: Authority{Valid: true, Name: "EPSG", Code: "8802"},
					},
				},
				LinearUnit: Unit{
					Name:             "metre",
					ConversionFactor: 1,
					Authority:        Authority{Valid: true, Name: "EPSG", Code: "9001"},
				},
				Axes: AxisPair{
					Valid: true,
					X:     Axis{Name: "Easting", Direction: geopb.AxisDirectionEast},
					Y:     Axis{Name: "Northing", Direction: geopb.AxisDirectionNorth},
				},
				Authority: Authority{Valid: true, Name: "EPSG", Code: "32632"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cs, err := Parse(tc.input)
			require.NoError(t, err)
			p, ok := cs.(*ProjectedCS)
			require.True(t, ok)
			require.Equal(t, tc.expected, *p)
		})
	}
}

func TestParseNonASCIINames(t *testing.T) {
	t.Run("multibyte runes in quoted strings", func(t *testing.T) {
		cs, err := Parse(`GEOGCS["Křovák",DATUM["Jednotné trigonometrické sítě katastrální",SPHEROID["Bessel 1841",6377397.155,299.1528128]],PRIMEM["Greenwich",0],UNIT["degree",0.5]]`)
		require.NoError(t, err)
		g, ok := cs.(*GeographicCS)
		require.True(t, ok)
		require.Equal(t, "Křovák", g.Name)
		require.Equal(t, "Jednotné trigonometrické sítě katastrální", g.Datum.Name)
	})

	t.Run("error positions count runes", func(t *testing.T) {
		// "Křovák" holds two 2-byte runes; the caret must still point at the
		// offending character.
		input := `GEOGCS["Křovák",;]`
		_, err := Parse(input)
		require.Error(t, err)
		require.EqualError(t, err,
			"lex error: invalid character at pos 16\n"+input+"\n"+strings.Repeat(" ", 16)+"^")
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		desc        string
		input       string
		expectedErr string
	}{
		{
			desc:        "empty input",
			input:       ``,
			expectedErr: "expected keyword",
		},
		{
			desc:        "unknown top-level keyword",
			input:       `FOO["x"]`,
			expectedErr: "expected GEOGCS or PROJCS",
		},
		{
			desc:        "mismatched delimiters",
			input:       `GEOGCS("x",DATUM["d",SPHEROID["s",1,0]],PRIMEM["g",0],UNIT["u",1]]`,
			expectedErr: "mismatched delimiter, expected )",
		},
		{
			desc:        "trailing input",
			input:       `GEOGCS["x",DATUM["d",SPHEROID["s",1,0]],PRIMEM["g",0],UNIT["u",1]] extra`,
			expectedErr: "unexpected trailing input",
		},
		{
			desc:        "missing DATUM",
			input:       `GEOGCS["x",PRIMEM["g",0],UNIT["u",1]]`,
			expectedErr: "expected DATUM",
		},
		{
			desc:        "unquoted name",
			input:       `GEOGCS[x,DATUM["d",SPHEROID["s",1,0]],PRIMEM["g",0],UNIT["u",1]]`,
			expectedErr: "expected quoted string",
		},
		{
			desc:        "unterminated string",
			input:       `GEOGCS["x`,
			expectedErr: "invalid quoted string",
		},
		{
			desc:        "invalid character",
			input:       `GEOGCS[;]`,
			expectedErr: "invalid character",
		},
		{
			desc:        "malformed number",
			input:       `GEOGCS["x",DATUM["d",SPHEROID["s",1.2.3,0]],PRIMEM["g",0],UNIT["u",1]]`,
			expectedErr: "invalid number",
		},
		{
			desc:        "axes must come in pairs",
			input:       `GEOGCS["x",DATUM["d",SPHEROID["s",1,0]],PRIMEM["g",0],UNIT["u",1],AXIS["Lat",NORTH]]`,
			expectedErr: "expected comma",
		},
		{
			desc:        "bad axis direction",
			input:       `GEOGCS["x",DATUM["d",SPHEROID["s",1,0]],PRIMEM["g",0],UNIT["u",1],AXIS["Lat",SIDEWAYS],AXIS["Lon",EAST]]`,
			expectedErr: "expected axis direction",
		},
		{
			desc: "missing linear unit",
			input: `PROJCS["p",GEOGCS["g",DATUM["d",SPHEROID["s",1,0]],PRIMEM["pm",0],UNIT["au",1]],` +
				`PROJECTION["m"],PARAMETER["x",1]]`,
			expectedErr: "expected comma",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cs, err := Parse(tc.input)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectedErr)
			require.Nil(t, cs)
		})
	}
}
