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
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestParseDataDriven runs the parse tree cases in testdata/parse. Each
// "parse" directive holds a WKT definition and expects either a rendering
// of the resulting parse tree or the parse error.
func TestParseDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/parse", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "parse":
			cs, err := Parse(d.Input)
			if err != nil {
				return "error: " + err.Error()
			}
			var sb strings.Builder
			switch cs := cs.(type) {
			case *GeographicCS:
				renderGeographicCS(&sb, "", cs)
			case *ProjectedCS:
				renderProjectedCS(&sb, cs)
			}
			return sb.String()
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		}
	})
}

func renderGeographicCS(sb *strings.Builder, indent string, g *GeographicCS) {
	fmt.Fprintf(sb, "%sgeogcs %q%s\n", indent, g.Name, renderAuthority(g.Authority))
	fmt.Fprintf(sb, "%s  datum %q%s\n", indent, g.Datum.Name, renderAuthority(g.Datum.Authority))
	fmt.Fprintf(sb, "%s    spheroid %q a=%s 1/f=%s%s\n", indent, g.Datum.Spheroid.Name,
		renderNum(g.Datum.Spheroid.SemiMajorAxis), renderNum(g.Datum.Spheroid.InverseFlattening),
		renderAuthority(g.Datum.Spheroid.Authority))
	if g.Datum.ToWGS84.Valid {
		tw := g.Datum.ToWGS84
		fmt.Fprintf(sb, "%s    towgs84 %s,%s,%s,%s,%s,%s,%s\n", indent,
			renderNum(tw.Dx), renderNum(tw.Dy), renderNum(tw.Dz),
			renderNum(tw.Ex), renderNum(tw.Ey), renderNum(tw.Ez), renderNum(tw.Ppm))
	}
	fmt.Fprintf(sb, "%s  primem %q %s%s\n", indent, g.PrimeMeridian.Name,
		renderNum(g.PrimeMeridian.Longitude), renderAuthority(g.PrimeMeridian.Authority))
	fmt.Fprintf(sb, "%s  unit %q %s%s\n", indent, g.AngularUnit.Name,
		renderNum(g.AngularUnit.ConversionFactor), renderAuthority(g.AngularUnit.Authority))
	if g.Axes.Valid {
		fmt.Fprintf(sb, "%s  axes %q %s / %q %s\n", indent,
			g.Axes.X.Name, g.Axes.X.Direction, g.Axes.Y.Name, g.Axes.Y.Direction)
	}
}

func renderProjectedCS(sb *strings.Builder, p *ProjectedCS) {
	fmt.Fprintf(sb, "projcs %q%s\n", p.Name, renderAuthority(p.Authority))
	renderGeographicCS(sb, "  ", &p.GeographicCS)
	fmt.Fprintf(sb, "  projection %q%s\n", p.Projection.Name, renderAuthority(p.Projection.Authority))
	for _, param := range p.Parameters {
		fmt.Fprintf(sb, "  parameter %q %s%s\n", param.Name,
			renderNum(param.Value), renderAuthority(param.Authority))
	}
	fmt.Fprintf(sb, "  unit %q %s%s\n", p.LinearUnit.Name,
		renderNum(p.LinearUnit.ConversionFactor), renderAuthority(p.LinearUnit.Authority))
	if p.Axes.Valid {
		fmt.Fprintf(sb, "  axes %q %s / %q %s\n",
			p.Axes.X.Name, p.Axes.X.Direction, p.Axes.Y.Name, p.Axes.Y.Direction)
	}
}

func renderAuthority(a Authority) string {
	if !a.Valid {
		return ""
	}
	return fmt.Sprintf(" authority=%s:%s", a.Name, a.Code)
}

func renderNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
