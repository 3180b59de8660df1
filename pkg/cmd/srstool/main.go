// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// srstool is a debugging tool for spatial reference system definitions. It
// parses WKT definitions the same way the database does and dumps the
// resulting description, and it can list the projection method catalogue.
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/geodb/geodb/pkg/geo/srs"
)

var sridFlag int32

var rootCmd = &cobra.Command{
	Use:           "srstool",
	Short:         "inspect spatial reference system definitions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var parseCmd = &cobra.Command{
	Use:   "parse <wkt>",
	Short: "parse a WKT definition and dump the resulting description",
	Long: `Parse a WKT spatial reference system definition and dump the resulting
description. Pass "-" to read the definition from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wktText := args[0]
		if wktText == "-" {
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			wktText = string(in)
		}

		sr, err := srs.ParseWKT(geopb.SRID(sridFlag), geopb.WKT(wktText))
		if err != nil {
			return err
		}
		dump(cmd.OutOrStdout(), sr)
		return nil
	},
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "list the projection method catalogue",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"EPSG method", "projection"})
		for _, info := range srs.ProjectionMethods() {
			table.Append([]string{strconv.Itoa(info.Code), info.Name})
		}
		table.Render()
	},
}

func dump(w io.Writer, sr srs.SpatialReference) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"field", "value"})

	switch sr := sr.(type) {
	case *srs.GeographicSRS:
		table.Append([]string{"type", "geographic"})
		appendGeographic(table, sr, "")
	case *srs.ProjectedSRS:
		table.Append([]string{"type", "projected"})
		table.Append([]string{"projection", sr.Kind.String()})
		appendGeographic(table, &sr.Geographic, "geogcs.")
		table.Append([]string{"linear_unit", formatFloat(sr.LinearUnit)})
		if sr.Axes != nil {
			table.Append([]string{"axes", fmt.Sprintf("%s, %s", sr.Axes.X, sr.Axes.Y)})
		}
		appendParams(table, sr.Params)
	}
	table.Render()
}

func appendGeographic(table *tablewriter.Table, g *srs.GeographicSRS, prefix string) {
	table.Append([]string{prefix + "semi_major_axis", formatFloat(g.SemiMajorAxis)})
	table.Append([]string{prefix + "inverse_flattening", formatFloat(g.InverseFlattening)})
	if g.ToWGS84 != nil {
		table.Append([]string{prefix + "towgs84", fmt.Sprintf(
			"%g, %g, %g, %g, %g, %g, %g",
			g.ToWGS84.Dx, g.ToWGS84.Dy, g.ToWGS84.Dz,
			g.ToWGS84.Ex, g.ToWGS84.Ey, g.ToWGS84.Ez, g.ToWGS84.Ppm,
		)})
	}
	table.Append([]string{prefix + "prime_meridian", formatFloat(g.PrimeMeridian)})
	table.Append([]string{prefix + "angular_unit", formatFloat(g.AngularUnit)})
	if g.Axes != nil {
		table.Append([]string{prefix + "axes", fmt.Sprintf("%s, %s", g.Axes.X, g.Axes.Y)})
	}
}

// appendParams walks the parameter record with reflection. Records are flat
// structs of float64 fields, so this stays simple.
func appendParams(table *tablewriter.Table, params srs.ProjectionParams) {
	v := reflect.ValueOf(params).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		table.Append([]string{t.Field(i).Name, formatFloat(v.Field(i).Float())})
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func registerFlags(flags *pflag.FlagSet) {
	flags.Int32VarP(&sridFlag, "srid", "s", int32(geopb.UnknownSRID), "SRID used in error messages")
}

func main() {
	registerFlags(parseCmd.Flags())
	rootCmd.AddCommand(parseCmd, methodsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "srstool: %v\n", err)
		os.Exit(1)
	}
}
