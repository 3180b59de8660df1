// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package srs builds validated spatial reference system descriptions from
// WKT definitions. The resulting objects are what the rest of the database
// consults when interpreting geometry column coordinates for a given SRID.
//
// ParseWKT is the entry point. It returns either a *GeographicSRS or a
// *ProjectedSRS; projected systems additionally carry a projection kind and
// a kind-specific parameter record extracted against the EPSG parameter
// tables in this package. Returned objects are immutable.
package srs

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/geodb/geodb/pkg/geo/srs/wkt"
)

// SpatialReference is a validated spatial reference system description:
// either a *GeographicSRS or a *ProjectedSRS.
type SpatialReference interface {
	isSpatialReference()
}

func (*GeographicSRS) isSpatialReference() {}
func (*ProjectedSRS) isSpatialReference()  {}

// ToWGS84 is a 7-parameter Helmert transformation relating the datum of a
// geographic system to WGS 84.
type ToWGS84 struct {
	Dx  float64
	Dy  float64
	Dz  float64
	Ex  float64
	Ey  float64
	Ez  float64
	Ppm float64
}

// AxisPair is the directions of the two coordinate system axes. Definitions
// either specify both axes or neither, so a pair is never half-set.
type AxisPair struct {
	X geopb.AxisDirection
	Y geopb.AxisDirection
}

// GeographicSRS is a geodetic latitude/longitude system over an ellipsoid
// and datum.
type GeographicSRS struct {
	// SemiMajorAxis is the ellipsoid semi-major axis in metres.
	SemiMajorAxis float64
	// InverseFlattening is the inverse flattening of the ellipsoid. Zero
	// means a sphere.
	InverseFlattening float64
	// ToWGS84 is the datum shift to WGS 84, or nil if the definition did not
	// specify one.
	ToWGS84 *ToWGS84
	// PrimeMeridian is the prime meridian longitude relative to Greenwich,
	// in the system's angular unit.
	PrimeMeridian float64
	// AngularUnit converts the system's angular unit to radians.
	AngularUnit float64
	// Axes is the axis direction pair, or nil if the definition did not
	// specify axes.
	Axes *AxisPair
}

// ProjectedSRS is a geographic system mapped to planar coordinates by a
// projection method.
type ProjectedSRS struct {
	// Geographic is the underlying geographic system.
	Geographic GeographicSRS
	// Kind identifies the projection method.
	Kind ProjectionKind
	// Params is the parameter record for Kind. It is never nil; unknown
	// projections carry an empty *UnknownParams.
	Params ProjectionParams
	// LinearUnit converts the system's linear unit to metres.
	LinearUnit float64
	// Axes is the axis direction pair, or nil if the definition did not
	// specify axes.
	Axes *AxisPair
}

// ToRadians converts an angle in the system's unit to radians.
func (g *GeographicSRS) ToRadians(d float64) float64 {
	return d * g.AngularUnit
}

// FromRadians converts an angle in radians to the system's unit.
func (g *GeographicSRS) FromRadians(d float64) float64 {
	return d / g.AngularUnit
}

// ToNormalizedLongitude converts a longitude in the system's unit and prime
// meridian to a radian longitude relative to Greenwich.
func (g *GeographicSRS) ToNormalizedLongitude(d float64) float64 {
	return g.ToRadians(d + g.PrimeMeridian)
}

// FromNormalizedLongitude converts a radian longitude relative to Greenwich
// to the system's unit and prime meridian.
func (g *GeographicSRS) FromNormalizedLongitude(d float64) float64 {
	return g.FromRadians(d) - g.PrimeMeridian
}

// ToMeters converts a length in the system's linear unit to metres.
func (p *ProjectedSRS) ToMeters(d float64) float64 {
	return d * p.LinearUnit
}

// FromMeters converts a length in metres to the system's linear unit.
func (p *ProjectedSRS) FromMeters(d float64) float64 {
	return d / p.LinearUnit
}

// newGeographicSRS builds a geographic system from its parse tree node. The
// grammar guarantees the mandatory clauses are present and that optional
// clauses are all-or-nothing, so failures here are assertion failures.
func newGeographicSRS(g *wkt.GeographicCS) (*GeographicSRS, error) {
	out := &GeographicSRS{
		SemiMajorAxis:     g.Datum.Spheroid.SemiMajorAxis,
		InverseFlattening: g.Datum.Spheroid.InverseFlattening,
		PrimeMeridian:     g.PrimeMeridian.Longitude,
		AngularUnit:       g.AngularUnit.ConversionFactor,
	}

	if math.IsNaN(out.SemiMajorAxis) || math.IsNaN(out.InverseFlattening) {
		return nil, errors.AssertionFailedf("ellipsoid parameters missing from parsed geographic CS")
	}
	if math.IsNaN(out.PrimeMeridian) || math.IsNaN(out.AngularUnit) {
		return nil, errors.AssertionFailedf("prime meridian or angular unit missing from parsed geographic CS")
	}

	if g.Datum.ToWGS84.Valid {
		out.ToWGS84 = &ToWGS84{
			Dx:  g.Datum.ToWGS84.Dx,
			Dy:  g.Datum.ToWGS84.Dy,
			Dz:  g.Datum.ToWGS84.Dz,
			Ex:  g.Datum.ToWGS84.Ex,
			Ey:  g.Datum.ToWGS84.Ey,
			Ez:  g.Datum.ToWGS84.Ez,
			Ppm: g.Datum.ToWGS84.Ppm,
		}
	}

	if g.Axes.Valid {
		if g.Axes.X.Direction == geopb.AxisDirectionUnspecified ||
			g.Axes.Y.Direction == geopb.AxisDirectionUnspecified {
			return nil, errors.AssertionFailedf("half-set axis pair in parsed geographic CS")
		}
		out.Axes = &AxisPair{X: g.Axes.X.Direction, Y: g.Axes.Y.Direction}
	}

	return out, nil
}

// newProjectedSRS builds a projected system from its parse tree node: the
// shared base (nested geographic system, linear unit, axes) plus the
// parameter record of the given projection method.
func newProjectedSRS(
	srid geopb.SRID, method projectionMethod, p *wkt.ProjectedCS,
) (*ProjectedSRS, error) {
	geog, err := newGeographicSRS(&p.GeographicCS)
	if err != nil {
		return nil, err
	}

	out := &ProjectedSRS{
		Geographic: *geog,
		Kind:       method.kind,
		LinearUnit: p.LinearUnit.ConversionFactor,
	}
	if math.IsNaN(out.LinearUnit) {
		return nil, errors.AssertionFailedf("linear unit missing from parsed projected CS")
	}

	if p.Axes.Valid {
		if p.Axes.X.Direction == geopb.AxisDirectionUnspecified ||
			p.Axes.Y.Direction == geopb.AxisDirectionUnspecified {
			return nil, errors.AssertionFailedf("half-set axis pair in parsed projected CS")
		}
		out.Axes = &AxisPair{X: p.Axes.X.Direction, Y: p.Axes.Y.Direction}
	}

	params, err := method.newParams(srid, p)
	if err != nil {
		return nil, err
	}
	out.Params = params

	return out, nil
}
