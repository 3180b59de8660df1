// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package wkt parses Well-Known-Text spatial reference system definitions
// (OGC 01-009 WKT 1) into a tagged parse tree. The tree mirrors the textual
// structure; interpreting it into a validated SRS model is the job of the
// parent srs package.
package wkt

import "github.com/geodb/geodb/pkg/geo/geopb"

// CoordinateSystem is the result of parsing a WKT definition: either a
// *GeographicCS or a *ProjectedCS.
type CoordinateSystem interface {
	coordinateSystem()
}

func (*GeographicCS) coordinateSystem() {}
func (*ProjectedCS) coordinateSystem()  {}

// Authority is an optional AUTHORITY clause identifying the registry that
// defines the enclosing element.
type Authority struct {
	Valid bool
	Name  string
	Code  string
}

// Spheroid is a SPHEROID clause describing a reference ellipsoid.
type Spheroid struct {
	Name              string
	SemiMajorAxis     float64
	InverseFlattening float64
	Authority         Authority
}

// ToWGS84 is an optional TOWGS84 clause holding a 7-parameter Helmert
// transformation to WGS 84. Clauses may specify between three and seven
// values; unspecified trailing values are zero. Valid is false if the clause
// is absent.
type ToWGS84 struct {
	Valid bool
	Dx    float64
	Dy    float64
	Dz    float64
	Ex    float64
	Ey    float64
	Ez    float64
	Ppm   float64
}

// Datum is a DATUM clause.
type Datum struct {
	Name      string
	Spheroid  Spheroid
	ToWGS84   ToWGS84
	Authority Authority
}

// PrimeMeridian is a PRIMEM clause. The longitude is relative to Greenwich,
// in the unit of the enclosing coordinate system.
type PrimeMeridian struct {
	Name      string
	Longitude float64
	Authority Authority
}

// Unit is a UNIT clause. The conversion factor is to radians for angular
// units and to metres for linear units.
type Unit struct {
	Name             string
	ConversionFactor float64
	Authority        Authority
}

// Axis is an AXIS clause.
type Axis struct {
	Name      string
	Direction geopb.AxisDirection
}

// AxisPair holds the two AXIS clauses of a coordinate system. The grammar
// requires either both or neither; Valid is false if they are absent.
type AxisPair struct {
	Valid bool
	X     Axis
	Y     Axis
}

// Projection is a PROJECTION clause naming a map projection method.
type Projection struct {
	Name      string
	Authority Authority
}

// Parameter is a PARAMETER clause holding one named projection parameter.
type Parameter struct {
	Name      string
	Value     float64
	Authority Authority
}

// GeographicCS is a GEOGCS clause: a geodetic latitude/longitude coordinate
// system.
type GeographicCS struct {
	Name          string
	Datum         Datum
	PrimeMeridian PrimeMeridian
	AngularUnit   Unit
	Axes          AxisPair
	Authority     Authority
}

// ProjectedCS is a PROJCS clause: a geographic coordinate system mapped to
// the plane by a projection method and its parameters.
type ProjectedCS struct {
	Name         string
	GeographicCS GeographicCS
	Projection   Projection
	Parameters   []Parameter
	LinearUnit   Unit
	Axes         AxisPair
	Authority    Authority
}
