// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package geopb contains plain types shared by the spatial packages.
package geopb

// SRID is a Spatial Reference System Identifier. It identifies a row of the
// spatial reference system catalog and is carried through parsing purely for
// error reporting.
type SRID int32

// UnknownSRID is the SRID of an unspecified spatial reference system.
const UnknownSRID = SRID(0)

// DefaultGeographySRID is the SRID of the default geography system (WGS 84).
const DefaultGeographySRID = SRID(4326)

// WKT is the Well-Known-Text form of a spatial reference system definition.
type WKT string

// AxisDirection is the direction a coordinate system axis points in, as
// declared by a WKT AXIS clause.
type AxisDirection int32

const (
	// AxisDirectionUnspecified means no AXIS clause was given.
	AxisDirectionUnspecified AxisDirection = iota
	// AxisDirectionNorth is the NORTH axis direction.
	AxisDirectionNorth
	// AxisDirectionSouth is the SOUTH axis direction.
	AxisDirectionSouth
	// AxisDirectionEast is the EAST axis direction.
	AxisDirectionEast
	// AxisDirectionWest is the WEST axis direction.
	AxisDirectionWest
	// AxisDirectionUp is the UP axis direction.
	AxisDirectionUp
	// AxisDirectionDown is the DOWN axis direction.
	AxisDirectionDown
	// AxisDirectionOther is the OTHER axis direction.
	AxisDirectionOther
)

// String implements the fmt.Stringer interface.
func (d AxisDirection) String() string {
	switch d {
	case AxisDirectionNorth:
		return "NORTH"
	case AxisDirectionSouth:
		return "SOUTH"
	case AxisDirectionEast:
		return "EAST"
	case AxisDirectionWest:
		return "WEST"
	case AxisDirectionUp:
		return "UP"
	case AxisDirectionDown:
		return "DOWN"
	case AxisDirectionOther:
		return "OTHER"
	default:
		return "UNSPECIFIED"
	}
}
