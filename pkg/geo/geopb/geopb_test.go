// Copyright 2025 The GeoDB Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package geopb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSRIDConstants(t *testing.T) {
	require.Equal(t, SRID(0), UnknownSRID)
	require.Equal(t, SRID(4326), DefaultGeographySRID)
}

func TestAxisDirectionString(t *testing.T) {
	testCases := []struct {
		direction AxisDirection
		expected  string
	}{
		{AxisDirectionUnspecified, "UNSPECIFIED"},
		{AxisDirectionNorth, "NORTH"},
		{AxisDirectionSouth, "SOUTH"},
		{AxisDirectionEast, "EAST"},
		{AxisDirectionWest, "WEST"},
		{AxisDirectionUp, "UP"},
		{AxisDirectionDown, "DOWN"},
		{AxisDirectionOther, "OTHER"},
		{AxisDirection(42), "UNSPECIFIED"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, tc.direction.String())
	}
}
