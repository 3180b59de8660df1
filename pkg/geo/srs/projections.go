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
	"sort"

	"github.com/geodb/geodb/pkg/geo/geopb"
	"github.com/geodb/geodb/pkg/geo/srs/wkt"
)

// ProjectionKind identifies the map projection method of a projected system.
// The zero value is ProjectionUnknown.
type ProjectionKind int32

const (
	// ProjectionUnknown is any projection method this package has no
	// parameter table for. Unknown projected systems still carry the full
	// base description (geographic system, linear unit, axes).
	ProjectionUnknown ProjectionKind = iota

	ProjectionPopularVisualisationPseudoMercator   // EPSG method 1024
	ProjectionLambertAzimuthalEqualAreaSpherical   // EPSG method 1027
	ProjectionEquidistantCylindrical               // EPSG method 1028
	ProjectionEquidistantCylindricalSpherical      // EPSG method 1029
	ProjectionKrovakNorthOrientated                // EPSG method 1041
	ProjectionKrovakModified                       // EPSG method 1042
	ProjectionKrovakModifiedNorthOrientated        // EPSG method 1043
	ProjectionLambertConicConformal2SPMichigan     // EPSG method 1051
	ProjectionColombiaUrban                        // EPSG method 1052
	ProjectionLambertConicConformal1SP             // EPSG method 9801
	ProjectionLambertConicConformal2SP             // EPSG method 9802
	ProjectionLambertConicConformal2SPBelgium      // EPSG method 9803
	ProjectionMercatorVariantA                     // EPSG method 9804
	ProjectionMercatorVariantB                     // EPSG method 9805
	ProjectionCassiniSoldner                       // EPSG method 9806
	ProjectionTransverseMercator                   // EPSG method 9807
	ProjectionTransverseMercatorSouthOrientated    // EPSG method 9808
	ProjectionObliqueStereographic                 // EPSG method 9809
	ProjectionPolarStereographicVariantA           // EPSG method 9810
	ProjectionNewZealandMapGrid                    // EPSG method 9811
	ProjectionHotineObliqueMercatorVariantA        // EPSG method 9812
	ProjectionLabordeObliqueMercator               // EPSG method 9813
	ProjectionHotineObliqueMercatorVariantB        // EPSG method 9815
	ProjectionTunisiaMiningGrid                    // EPSG method 9816
	ProjectionLambertConicNearConformal            // EPSG method 9817
	ProjectionAmericanPolyconic                    // EPSG method 9818
	ProjectionKrovak                               // EPSG method 9819
	ProjectionLambertAzimuthalEqualArea            // EPSG method 9820
	ProjectionAlbersEqualArea                      // EPSG method 9822
	ProjectionTransverseMercatorZonedGridSystem    // EPSG method 9824
	ProjectionLambertConicConformalWestOrientated  // EPSG method 9826
	ProjectionBonneSouthOrientated                 // EPSG method 9828
	ProjectionPolarStereographicVariantB           // EPSG method 9829
	ProjectionPolarStereographicVariantC           // EPSG method 9830
	ProjectionGuam                                 // EPSG method 9831
	ProjectionModifiedAzimuthalEquidistant         // EPSG method 9832
	ProjectionHyperbolicCassiniSoldner             // EPSG method 9833
	ProjectionLambertCylindricalEqualAreaSpherical // EPSG method 9834
	ProjectionLambertCylindricalEqualArea          // EPSG method 9835
)

// String implements the fmt.Stringer interface, returning the EPSG name of
// the projection method.
func (k ProjectionKind) String() string {
	if name, ok := projectionKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var projectionKindNames = func() map[ProjectionKind]string {
	m := make(map[ProjectionKind]string, len(projectionMethods))
	for _, method := range projectionMethods {
		m[method.kind] = method.name
	}
	return m
}()

// ProjectionParams is the kind-specific parameter record of a projected
// system. The concrete type is determined by the ProjectionKind.
type ProjectionParams interface {
	projectionParams()
}

// UnknownParams is the empty parameter record of an unknown projection
// method.
type UnknownParams struct{}

func (*UnknownParams) projectionParams() {}

// projectionMethod ties an EPSG coordinate operation method to its kind tag
// and parameter record constructor.
type projectionMethod struct {
	kind      ProjectionKind
	name      string
	newParams func(geopb.SRID, *wkt.ProjectedCS) (ProjectionParams, error)
}

var unknownProjectionMethod = projectionMethod{
	kind: ProjectionUnknown,
	name: "Unknown",
	newParams: func(geopb.SRID, *wkt.ProjectedCS) (ProjectionParams, error) {
		return &UnknownParams{}, nil
	},
}

// projectionMethods is the catalogue of supported projection methods, keyed
// by EPSG coordinate operation method code.
var projectionMethods = map[int]projectionMethod{
	1024: {ProjectionPopularVisualisationPseudoMercator, "Popular Visualisation Pseudo Mercator", newPopularVisualisationPseudoMercatorParams},
	1027: {ProjectionLambertAzimuthalEqualAreaSpherical, "Lambert Azimuthal Equal Area (Spherical)", newLambertAzimuthalEqualAreaSphericalParams},
	1028: {ProjectionEquidistantCylindrical, "Equidistant Cylindrical", newEquidistantCylindricalParams},
	1029: {ProjectionEquidistantCylindricalSpherical, "Equidistant Cylindrical (Spherical)", newEquidistantCylindricalSphericalParams},
	1041: {ProjectionKrovakNorthOrientated, "Krovak (North Orientated)", newKrovakNorthOrientatedParams},
	1042: {ProjectionKrovakModified, "Krovak Modified", newKrovakModifiedParams},
	1043: {ProjectionKrovakModifiedNorthOrientated, "Krovak Modified (North Orientated)", newKrovakModifiedNorthOrientatedParams},
	1051: {ProjectionLambertConicConformal2SPMichigan, "Lambert Conic Conformal (2SP Michigan)", newLambertConicConformal2SPMichiganParams},
	1052: {ProjectionColombiaUrban, "Colombia Urban", newColombiaUrbanParams},
	9801: {ProjectionLambertConicConformal1SP, "Lambert Conic Conformal (1SP)", newLambertConicConformal1SPParams},
	9802: {ProjectionLambertConicConformal2SP, "Lambert Conic Conformal (2SP)", newLambertConicConformal2SPParams},
	9803: {ProjectionLambertConicConformal2SPBelgium, "Lambert Conic Conformal (2SP Belgium)", newLambertConicConformal2SPBelgiumParams},
	9804: {ProjectionMercatorVariantA, "Mercator (variant A)", newMercatorVariantAParams},
	9805: {ProjectionMercatorVariantB, "Mercator (variant B)", newMercatorVariantBParams},
	9806: {ProjectionCassiniSoldner, "Cassini-Soldner", newCassiniSoldnerParams},
	9807: {ProjectionTransverseMercator, "Transverse Mercator", newTransverseMercatorParams},
	9808: {ProjectionTransverseMercatorSouthOrientated, "Transverse Mercator (South Orientated)", newTransverseMercatorSouthOrientatedParams},
	9809: {ProjectionObliqueStereographic, "Oblique Stereographic", newObliqueStereographicParams},
	9810: {ProjectionPolarStereographicVariantA, "Polar Stereographic (variant A)", newPolarStereographicVariantAParams},
	9811: {ProjectionNewZealandMapGrid, "New Zealand Map Grid", newNewZealandMapGridParams},
	9812: {ProjectionHotineObliqueMercatorVariantA, "Hotine Oblique Mercator (variant A)", newHotineObliqueMercatorVariantAParams},
	9813: {ProjectionLabordeObliqueMercator, "Laborde Oblique Mercator", newLabordeObliqueMercatorParams},
	9815: {ProjectionHotineObliqueMercatorVariantB, "Hotine Oblique Mercator (variant B)", newHotineObliqueMercatorVariantBParams},
	9816: {ProjectionTunisiaMiningGrid, "Tunisia Mining Grid", newTunisiaMiningGridParams},
	9817: {ProjectionLambertConicNearConformal, "Lambert Conic Near-Conformal", newLambertConicNearConformalParams},
	9818: {ProjectionAmericanPolyconic, "American Polyconic", newAmericanPolyconicParams},
	9819: {ProjectionKrovak, "Krovak", newKrovakParams},
	9820: {ProjectionLambertAzimuthalEqualArea, "Lambert Azimuthal Equal Area", newLambertAzimuthalEqualAreaParams},
	9822: {ProjectionAlbersEqualArea, "Albers Equal Area", newAlbersEqualAreaParams},
	9824: {ProjectionTransverseMercatorZonedGridSystem, "Transverse Mercator Zoned Grid System", newTransverseMercatorZonedGridSystemParams},
	9826: {ProjectionLambertConicConformalWestOrientated, "Lambert Conic Conformal (West Orientated)", newLambertConicConformalWestOrientatedParams},
	9828: {ProjectionBonneSouthOrientated, "Bonne (South Orientated)", newBonneSouthOrientatedParams},
	9829: {ProjectionPolarStereographicVariantB, "Polar Stereographic (variant B)", newPolarStereographicVariantBParams},
	9830: {ProjectionPolarStereographicVariantC, "Polar Stereographic (variant C)", newPolarStereographicVariantCParams},
	9831: {ProjectionGuam, "Guam Projection", newGuamParams},
	9832: {ProjectionModifiedAzimuthalEquidistant, "Modified Azimuthal Equidistant", newModifiedAzimuthalEquidistantParams},
	9833: {ProjectionHyperbolicCassiniSoldner, "Hyperbolic Cassini-Soldner", newHyperbolicCassiniSoldnerParams},
	9834: {ProjectionLambertCylindricalEqualAreaSpherical, "Lambert Cylindrical Equal Area (Spherical)", newLambertCylindricalEqualAreaSphericalParams},
	9835: {ProjectionLambertCylindricalEqualArea, "Lambert Cylindrical Equal Area", newLambertCylindricalEqualAreaParams},
}

// projectionMethodForCode looks up the projection method for an EPSG
// coordinate operation method code. The lookup is total: code 0 and any
// uncatalogued code resolve to the unknown method.
func projectionMethodForCode(code int) projectionMethod {
	if method, ok := projectionMethods[code]; ok {
		return method
	}
	return unknownProjectionMethod
}

// ProjectionKindForMethodCode returns the projection kind a given EPSG
// coordinate operation method code resolves to.
func ProjectionKindForMethodCode(code int) ProjectionKind {
	return projectionMethodForCode(code).kind
}

// ProjectionMethodInfo describes one entry of the projection method
// catalogue.
type ProjectionMethodInfo struct {
	Code int
	Kind ProjectionKind
	Name string
}

// ProjectionMethods lists the catalogued projection methods in ascending
// EPSG method code order.
func ProjectionMethods() []ProjectionMethodInfo {
	infos := make([]ProjectionMethodInfo, 0, len(projectionMethods))
	for code, method := range projectionMethods {
		infos = append(infos, ProjectionMethodInfo{Code: code, Kind: method.kind, Name: method.name})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })
	return infos
}

// PopularVisualisationPseudoMercatorParams is the parameter record of the
// Popular Visualisation Pseudo Mercator projection.
type PopularVisualisationPseudoMercatorParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*PopularVisualisationPseudoMercatorParams) projectionParams() {}

func newPopularVisualisationPseudoMercatorParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := PopularVisualisationPseudoMercatorParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertAzimuthalEqualAreaSphericalParams is the parameter record of the
// Lambert Azimuthal Equal Area (Spherical) projection.
type LambertAzimuthalEqualAreaSphericalParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*LambertAzimuthalEqualAreaSphericalParams) projectionParams() {}

func newLambertAzimuthalEqualAreaSphericalParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertAzimuthalEqualAreaSphericalParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// EquidistantCylindricalParams is the parameter record of the Equidistant
// Cylindrical projection.
type EquidistantCylindricalParams struct {
	StandardParallel1 float64 // EPSG 8823
	CentralMeridian   float64 // EPSG 8802
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*EquidistantCylindricalParams) projectionParams() {}

func newEquidistantCylindricalParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := EquidistantCylindricalParams{
		StandardParallel1: math.NaN(),
		CentralMeridian:   math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8823, &params.StandardParallel1},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// EquidistantCylindricalSphericalParams is the parameter record of the
// Equidistant Cylindrical (Spherical) projection.
type EquidistantCylindricalSphericalParams struct {
	StandardParallel1 float64 // EPSG 8823
	CentralMeridian   float64 // EPSG 8802
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*EquidistantCylindricalSphericalParams) projectionParams() {}

func newEquidistantCylindricalSphericalParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := EquidistantCylindricalSphericalParams{
		StandardParallel1: math.NaN(),
		CentralMeridian:   math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8823, &params.StandardParallel1},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// KrovakNorthOrientatedParams is the parameter record of the Krovak (North
// Orientated) projection.
type KrovakNorthOrientatedParams struct {
	LatitudeOfCenter        float64 // EPSG 8811
	LongitudeOfCenter       float64 // EPSG 8833
	Azimuth                 float64 // EPSG 1036
	PseudoStandardParallel1 float64 // EPSG 8818
	ScaleFactor             float64 // EPSG 8819
	FalseEasting            float64 // EPSG 8806
	FalseNorthing           float64 // EPSG 8807
}

func (*KrovakNorthOrientatedParams) projectionParams() {}

func newKrovakNorthOrientatedParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := KrovakNorthOrientatedParams{
		LatitudeOfCenter:        math.NaN(),
		LongitudeOfCenter:       math.NaN(),
		Azimuth:                 math.NaN(),
		PseudoStandardParallel1: math.NaN(),
		ScaleFactor:             math.NaN(),
		FalseEasting:            math.NaN(),
		FalseNorthing:           math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8833, &params.LongitudeOfCenter},
		{1036, &params.Azimuth},
		{8818, &params.PseudoStandardParallel1},
		{8819, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// KrovakModifiedParams is the parameter record of the Krovak Modified
// projection.
type KrovakModifiedParams struct {
	LatitudeOfCenter         float64 // EPSG 8811
	LongitudeOfCenter        float64 // EPSG 8833
	Azimuth                  float64 // EPSG 1036
	PseudoStandardParallel1  float64 // EPSG 8818
	ScaleFactor              float64 // EPSG 8819
	FalseEasting             float64 // EPSG 8806
	FalseNorthing            float64 // EPSG 8807
	EvaluationPointOrdinate1 float64 // EPSG 8617
	EvaluationPointOrdinate2 float64 // EPSG 8618
	C1                       float64 // EPSG 1026
	C2                       float64 // EPSG 1027
	C3                       float64 // EPSG 1028
	C4                       float64 // EPSG 1029
	C5                       float64 // EPSG 1030
	C6                       float64 // EPSG 1031
	C7                       float64 // EPSG 1032
	C8                       float64 // EPSG 1033
	C9                       float64 // EPSG 1034
	C10                      float64 // EPSG 1035
}

func (*KrovakModifiedParams) projectionParams() {}

func newKrovakModifiedParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := KrovakModifiedParams{
		LatitudeOfCenter:         math.NaN(),
		LongitudeOfCenter:        math.NaN(),
		Azimuth:                  math.NaN(),
		PseudoStandardParallel1:  math.NaN(),
		ScaleFactor:              math.NaN(),
		FalseEasting:             math.NaN(),
		FalseNorthing:            math.NaN(),
		EvaluationPointOrdinate1: math.NaN(),
		EvaluationPointOrdinate2: math.NaN(),
		C1:                       math.NaN(),
		C2:                       math.NaN(),
		C3:                       math.NaN(),
		C4:                       math.NaN(),
		C5:                       math.NaN(),
		C6:                       math.NaN(),
		C7:                       math.NaN(),
		C8:                       math.NaN(),
		C9:                       math.NaN(),
		C10:                      math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8833, &params.LongitudeOfCenter},
		{1036, &params.Azimuth},
		{8818, &params.PseudoStandardParallel1},
		{8819, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
		{8617, &params.EvaluationPointOrdinate1},
		{8618, &params.EvaluationPointOrdinate2},
		{1026, &params.C1},
		{1027, &params.C2},
		{1028, &params.C3},
		{1029, &params.C4},
		{1030, &params.C5},
		{1031, &params.C6},
		{1032, &params.C7},
		{1033, &params.C8},
		{1034, &params.C9},
		{1035, &params.C10},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// KrovakModifiedNorthOrientatedParams is the parameter record of the Krovak
// Modified (North Orientated) projection.
type KrovakModifiedNorthOrientatedParams struct {
	LatitudeOfCenter         float64 // EPSG 8811
	LongitudeOfCenter        float64 // EPSG 8833
	Azimuth                  float64 // EPSG 1036
	PseudoStandardParallel1  float64 // EPSG 8818
	ScaleFactor              float64 // EPSG 8819
	FalseEasting             float64 // EPSG 8806
	FalseNorthing            float64 // EPSG 8807
	EvaluationPointOrdinate1 float64 // EPSG 8617
	EvaluationPointOrdinate2 float64 // EPSG 8618
	C1                       float64 // EPSG 1026
	C2                       float64 // EPSG 1027
	C3                       float64 // EPSG 1028
	C4                       float64 // EPSG 1029
	C5                       float64 // EPSG 1030
	C6                       float64 // EPSG 1031
	C7                       float64 // EPSG 1032
	C8                       float64 // EPSG 1033
	C9                       float64 // EPSG 1034
	C10                      float64 // EPSG 1035
}

func (*KrovakModifiedNorthOrientatedParams) projectionParams() {}

func newKrovakModifiedNorthOrientatedParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := KrovakModifiedNorthOrientatedParams{
		LatitudeOfCenter:         math.NaN(),
		LongitudeOfCenter:        math.NaN(),
		Azimuth:                  math.NaN(),
		PseudoStandardParallel1:  math.NaN(),
		ScaleFactor:              math.NaN(),
		FalseEasting:             math.NaN(),
		FalseNorthing:            math.NaN(),
		EvaluationPointOrdinate1: math.NaN(),
		EvaluationPointOrdinate2: math.NaN(),
		C1:                       math.NaN(),
		C2:                       math.NaN(),
		C3:                       math.NaN(),
		C4:                       math.NaN(),
		C5:                       math.NaN(),
		C6:                       math.NaN(),
		C7:                       math.NaN(),
		C8:                       math.NaN(),
		C9:                       math.NaN(),
		C10:                      math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8833, &params.LongitudeOfCenter},
		{1036, &params.Azimuth},
		{8818, &params.PseudoStandardParallel1},
		{8819, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
		{8617, &params.EvaluationPointOrdinate1},
		{8618, &params.EvaluationPointOrdinate2},
		{1026, &params.C1},
		{1027, &params.C2},
		{1028, &params.C3},
		{1029, &params.C4},
		{1030, &params.C5},
		{1031, &params.C6},
		{1032, &params.C7},
		{1033, &params.C8},
		{1034, &params.C9},
		{1035, &params.C10},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertConicConformal2SPMichiganParams is the parameter record of the Lambert
// Conic Conformal (2SP Michigan) projection.
type LambertConicConformal2SPMichiganParams struct {
	LatitudeOfOrigin     float64 // EPSG 8821
	CentralMeridian      float64 // EPSG 8822
	StandardParallel1    float64 // EPSG 8823
	StandardParallel2    float64 // EPSG 8824
	FalseEasting         float64 // EPSG 8826
	FalseNorthing        float64 // EPSG 8827
	EllipsoidScaleFactor float64 // EPSG 1038
}

func (*LambertConicConformal2SPMichiganParams) projectionParams() {}

func newLambertConicConformal2SPMichiganParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertConicConformal2SPMichiganParams{
		LatitudeOfOrigin:     math.NaN(),
		CentralMeridian:      math.NaN(),
		StandardParallel1:    math.NaN(),
		StandardParallel2:    math.NaN(),
		FalseEasting:         math.NaN(),
		FalseNorthing:        math.NaN(),
		EllipsoidScaleFactor: math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8821, &params.LatitudeOfOrigin},
		{8822, &params.CentralMeridian},
		{8823, &params.StandardParallel1},
		{8824, &params.StandardParallel2},
		{8826, &params.FalseEasting},
		{8827, &params.FalseNorthing},
		{1038, &params.EllipsoidScaleFactor},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// ColombiaUrbanParams is the parameter record of the Colombia Urban projection.
type ColombiaUrbanParams struct {
	LatitudeOfOrigin              float64 // EPSG 8801
	CentralMeridian               float64 // EPSG 8802
	FalseEasting                  float64 // EPSG 8806
	FalseNorthing                 float64 // EPSG 8807
	ProjectionPlaneHeightAtOrigin float64 // EPSG 1039
}

func (*ColombiaUrbanParams) projectionParams() {}

func newColombiaUrbanParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := ColombiaUrbanParams{
		LatitudeOfOrigin:              math.NaN(),
		CentralMeridian:               math.NaN(),
		FalseEasting:                  math.NaN(),
		FalseNorthing:                 math.NaN(),
		ProjectionPlaneHeightAtOrigin: math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
		{1039, &params.ProjectionPlaneHeightAtOrigin},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertConicConformal1SPParams is the parameter record of the Lambert Conic
// Conformal (1SP) projection.
type LambertConicConformal1SPParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*LambertConicConformal1SPParams) projectionParams() {}

func newLambertConicConformal1SPParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertConicConformal1SPParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertConicConformal2SPParams is the parameter record of the Lambert Conic
// Conformal (2SP) projection.
type LambertConicConformal2SPParams struct {
	LatitudeOfOrigin  float64 // EPSG 8821
	CentralMeridian   float64 // EPSG 8822
	StandardParallel1 float64 // EPSG 8823
	StandardParallel2 float64 // EPSG 8824
	FalseEasting      float64 // EPSG 8826
	FalseNorthing     float64 // EPSG 8827
}

func (*LambertConicConformal2SPParams) projectionParams() {}

func newLambertConicConformal2SPParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertConicConformal2SPParams{
		LatitudeOfOrigin:  math.NaN(),
		CentralMeridian:   math.NaN(),
		StandardParallel1: math.NaN(),
		StandardParallel2: math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8821, &params.LatitudeOfOrigin},
		{8822, &params.CentralMeridian},
		{8823, &params.StandardParallel1},
		{8824, &params.StandardParallel2},
		{8826, &params.FalseEasting},
		{8827, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertConicConformal2SPBelgiumParams is the parameter record of the Lambert
// Conic Conformal (2SP Belgium) projection.
type LambertConicConformal2SPBelgiumParams struct {
	LatitudeOfOrigin  float64 // EPSG 8821
	CentralMeridian   float64 // EPSG 8822
	StandardParallel1 float64 // EPSG 8823
	StandardParallel2 float64 // EPSG 8824
	FalseEasting      float64 // EPSG 8826
	FalseNorthing     float64 // EPSG 8827
}

func (*LambertConicConformal2SPBelgiumParams) projectionParams() {}

func newLambertConicConformal2SPBelgiumParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertConicConformal2SPBelgiumParams{
		LatitudeOfOrigin:  math.NaN(),
		CentralMeridian:   math.NaN(),
		StandardParallel1: math.NaN(),
		StandardParallel2: math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8821, &params.LatitudeOfOrigin},
		{8822, &params.CentralMeridian},
		{8823, &params.StandardParallel1},
		{8824, &params.StandardParallel2},
		{8826, &params.FalseEasting},
		{8827, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// MercatorVariantAParams is the parameter record of the Mercator (variant A)
// projection.
type MercatorVariantAParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*MercatorVariantAParams) projectionParams() {}

func newMercatorVariantAParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := MercatorVariantAParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// MercatorVariantBParams is the parameter record of the Mercator (variant B)
// projection.
type MercatorVariantBParams struct {
	StandardParallel1 float64 // EPSG 8823
	CentralMeridian   float64 // EPSG 8802
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*MercatorVariantBParams) projectionParams() {}

func newMercatorVariantBParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := MercatorVariantBParams{
		StandardParallel1: math.NaN(),
		CentralMeridian:   math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8823, &params.StandardParallel1},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// CassiniSoldnerParams is the parameter record of the Cassini-Soldner
// projection.
type CassiniSoldnerParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*CassiniSoldnerParams) projectionParams() {}

func newCassiniSoldnerParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := CassiniSoldnerParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// TransverseMercatorParams is the parameter record of the Transverse Mercator
// projection.
type TransverseMercatorParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*TransverseMercatorParams) projectionParams() {}

func newTransverseMercatorParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := TransverseMercatorParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// TransverseMercatorSouthOrientatedParams is the parameter record of the
// Transverse Mercator (South Orientated) projection.
type TransverseMercatorSouthOrientatedParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*TransverseMercatorSouthOrientatedParams) projectionParams() {}

func newTransverseMercatorSouthOrientatedParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := TransverseMercatorSouthOrientatedParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// ObliqueStereographicParams is the parameter record of the Oblique
// Stereographic projection.
type ObliqueStereographicParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*ObliqueStereographicParams) projectionParams() {}

func newObliqueStereographicParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := ObliqueStereographicParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// PolarStereographicVariantAParams is the parameter record of the Polar
// Stereographic (variant A) projection.
type PolarStereographicVariantAParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*PolarStereographicVariantAParams) projectionParams() {}

func newPolarStereographicVariantAParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := PolarStereographicVariantAParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// NewZealandMapGridParams is the parameter record of the New Zealand Map Grid
// projection.
type NewZealandMapGridParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*NewZealandMapGridParams) projectionParams() {}

func newNewZealandMapGridParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := NewZealandMapGridParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// HotineObliqueMercatorVariantAParams is the parameter record of the Hotine
// Oblique Mercator (variant A) projection.
type HotineObliqueMercatorVariantAParams struct {
	LatitudeOfCenter   float64 // EPSG 8811
	LongitudeOfCenter  float64 // EPSG 8812
	Azimuth            float64 // EPSG 8813
	RectifiedGridAngle float64 // EPSG 8814
	ScaleFactor        float64 // EPSG 8815
	FalseEasting       float64 // EPSG 8806
	FalseNorthing      float64 // EPSG 8807
}

func (*HotineObliqueMercatorVariantAParams) projectionParams() {}

func newHotineObliqueMercatorVariantAParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := HotineObliqueMercatorVariantAParams{
		LatitudeOfCenter:   math.NaN(),
		LongitudeOfCenter:  math.NaN(),
		Azimuth:            math.NaN(),
		RectifiedGridAngle: math.NaN(),
		ScaleFactor:        math.NaN(),
		FalseEasting:       math.NaN(),
		FalseNorthing:      math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8812, &params.LongitudeOfCenter},
		{8813, &params.Azimuth},
		{8814, &params.RectifiedGridAngle},
		{8815, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LabordeObliqueMercatorParams is the parameter record of the Laborde Oblique
// Mercator projection.
type LabordeObliqueMercatorParams struct {
	LatitudeOfCenter  float64 // EPSG 8811
	LongitudeOfCenter float64 // EPSG 8812
	Azimuth           float64 // EPSG 8813
	ScaleFactor       float64 // EPSG 8815
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*LabordeObliqueMercatorParams) projectionParams() {}

func newLabordeObliqueMercatorParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LabordeObliqueMercatorParams{
		LatitudeOfCenter:  math.NaN(),
		LongitudeOfCenter: math.NaN(),
		Azimuth:           math.NaN(),
		ScaleFactor:       math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8812, &params.LongitudeOfCenter},
		{8813, &params.Azimuth},
		{8815, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// HotineObliqueMercatorVariantBParams is the parameter record of the Hotine
// Oblique Mercator (variant B) projection.
type HotineObliqueMercatorVariantBParams struct {
	LatitudeOfCenter   float64 // EPSG 8811
	LongitudeOfCenter  float64 // EPSG 8812
	Azimuth            float64 // EPSG 8813
	RectifiedGridAngle float64 // EPSG 8814
	ScaleFactor        float64 // EPSG 8815
	FalseEasting       float64 // EPSG 8816
	FalseNorthing      float64 // EPSG 8817
}

func (*HotineObliqueMercatorVariantBParams) projectionParams() {}

func newHotineObliqueMercatorVariantBParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := HotineObliqueMercatorVariantBParams{
		LatitudeOfCenter:   math.NaN(),
		LongitudeOfCenter:  math.NaN(),
		Azimuth:            math.NaN(),
		RectifiedGridAngle: math.NaN(),
		ScaleFactor:        math.NaN(),
		FalseEasting:       math.NaN(),
		FalseNorthing:      math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8812, &params.LongitudeOfCenter},
		{8813, &params.Azimuth},
		{8814, &params.RectifiedGridAngle},
		{8815, &params.ScaleFactor},
		{8816, &params.FalseEasting},
		{8817, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// TunisiaMiningGridParams is the parameter record of the Tunisia Mining Grid
// projection.
type TunisiaMiningGridParams struct {
	LatitudeOfOrigin float64 // EPSG 8821
	CentralMeridian  float64 // EPSG 8822
	FalseEasting     float64 // EPSG 8826
	FalseNorthing    float64 // EPSG 8827
}

func (*TunisiaMiningGridParams) projectionParams() {}

func newTunisiaMiningGridParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := TunisiaMiningGridParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8821, &params.LatitudeOfOrigin},
		{8822, &params.CentralMeridian},
		{8826, &params.FalseEasting},
		{8827, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertConicNearConformalParams is the parameter record of the Lambert Conic
// Near-Conformal projection.
type LambertConicNearConformalParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*LambertConicNearConformalParams) projectionParams() {}

func newLambertConicNearConformalParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertConicNearConformalParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// AmericanPolyconicParams is the parameter record of the American Polyconic
// projection.
type AmericanPolyconicParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*AmericanPolyconicParams) projectionParams() {}

func newAmericanPolyconicParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := AmericanPolyconicParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// KrovakParams is the parameter record of the Krovak projection.
type KrovakParams struct {
	LatitudeOfCenter        float64 // EPSG 8811
	LongitudeOfCenter       float64 // EPSG 8833
	Azimuth                 float64 // EPSG 1036
	PseudoStandardParallel1 float64 // EPSG 8818
	ScaleFactor             float64 // EPSG 8819
	FalseEasting            float64 // EPSG 8806
	FalseNorthing           float64 // EPSG 8807
}

func (*KrovakParams) projectionParams() {}

func newKrovakParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := KrovakParams{
		LatitudeOfCenter:        math.NaN(),
		LongitudeOfCenter:       math.NaN(),
		Azimuth:                 math.NaN(),
		PseudoStandardParallel1: math.NaN(),
		ScaleFactor:             math.NaN(),
		FalseEasting:            math.NaN(),
		FalseNorthing:           math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8811, &params.LatitudeOfCenter},
		{8833, &params.LongitudeOfCenter},
		{1036, &params.Azimuth},
		{8818, &params.PseudoStandardParallel1},
		{8819, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertAzimuthalEqualAreaParams is the parameter record of the Lambert
// Azimuthal Equal Area projection.
type LambertAzimuthalEqualAreaParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*LambertAzimuthalEqualAreaParams) projectionParams() {}

func newLambertAzimuthalEqualAreaParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertAzimuthalEqualAreaParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// AlbersEqualAreaParams is the parameter record of the Albers Equal Area
// projection.
type AlbersEqualAreaParams struct {
	LatitudeOfOrigin  float64 // EPSG 8821
	CentralMeridian   float64 // EPSG 8822
	StandardParallel1 float64 // EPSG 8823
	StandardParallel2 float64 // EPSG 8824
	FalseEasting      float64 // EPSG 8826
	FalseNorthing     float64 // EPSG 8827
}

func (*AlbersEqualAreaParams) projectionParams() {}

func newAlbersEqualAreaParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := AlbersEqualAreaParams{
		LatitudeOfOrigin:  math.NaN(),
		CentralMeridian:   math.NaN(),
		StandardParallel1: math.NaN(),
		StandardParallel2: math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8821, &params.LatitudeOfOrigin},
		{8822, &params.CentralMeridian},
		{8823, &params.StandardParallel1},
		{8824, &params.StandardParallel2},
		{8826, &params.FalseEasting},
		{8827, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// TransverseMercatorZonedGridSystemParams is the parameter record of the
// Transverse Mercator Zoned Grid System projection.
type TransverseMercatorZonedGridSystemParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	InitialLongitude float64 // EPSG 8830
	ZoneWidth        float64 // EPSG 8831
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*TransverseMercatorZonedGridSystemParams) projectionParams() {}

func newTransverseMercatorZonedGridSystemParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := TransverseMercatorZonedGridSystemParams{
		LatitudeOfOrigin: math.NaN(),
		InitialLongitude: math.NaN(),
		ZoneWidth:        math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8830, &params.InitialLongitude},
		{8831, &params.ZoneWidth},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertConicConformalWestOrientatedParams is the parameter record of the
// Lambert Conic Conformal (West Orientated) projection.
type LambertConicConformalWestOrientatedParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	ScaleFactor      float64 // EPSG 8805
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*LambertConicConformalWestOrientatedParams) projectionParams() {}

func newLambertConicConformalWestOrientatedParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertConicConformalWestOrientatedParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		ScaleFactor:      math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8805, &params.ScaleFactor},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// BonneSouthOrientatedParams is the parameter record of the Bonne (South
// Orientated) projection.
type BonneSouthOrientatedParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*BonneSouthOrientatedParams) projectionParams() {}

func newBonneSouthOrientatedParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := BonneSouthOrientatedParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// PolarStereographicVariantBParams is the parameter record of the Polar
// Stereographic (variant B) projection.
type PolarStereographicVariantBParams struct {
	StandardParallel  float64 // EPSG 8832
	LongitudeOfCenter float64 // EPSG 8833
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*PolarStereographicVariantBParams) projectionParams() {}

func newPolarStereographicVariantBParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := PolarStereographicVariantBParams{
		StandardParallel:  math.NaN(),
		LongitudeOfCenter: math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8832, &params.StandardParallel},
		{8833, &params.LongitudeOfCenter},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// PolarStereographicVariantCParams is the parameter record of the Polar
// Stereographic (variant C) projection.
type PolarStereographicVariantCParams struct {
	StandardParallel  float64 // EPSG 8832
	LongitudeOfCenter float64 // EPSG 8833
	FalseEasting      float64 // EPSG 8826
	FalseNorthing     float64 // EPSG 8827
}

func (*PolarStereographicVariantCParams) projectionParams() {}

func newPolarStereographicVariantCParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := PolarStereographicVariantCParams{
		StandardParallel:  math.NaN(),
		LongitudeOfCenter: math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8832, &params.StandardParallel},
		{8833, &params.LongitudeOfCenter},
		{8826, &params.FalseEasting},
		{8827, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// GuamParams is the parameter record of the Guam Projection projection.
type GuamParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*GuamParams) projectionParams() {}

func newGuamParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := GuamParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// ModifiedAzimuthalEquidistantParams is the parameter record of the Modified
// Azimuthal Equidistant projection.
type ModifiedAzimuthalEquidistantParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*ModifiedAzimuthalEquidistantParams) projectionParams() {}

func newModifiedAzimuthalEquidistantParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := ModifiedAzimuthalEquidistantParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// HyperbolicCassiniSoldnerParams is the parameter record of the Hyperbolic
// Cassini-Soldner projection.
type HyperbolicCassiniSoldnerParams struct {
	LatitudeOfOrigin float64 // EPSG 8801
	CentralMeridian  float64 // EPSG 8802
	FalseEasting     float64 // EPSG 8806
	FalseNorthing    float64 // EPSG 8807
}

func (*HyperbolicCassiniSoldnerParams) projectionParams() {}

func newHyperbolicCassiniSoldnerParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := HyperbolicCassiniSoldnerParams{
		LatitudeOfOrigin: math.NaN(),
		CentralMeridian:  math.NaN(),
		FalseEasting:     math.NaN(),
		FalseNorthing:    math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8801, &params.LatitudeOfOrigin},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertCylindricalEqualAreaSphericalParams is the parameter record of the
// Lambert Cylindrical Equal Area (Spherical) projection.
type LambertCylindricalEqualAreaSphericalParams struct {
	StandardParallel1 float64 // EPSG 8823
	CentralMeridian   float64 // EPSG 8802
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*LambertCylindricalEqualAreaSphericalParams) projectionParams() {}

func newLambertCylindricalEqualAreaSphericalParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertCylindricalEqualAreaSphericalParams{
		StandardParallel1: math.NaN(),
		CentralMeridian:   math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8823, &params.StandardParallel1},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}

// LambertCylindricalEqualAreaParams is the parameter record of the Lambert
// Cylindrical Equal Area projection.
type LambertCylindricalEqualAreaParams struct {
	StandardParallel1 float64 // EPSG 8823
	CentralMeridian   float64 // EPSG 8802
	FalseEasting      float64 // EPSG 8806
	FalseNorthing     float64 // EPSG 8807
}

func (*LambertCylindricalEqualAreaParams) projectionParams() {}

func newLambertCylindricalEqualAreaParams(srid geopb.SRID, p *wkt.ProjectedCS) (ProjectionParams, error) {
	params := LambertCylindricalEqualAreaParams{
		StandardParallel1: math.NaN(),
		CentralMeridian:   math.NaN(),
		FalseEasting:      math.NaN(),
		FalseNorthing:     math.NaN(),
	}
	if err := setParameters(srid, p, []paramBinding{
		{8823, &params.StandardParallel1},
		{8802, &params.CentralMeridian},
		{8806, &params.FalseEasting},
		{8807, &params.FalseNorthing},
	}); err != nil {
		return nil, err
	}
	return &params, nil
}
