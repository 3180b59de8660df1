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

	"github.com/geodb/geodb/pkg/geo/geopb"
)

// Parse parses a WKT spatial reference system definition into a parse tree.
// The returned CoordinateSystem is either a *GeographicCS or a *ProjectedCS.
func Parse(wktText string) (CoordinateSystem, error) {
	p := &parser{lex: makeWktLex(wktText)}

	kw := p.keyword()
	var cs CoordinateSystem
	switch kw {
	case "GEOGCS":
		g := p.parseGeographicCS()
		cs = &g
	case "PROJCS":
		proj := p.parseProjectedCS()
		cs = &proj
	default:
		p.setErr("expected GEOGCS or PROJCS", "")
	}

	if tok := p.lexTok(); p.err == nil && tok.typ != tokenEOF {
		p.setErr("unexpected trailing input", "")
	}
	if p.err != nil {
		return nil, p.err
	}
	return cs, nil
}

// parser is a recursive-descent parser over the token stream. The first
// error encountered sticks; all productions are no-ops once err is set.
type parser struct {
	lex *wktLex
	err error
}

func (p *parser) lexTok() token {
	if p.err != nil {
		return token{}
	}
	tok, err := p.lex.lex()
	if err != nil {
		p.err = err
	}
	return tok
}

func (p *parser) peekTok() token {
	if p.err != nil {
		return token{}
	}
	tok, err := p.lex.peekTok()
	if err != nil {
		p.err = err
	}
	return tok
}

func (p *parser) setErr(problem string, hint string) {
	if p.err == nil {
		p.err = p.lex.makeParseError(token{pos: p.lex.lastPos}, problem, hint)
	}
}

func (p *parser) expect(typ tokenType) token {
	tok := p.lexTok()
	if p.err == nil && tok.typ != typ {
		p.setErr(fmt.Sprintf("expected %s", typ), "")
	}
	return tok
}

// keyword consumes a keyword token and returns its uppercased spelling.
func (p *parser) keyword() string {
	return p.expect(tokenKeyword).str
}

// expectKeyword consumes a keyword token that must match kw.
func (p *parser) expectKeyword(kw string) {
	tok := p.expect(tokenKeyword)
	if p.err == nil && tok.str != kw {
		p.setErr(fmt.Sprintf("expected %s", kw), "")
	}
}

func (p *parser) str() string {
	return p.expect(tokenString).str
}

func (p *parser) number() float64 {
	return p.expect(tokenNumber).num
}

func (p *parser) comma() {
	p.expect(tokenComma)
}

// atComma reports whether the next token is a comma, without consuming it.
func (p *parser) atComma() bool {
	return p.peekTok().typ == tokenComma
}

// open consumes an opening delimiter and returns it so that close can verify
// the closing delimiter matches.
func (p *parser) open() rune {
	return p.expect(tokenOpen).delim
}

func (p *parser) close(open rune) {
	tok := p.expect(tokenClose)
	if p.err != nil {
		return
	}
	want := ']'
	if open == '(' {
		want = ')'
	}
	if tok.delim != want {
		p.setErr(fmt.Sprintf("mismatched delimiter, expected %c", want), "")
	}
}

// parseAuthority parses the body of an AUTHORITY clause. The keyword has
// already been consumed.
func (p *parser) parseAuthority() Authority {
	var a Authority
	open := p.open()
	a.Name = p.str()
	p.comma()
	a.Code = p.str()
	p.close(open)
	if p.err == nil {
		a.Valid = true
	}
	return a
}

func (p *parser) parseSpheroid() Spheroid {
	var s Spheroid
	open := p.open()
	s.Name = p.str()
	p.comma()
	s.SemiMajorAxis = p.number()
	p.comma()
	s.InverseFlattening = p.number()
	if p.atComma() {
		p.comma()
		p.expectKeyword("AUTHORITY")
		s.Authority = p.parseAuthority()
	}
	p.close(open)
	return s
}

// parseToWGS84 parses the body of a TOWGS84 clause. Between three and seven
// values are accepted; unspecified trailing values stay zero.
func (p *parser) parseToWGS84() ToWGS84 {
	var t ToWGS84
	open := p.open()
	dst := []*float64{&t.Dx, &t.Dy, &t.Dz, &t.Ex, &t.Ey, &t.Ez, &t.Ppm}
	*dst[0] = p.number()
	p.comma()
	*dst[1] = p.number()
	p.comma()
	*dst[2] = p.number()
	for i := 3; i < len(dst) && p.atComma(); i++ {
		p.comma()
		*dst[i] = p.number()
	}
	p.close(open)
	if p.err == nil {
		t.Valid = true
	}
	return t
}

func (p *parser) parseDatum() Datum {
	var d Datum
	open := p.open()
	d.Name = p.str()
	p.comma()
	p.expectKeyword("SPHEROID")
	d.Spheroid = p.parseSpheroid()
	if p.atComma() {
		p.comma()
		kw := p.keyword()
		if kw == "TOWGS84" {
			d.ToWGS84 = p.parseToWGS84()
			if p.atComma() {
				p.comma()
				kw = p.keyword()
			} else {
				kw = ""
			}
		}
		switch kw {
		case "":
		case "AUTHORITY":
			d.Authority = p.parseAuthority()
		default:
			p.setErr("expected TOWGS84 or AUTHORITY", "")
		}
	}
	p.close(open)
	return d
}

func (p *parser) parsePrimeMeridian() PrimeMeridian {
	var pm PrimeMeridian
	open := p.open()
	pm.Name = p.str()
	p.comma()
	pm.Longitude = p.number()
	if p.atComma() {
		p.comma()
		p.expectKeyword("AUTHORITY")
		pm.Authority = p.parseAuthority()
	}
	p.close(open)
	return pm
}

func (p *parser) parseUnit() Unit {
	var u Unit
	open := p.open()
	u.Name = p.str()
	p.comma()
	u.ConversionFactor = p.number()
	if p.atComma() {
		p.comma()
		p.expectKeyword("AUTHORITY")
		u.Authority = p.parseAuthority()
	}
	p.close(open)
	return u
}

func (p *parser) parseAxisDirection() geopb.AxisDirection {
	kw := p.keyword()
	if p.err != nil {
		return geopb.AxisDirectionUnspecified
	}
	switch kw {
	case "NORTH":
		return geopb.AxisDirectionNorth
	case "SOUTH":
		return geopb.AxisDirectionSouth
	case "EAST":
		return geopb.AxisDirectionEast
	case "WEST":
		return geopb.AxisDirectionWest
	case "UP":
		return geopb.AxisDirectionUp
	case "DOWN":
		return geopb.AxisDirectionDown
	case "OTHER":
		return geopb.AxisDirectionOther
	default:
		p.setErr("expected axis direction", "one of NORTH, SOUTH, EAST, WEST, UP, DOWN, OTHER")
		return geopb.AxisDirectionUnspecified
	}
}

func (p *parser) parseAxis() Axis {
	var a Axis
	open := p.open()
	a.Name = p.str()
	p.comma()
	a.Direction = p.parseAxisDirection()
	p.close(open)
	return a
}

// parseAxisPair parses the second axis of a twin AXIS clause and assembles
// the pair. The first AXIS keyword has already been consumed; the grammar
// requires the second clause to follow.
func (p *parser) parseAxisPair() AxisPair {
	var pair AxisPair
	pair.X = p.parseAxis()
	p.comma()
	p.expectKeyword("AXIS")
	pair.Y = p.parseAxis()
	if p.err == nil {
		pair.Valid = true
	}
	return pair
}

// parseGeographicCS parses the body of a GEOGCS clause. The keyword has
// already been consumed.
func (p *parser) parseGeographicCS() GeographicCS {
	var g GeographicCS
	open := p.open()
	g.Name = p.str()
	p.comma()
	p.expectKeyword("DATUM")
	g.Datum = p.parseDatum()
	p.comma()
	p.expectKeyword("PRIMEM")
	g.PrimeMeridian = p.parsePrimeMeridian()
	p.comma()
	p.expectKeyword("UNIT")
	g.AngularUnit = p.parseUnit()
	if p.atComma() {
		p.comma()
		kw := p.keyword()
		if kw == "AXIS" {
			g.Axes = p.parseAxisPair()
			if p.atComma() {
				p.comma()
				kw = p.keyword()
			} else {
				kw = ""
			}
		}
		switch kw {
		case "":
		case "AUTHORITY":
			g.Authority = p.parseAuthority()
		default:
			p.setErr("expected AXIS or AUTHORITY", "")
		}
	}
	p.close(open)
	return g
}

func (p *parser) parseProjection() Projection {
	var proj Projection
	open := p.open()
	proj.Name = p.str()
	if p.atComma() {
		p.comma()
		p.expectKeyword("AUTHORITY")
		proj.Authority = p.parseAuthority()
	}
	p.close(open)
	return proj
}

func (p *parser) parseParameter() Parameter {
	var param Parameter
	open := p.open()
	param.Name = p.str()
	p.comma()
	param.Value = p.number()
	if p.atComma() {
		p.comma()
		p.expectKeyword("AUTHORITY")
		param.Authority = p.parseAuthority()
	}
	p.close(open)
	return param
}

// parseProjectedCS parses the body of a PROJCS clause. The keyword has
// already been consumed.
func (p *parser) parseProjectedCS() ProjectedCS {
	var proj ProjectedCS
	open := p.open()
	proj.Name = p.str()
	p.comma()
	p.expectKeyword("GEOGCS")
	proj.GeographicCS = p.parseGeographicCS()
	p.comma()
	p.expectKeyword("PROJECTION")
	proj.Projection = p.parseProjection()

	// Zero or more PARAMETER clauses, then the mandatory linear UNIT.
	for {
		p.comma()
		kw := p.keyword()
		if p.err != nil {
			return proj
		}
		switch kw {
		case "PARAMETER":
			proj.Parameters = append(proj.Parameters, p.parseParameter())
		case "UNIT":
			proj.LinearUnit = p.parseUnit()
		default:
			p.setErr("expected PARAMETER or UNIT", "")
			return proj
		}
		if kw == "UNIT" {
			break
		}
	}

	if p.atComma() {
		p.comma()
		kw := p.keyword()
		if kw == "AXIS" {
			proj.Axes = p.parseAxisPair()
			if p.atComma() {
				p.comma()
				kw = p.keyword()
			} else {
				kw = ""
			}
		}
		switch kw {
		case "":
		case "AUTHORITY":
			proj.Authority = p.parseAuthority()
		default:
			p.setErr("expected AXIS or AUTHORITY", "")
		}
	}
	p.close(open)
	return proj
}
