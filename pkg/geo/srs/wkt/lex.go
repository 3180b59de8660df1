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
	"unicode"
	"unicode/utf8"
)

// LexError is an error that occurs during lexing.
type LexError struct {
	expectedTokType string
	pos             int
	str             string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: invalid %s at pos %d\n%s\n%s^",
		e.expectedTokType, e.pos, e.str, strings.Repeat(" ", e.pos))
}

// ParseError is an error that occurs during parsing, which happens after
// lexing.
type ParseError struct {
	problem string
	pos     int
	str     string
	hint    string
}

func (e *ParseError) Error() string {
	err := fmt.Sprintf("%s at pos %d\n%s\n%s^", e.problem, e.pos, e.str, strings.Repeat(" ", e.pos))
	if e.hint != "" {
		err += fmt.Sprintf("\nHINT: %s", e.hint)
	}
	return err
}

// Constant returned by the lexer at the end of the input.
const eof = rune(0)

type tokenType int

const (
	tokenEOF tokenType = iota
	// tokenKeyword is an unquoted, all-letter word such as PROJCS or NORTH.
	// The lexer uppercases it.
	tokenKeyword
	// tokenString is a double-quoted string. Doubled quotes escape a quote.
	tokenString
	// tokenNumber is a signed decimal number with optional exponent.
	tokenNumber
	// tokenOpen and tokenClose are the clause delimiters. WKT allows both
	// brackets and parentheses; the delim field records which was used.
	tokenOpen
	tokenClose
	tokenComma
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenKeyword:
		return "keyword"
	case tokenString:
		return "quoted string"
	case tokenNumber:
		return "number"
	case tokenOpen:
		return "opening bracket"
	case tokenClose:
		return "closing bracket"
	case tokenComma:
		return "comma"
	default:
		panic(fmt.Sprintf("unknown token type %d", int(t)))
	}
}

type token struct {
	typ   tokenType
	str   string
	num   float64
	delim rune
	pos   int
}

// wktLex scans runes, not bytes, so that quoted names may carry non-ASCII
// characters. Positions are rune offsets to keep the error caret accurate.
type wktLex struct {
	line    string
	offset  int // byte offset into line
	pos     int // rune offset into line
	lastPos int // rune offset of the current token
	peeked  *token
}

func makeWktLex(line string) *wktLex {
	return &wktLex{line: line}
}

// lex scans the next token from the input.
func (l *wktLex) lex() (token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}

	// Skip leading spaces.
	l.trimLeft()
	l.lastPos = l.pos

	switch c := l.peek(); {
	case c == eof:
		return token{typ: tokenEOF, pos: l.lastPos}, nil
	case c == '[' || c == '(':
		l.next()
		return token{typ: tokenOpen, delim: c, pos: l.lastPos}, nil
	case c == ']' || c == ')':
		l.next()
		return token{typ: tokenClose, delim: c, pos: l.lastPos}, nil
	case c == ',':
		l.next()
		return token{typ: tokenComma, pos: l.lastPos}, nil
	case c == '"':
		return l.str()
	case unicode.IsLetter(c):
		return l.keyword(), nil
	case isNumRune(c):
		return l.num()
	default:
		l.next()
		return token{}, &LexError{expectedTokType: "character", pos: l.lastPos, str: l.line}
	}
}

// peekTok returns the next token without consuming it.
func (l *wktLex) peekTok() (token, error) {
	if l.peeked == nil {
		tok, err := l.lex()
		if err != nil {
			return tok, err
		}
		l.peeked = &tok
	}
	return *l.peeked, nil
}

// keyword lexes an all-letter word, uppercased.
func (l *wktLex) keyword() token {
	var b strings.Builder
	for {
		c := l.peek()
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		b.WriteRune(unicode.ToUpper(l.next()))
	}
	return token{typ: tokenKeyword, str: b.String(), pos: l.lastPos}
}

// str lexes a double-quoted string. A doubled quote inside the string is an
// escaped quote.
func (l *wktLex) str() (token, error) {
	var b strings.Builder
	l.next() // opening quote
	for {
		c := l.next()
		switch c {
		case eof:
			return token{}, &LexError{expectedTokType: "quoted string", pos: l.lastPos, str: l.line}
		case '"':
			if l.peek() == '"' {
				l.next()
				b.WriteRune('"')
				continue
			}
			return token{typ: tokenString, str: b.String(), pos: l.lastPos}, nil
		default:
			b.WriteRune(c)
		}
	}
}

func isNumRune(r rune) bool {
	switch r {
	case '-', '+', '.':
		return true
	default:
		return unicode.IsDigit(r)
	}
}

// num lexes a number.
func (l *wktLex) num() (token, error) {
	var b strings.Builder
	for {
		c := l.peek()
		if !isNumRune(c) && c != 'e' && c != 'E' {
			break
		}
		// An exponent may be followed by a sign, which isNumRune covers.
		b.WriteRune(l.next())
	}

	fl, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return token{}, &LexError{expectedTokType: "number", pos: l.lastPos, str: l.line}
	}
	return token{typ: tokenNumber, num: fl, pos: l.lastPos}, nil
}

func (l *wktLex) peek() rune {
	if l.offset == len(l.line) {
		return eof
	}
	c, _ := utf8.DecodeRuneInString(l.line[l.offset:])
	return c
}

func (l *wktLex) next() rune {
	if l.offset == len(l.line) {
		return eof
	}
	c, size := utf8.DecodeRuneInString(l.line[l.offset:])
	l.offset += size
	l.pos++
	return c
}

func (l *wktLex) trimLeft() {
	for {
		c := l.peek()
		if c == eof || !unicode.IsSpace(c) {
			break
		}
		l.next()
	}
}

func (l *wktLex) makeParseError(tok token, problem string, hint string) error {
	return &ParseError{
		problem: "syntax error: " + problem,
		pos:     tok.pos,
		str:     l.line,
		hint:    hint,
	}
}
