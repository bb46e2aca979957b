// Copyright 2026 The letguard Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package lexer turns source text into a token stream with 1-based
// line/column spans. Comments and whitespace are consumed, not emitted.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/letguard/letguard/internal/ast"
)

// Error is a lexical error with its source location.
type Error struct {
	Loc ast.Location
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// Lexer scans one source file.
type Lexer struct {
	input string
	pos   int // byte offset of the current rune
	ch    rune
	width int // byte width of the current rune
	line  int
	col   int
}

// New creates a lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, col: 0}
	l.readChar()

	return l
}

// Tokens scans the whole input and returns all tokens followed by a final
// EOF token.
func Tokens(input string) ([]Token, error) {
	l := New(input)

	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}

	l.pos += l.width
	if l.pos >= len(l.input) {
		l.ch = 0
		l.width = 0
		l.col++

		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.width = w
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.pos+l.width >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos+l.width:])

	return r
}

func (l *Lexer) loc() ast.Location {
	return ast.Location{Row: l.line, Column: l.col}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return Token{}, err
	}

	start := l.loc()

	switch {
	case l.ch == 0:
		return l.token(EOF, "", start), nil

	case isLetter(l.ch):
		return l.lexIdent(start), nil

	case unicode.IsDigit(l.ch):
		return l.lexNumber(start), nil

	case l.ch == '"':
		return l.lexString(start)

	case l.ch == '\'':
		return l.lexChar(start)

	case l.ch == '_':
		l.readChar()
		return l.token(Wildcard, "_", start), nil

	case l.ch == '(':
		l.readChar()
		return l.token(LParen, "(", start), nil

	case l.ch == ')':
		l.readChar()
		return l.token(RParen, ")", start), nil

	case l.ch == '[':
		l.readChar()
		return l.token(LBracket, "[", start), nil

	case l.ch == ']':
		l.readChar()
		return l.token(RBracket, "]", start), nil

	case l.ch == '{':
		l.readChar()
		return l.token(LBrace, "{", start), nil

	case l.ch == '}':
		l.readChar()
		return l.token(RBrace, "}", start), nil

	case l.ch == ',':
		l.readChar()
		return l.token(Comma, ",", start), nil

	case l.ch == '\\':
		l.readChar()
		return l.token(Backslash, "\\", start), nil

	case isSymbol(l.ch):
		return l.lexOperator(start), nil
	}

	return Token{}, &Error{Loc: start, Msg: fmt.Sprintf("unexpected character %q", l.ch)}
}

func (l *Lexer) token(typ Type, lexeme string, start ast.Location) Token {
	end := ast.Location{Row: start.Row, Column: start.Column + utf8.RuneCountInString(lexeme)}

	return Token{Type: typ, Lexeme: lexeme, Range: ast.Range{Start: start, End: end}}
}

func (l *Lexer) skipSpaceAndComments() error {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()

		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}

		case l.ch == '{' && l.peekChar() == '-':
			start := l.loc()
			if err := l.skipBlockComment(start); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// skipBlockComment consumes a {- -} comment, honoring nesting.
func (l *Lexer) skipBlockComment(start ast.Location) error {
	l.readChar() // '{'
	l.readChar() // '-'

	depth := 1
	for depth > 0 {
		switch {
		case l.ch == 0:
			return &Error{Loc: start, Msg: "unterminated block comment"}

		case l.ch == '{' && l.peekChar() == '-':
			depth++
			l.readChar()
			l.readChar()

		case l.ch == '-' && l.peekChar() == '}':
			depth--
			l.readChar()
			l.readChar()

		default:
			l.readChar()
		}
	}

	return nil
}

// lexIdent reads an identifier, merging module qualifiers into one lexeme:
// "Maybe.Just" and "String.length" are single tokens. Qualification only
// continues after uppercase segments, so "foo.bar" stops at "foo".
func (l *Lexer) lexIdent(start ast.Location) Token {
	var sb strings.Builder

	segStart := l.ch
	sb.WriteString(l.readIdentSegment())

	for isUpper(segStart) && l.ch == '.' && isLetter(l.peekChar()) {
		sb.WriteByte('.')
		l.readChar() // '.'
		segStart = l.ch
		sb.WriteString(l.readIdentSegment())
	}

	lexeme := sb.String()

	if typ, ok := keywords[lexeme]; ok {
		return l.token(typ, lexeme, start)
	}

	typ := LowerIdent
	if isUpper(segStart) {
		typ = UpperIdent
	}

	return l.token(typ, lexeme, start)
}

func (l *Lexer) readIdentSegment() string {
	var sb strings.Builder
	for isLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	return sb.String()
}

func (l *Lexer) lexNumber(start ast.Location) Token {
	var sb strings.Builder

	typ := Int
	for unicode.IsDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		typ = Float
		sb.WriteRune('.')
		l.readChar()
		for unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}

	return l.token(typ, sb.String(), start)
}

func (l *Lexer) lexString(start ast.Location) (Token, error) {
	var sb strings.Builder
	sb.WriteRune('"')
	l.readChar()

	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return Token{}, &Error{Loc: start, Msg: "unterminated string literal"}
		}

		if l.ch == '\\' {
			sb.WriteRune('\\')
			l.readChar()
		}

		sb.WriteRune(l.ch)
		l.readChar()
	}

	sb.WriteRune('"')
	l.readChar()

	return l.token(String, sb.String(), start), nil
}

func (l *Lexer) lexChar(start ast.Location) (Token, error) {
	var sb strings.Builder
	sb.WriteRune('\'')
	l.readChar()

	for l.ch != '\'' {
		if l.ch == 0 || l.ch == '\n' {
			return Token{}, &Error{Loc: start, Msg: "unterminated character literal"}
		}

		if l.ch == '\\' {
			sb.WriteRune('\\')
			l.readChar()
		}

		sb.WriteRune(l.ch)
		l.readChar()
	}

	sb.WriteRune('\'')
	l.readChar()

	return l.token(Char, sb.String(), start), nil
}

func (l *Lexer) lexOperator(start ast.Location) Token {
	var sb strings.Builder
	for isSymbol(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	lexeme := sb.String()

	switch lexeme {
	case "=":
		return l.token(Equals, lexeme, start)
	case "|":
		return l.token(Pipe, lexeme, start)
	case ":":
		return l.token(Colon, lexeme, start)
	case "->":
		return l.token(Arrow, lexeme, start)
	}

	return l.token(Operator, lexeme, start)
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isUpper(ch rune) bool {
	return unicode.IsUpper(ch)
}

func isSymbol(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '=', '<', '>', '|', '&', '^', '%', '!', ':', '.', '?', '~':
		return true
	}

	return false
}
