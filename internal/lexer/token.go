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

package lexer

import "github.com/letguard/letguard/internal/ast"

// Type classifies a token.
type Type int

// Token types.
const (
	EOF Type = iota

	// LowerIdent is an identifier whose final segment starts lowercase. The
	// lexeme may carry a module qualifier, e.g. "String.length".
	LowerIdent
	// UpperIdent is an identifier whose final segment starts uppercase,
	// possibly qualified, e.g. "Just" or "Maybe.Just".
	UpperIdent
	Wildcard

	Int
	Float
	String
	Char

	Operator

	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Equals
	Pipe
	Colon
	Backslash
	Arrow

	// Keywords.
	KwLet
	KwIn
	KwIf
	KwThen
	KwElse
	KwCase
	KwOf
	KwType
	KwAlias
	KwModule
	KwPort
	KwExposing
	KwImport
	KwAs
)

var keywords = map[string]Type{
	"let":      KwLet,
	"in":       KwIn,
	"if":       KwIf,
	"then":     KwThen,
	"else":     KwElse,
	"case":     KwCase,
	"of":       KwOf,
	"type":     KwType,
	"alias":    KwAlias,
	"module":   KwModule,
	"port":     KwPort,
	"exposing": KwExposing,
	"import":   KwImport,
	"as":       KwAs,
}

// Token is one lexical element with its source span.
type Token struct {
	Type   Type
	Lexeme string
	Range  ast.Range
}

// Start returns the token's starting location.
func (t Token) Start() ast.Location { return t.Range.Start }

// End returns the location one past the token's last character.
func (t Token) End() ast.Location { return t.Range.End }
