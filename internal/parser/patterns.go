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

package parser

import (
	"strings"

	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/lexer"
)

// parsePattern parses one pattern. Constructor patterns consume argument
// sub-patterns only when allowArgs is set: on a destructuring left-hand side
// "Wrapper x" is one pattern, while in a parameter list "Wrapper x" is a
// nullary constructor followed by a separate variable parameter.
func (p *parser) parsePattern(allowArgs bool) (ast.Pattern, error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.Wildcard:
		p.next()

		return &ast.WildcardPattern{Range: tok.Range}, nil

	case lexer.LowerIdent:
		p.next()

		return &ast.VarPattern{Range: tok.Range, Name: tok.Lexeme}, nil

	case lexer.UpperIdent:
		p.next()

		segments := strings.Split(tok.Lexeme, ".")
		ctor := &ast.CtorPattern{
			Range:      tok.Range,
			ModuleName: segments[:len(segments)-1],
			Name:       segments[len(segments)-1],
		}

		if allowArgs {
			for startsPattern(p.peek().Type) {
				arg, err := p.parsePattern(false)
				if err != nil {
					return nil, err
				}
				ctor.Args = append(ctor.Args, arg)
				ctor.Range.End = arg.GetRange().End
			}
		}

		return ctor, nil

	case lexer.LParen:
		return p.parseParenPattern()
	}

	return nil, p.errorf(tok, "expected a pattern, found %q", tok.Lexeme)
}

func startsPattern(t lexer.Type) bool {
	switch t {
	case lexer.Wildcard, lexer.LowerIdent, lexer.UpperIdent, lexer.LParen:
		return true
	}

	return false
}

// parseParenPattern parses "()", "(p)" or "(p1, p2, ...)".
func (p *parser) parseParenPattern() (ast.Pattern, error) {
	open := p.next()

	if p.peek().Type == lexer.RParen {
		closing := p.next()

		return &ast.UnitPattern{Range: ast.Range{Start: open.Start(), End: closing.End()}}, nil
	}

	var elements []ast.Pattern
	for {
		el, err := p.parsePattern(true)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)

		if p.peek().Type != lexer.Comma {
			break
		}
		p.next()
	}

	closing, err := p.expect(lexer.RParen, `")"`)
	if err != nil {
		return nil, err
	}

	r := ast.Range{Start: open.Start(), End: closing.End()}
	if len(elements) == 1 {
		return &ast.ParenPattern{Range: r, Inner: elements[0]}, nil
	}

	return &ast.TuplePattern{Range: r, Elements: elements}, nil
}
