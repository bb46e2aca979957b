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

// Package parser builds the syntax tree consumed by the lint rules.
//
// It accepts a practical subset of the Elm grammar: module headers, imports,
// type annotations, custom types, type aliases, and value declarations whose
// bodies use literals, references, application, binary operators, if/else,
// lambdas, lists, tuples and let expressions. Layout is column-based: a
// token in column 1 starts a new top-level declaration, and the first token
// after "let" fixes the column at which sibling bindings begin.
//
// Node ranges are exact: fixes copy and delete source text by range, so the
// end location of every expression is the position one past its final
// character.
package parser

import (
	"fmt"
	"strings"

	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/lexer"
)

// Error is a syntax error with its source location.
type Error struct {
	Path string
	Loc  ast.Location
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Loc, e.Msg)
}

type parser struct {
	path string
	toks []lexer.Token
	pos  int
}

// ParseModule parses one source file.
func ParseModule(path, content string) (*ast.Module, error) {
	toks, err := lexer.Tokens(content)
	if err != nil {
		if lerr, ok := err.(*lexer.Error); ok {
			return nil, &Error{Path: path, Loc: lerr.Loc, Msg: lerr.Msg}
		}

		return nil, err
	}

	p := &parser{path: path, toks: toks}

	return p.parseModule()
}

func (p *parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) at(offset int) lexer.Token {
	if p.pos+offset >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}

	return p.toks[p.pos+offset]
}

func (p *parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if tok.Type != lexer.EOF {
		p.pos++
	}

	return tok
}

func (p *parser) expect(typ lexer.Type, what string) (lexer.Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return tok, p.errorf(tok, "expected %s, found %q", what, tok.Lexeme)
	}

	return p.next(), nil
}

func (p *parser) errorf(tok lexer.Token, format string, args ...any) error {
	return &Error{Path: p.path, Loc: tok.Start(), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseModule() (*ast.Module, error) {
	m := &ast.Module{}

	if t := p.peek().Type; t == lexer.KwModule || t == lexer.KwPort {
		if t == lexer.KwPort {
			p.next()
		}
		p.next() // "module"

		name, err := p.expect(lexer.UpperIdent, "module name")
		if err != nil {
			return nil, err
		}
		m.Name = strings.Split(name.Lexeme, ".")

		// The exposing list is not resolved.
		p.skipToTopLevel()
	}

	for p.peek().Type == lexer.KwImport {
		imp := p.next()

		name, err := p.expect(lexer.UpperIdent, "imported module name")
		if err != nil {
			return nil, err
		}

		m.Imports = append(m.Imports, ast.Import{
			Range:      ast.Range{Start: imp.Start(), End: name.End()},
			ModuleName: strings.Split(name.Lexeme, "."),
		})

		p.skipToTopLevel()
	}

	for p.peek().Type != lexer.EOF {
		tok := p.peek()
		if tok.Start().Column != 1 {
			return nil, p.errorf(tok, "unexpected indentation at top level")
		}

		switch tok.Type {
		case lexer.KwType:
			decl, err := p.parseTypeDeclaration()
			if err != nil {
				return nil, err
			}
			m.Declarations = append(m.Declarations, decl)

		case lexer.LowerIdent:
			if p.at(1).Type == lexer.Colon {
				// Type annotation; attached semantics are not needed.
				p.next()
				p.skipToTopLevel()

				continue
			}

			decl, err := p.parseValueDeclaration()
			if err != nil {
				return nil, err
			}
			m.Declarations = append(m.Declarations, decl)

		default:
			return nil, p.errorf(tok, "expected a declaration, found %q", tok.Lexeme)
		}
	}

	return m, nil
}

// skipToTopLevel advances past the current construct, up to the next token
// in column 1 (or EOF).
func (p *parser) skipToTopLevel() {
	for p.peek().Type != lexer.EOF && p.peek().Start().Column > 1 {
		p.next()
	}
}

func (p *parser) parseTypeDeclaration() (ast.Declaration, error) {
	typeTok := p.next() // "type"

	if p.peek().Type == lexer.KwAlias {
		p.next()

		name, err := p.expect(lexer.UpperIdent, "type alias name")
		if err != nil {
			return nil, err
		}

		end := name.End()
		for p.peek().Type != lexer.EOF && p.peek().Start().Column > 1 {
			end = p.next().End()
		}

		return &ast.TypeAliasDeclaration{
			Range: ast.Range{Start: typeTok.Start(), End: end},
			Name:  name.Lexeme,
		}, nil
	}

	name, err := p.expect(lexer.UpperIdent, "type name")
	if err != nil {
		return nil, err
	}

	decl := &ast.TypeDeclaration{Name: name.Lexeme}

	for p.peek().Type == lexer.LowerIdent {
		decl.Params = append(decl.Params, p.next().Lexeme)
	}

	if _, err := p.expect(lexer.Equals, `"="`); err != nil {
		return nil, err
	}

	for {
		ctor, err := p.parseConstructor()
		if err != nil {
			return nil, err
		}
		decl.Constructors = append(decl.Constructors, ctor)

		if p.peek().Type == lexer.Pipe && p.peek().Start().Column > 1 {
			p.next()

			continue
		}

		break
	}

	last := decl.Constructors[len(decl.Constructors)-1]
	decl.Range = ast.Range{Start: typeTok.Start(), End: last.Range.End}

	return decl, nil
}

// parseConstructor reads one type variant. Argument types are counted, not
// modeled: each type atom (identifier, parenthesized group, record group)
// contributes one to the arity.
func (p *parser) parseConstructor() (ast.Constructor, error) {
	name, err := p.expect(lexer.UpperIdent, "constructor name")
	if err != nil {
		return ast.Constructor{}, err
	}

	ctor := ast.Constructor{Name: name.Lexeme}
	end := name.End()

	for {
		tok := p.peek()
		if tok.Start().Column <= 1 {
			break
		}

		switch tok.Type {
		case lexer.LowerIdent, lexer.UpperIdent:
			end = p.next().End()

		case lexer.LParen:
			end, err = p.skipBalanced(lexer.LParen, lexer.RParen)
			if err != nil {
				return ast.Constructor{}, err
			}

		case lexer.LBrace:
			end, err = p.skipBalanced(lexer.LBrace, lexer.RBrace)
			if err != nil {
				return ast.Constructor{}, err
			}

		default:
			ctor.Range = ast.Range{Start: name.Start(), End: end}

			return ctor, nil
		}

		ctor.Arity++
	}

	ctor.Range = ast.Range{Start: name.Start(), End: end}

	return ctor, nil
}

func (p *parser) skipBalanced(open, close lexer.Type) (ast.Location, error) {
	tok := p.next() // the opening token
	depth := 1

	for depth > 0 {
		tok = p.next()
		switch tok.Type {
		case open:
			depth++
		case close:
			depth--
		case lexer.EOF:
			return tok.Start(), p.errorf(tok, "unbalanced delimiters")
		}
	}

	return tok.End(), nil
}

func (p *parser) parseValueDeclaration() (ast.Declaration, error) {
	name := p.next()

	var params []ast.Pattern
	for p.peek().Type != lexer.Equals {
		pat, err := p.parsePattern(false)
		if err != nil {
			return nil, err
		}
		params = append(params, pat)
	}

	p.next() // "="

	body, err := p.parseExpression(1)
	if err != nil {
		return nil, err
	}

	return &ast.ValueDeclaration{
		Range:  ast.Range{Start: name.Start(), End: body.GetRange().End},
		Name:   name.Lexeme,
		Params: params,
		Body:   body,
	}, nil
}
