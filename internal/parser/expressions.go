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
	"strconv"
	"strings"

	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/lexer"
)

// parseExpression parses an expression. Tokens at a column less than or
// equal to indent terminate it; inside brackets indent is 0 because layout
// is suspended there.
func (p *parser) parseExpression(indent int) (ast.Expression, error) {
	switch p.peek().Type {
	case lexer.KwLet:
		return p.parseLet(indent)
	case lexer.KwIf:
		return p.parseIf(indent)
	case lexer.Backslash:
		return p.parseLambda(indent)
	}

	left, err := p.parseApplication(indent)
	if err != nil {
		return nil, err
	}

	for p.peek().Type == lexer.Operator && p.peek().Start().Column > indent {
		op := p.next()

		var right ast.Expression
		switch p.peek().Type {
		case lexer.KwLet:
			right, err = p.parseLet(indent)
		case lexer.KwIf:
			right, err = p.parseIf(indent)
		case lexer.Backslash:
			right, err = p.parseLambda(indent)
		default:
			right, err = p.parseApplication(indent)
		}
		if err != nil {
			return nil, err
		}

		left = &ast.BinOp{
			Range: ast.Range{Start: left.GetRange().Start, End: right.GetRange().End},
			Op:    op.Lexeme,
			Left:  left,
			Right: right,
		}
	}

	return left, nil
}

func (p *parser) parseApplication(indent int) (ast.Expression, error) {
	fn, err := p.parseAtom(indent)
	if err != nil {
		return nil, err
	}

	var args []ast.Expression
	for startsAtom(p.peek().Type) && p.peek().Start().Column > indent {
		arg, err := p.parseAtom(indent)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if len(args) == 0 {
		return fn, nil
	}

	return &ast.App{
		Range: ast.Range{Start: fn.GetRange().Start, End: args[len(args)-1].GetRange().End},
		Func:  fn,
		Args:  args,
	}, nil
}

func startsAtom(t lexer.Type) bool {
	switch t {
	case lexer.LowerIdent, lexer.UpperIdent, lexer.Int, lexer.Float,
		lexer.String, lexer.Char, lexer.LParen, lexer.LBracket:
		return true
	}

	return false
}

func (p *parser) parseAtom(indent int) (ast.Expression, error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.LowerIdent, lexer.UpperIdent:
		p.next()

		return makeVar(tok), nil

	case lexer.Int:
		p.next()
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid integer literal %q", tok.Lexeme)
		}

		return &ast.IntLit{Range: tok.Range, Value: v}, nil

	case lexer.Float:
		p.next()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid float literal %q", tok.Lexeme)
		}

		return &ast.FloatLit{Range: tok.Range, Value: v}, nil

	case lexer.String:
		p.next()

		return &ast.StringLit{Range: tok.Range, Value: unquote(tok.Lexeme)}, nil

	case lexer.Char:
		p.next()
		value := []rune(unquote(tok.Lexeme))
		if len(value) == 0 {
			return nil, p.errorf(tok, "empty character literal")
		}

		return &ast.CharLit{Range: tok.Range, Value: value[0]}, nil

	case lexer.LParen:
		return p.parseParenOrTuple()

	case lexer.LBracket:
		return p.parseList()

	case lexer.Operator:
		// Unary minus.
		if tok.Lexeme == "-" {
			p.next()
			inner, err := p.parseAtom(indent)
			if err != nil {
				return nil, err
			}

			return &ast.Negate{
				Range: ast.Range{Start: tok.Start(), End: inner.GetRange().End},
				Expr:  inner,
			}, nil
		}
	}

	return nil, p.errorf(tok, "expected an expression, found %q", tok.Lexeme)
}

func makeVar(tok lexer.Token) *ast.Var {
	segments := strings.Split(tok.Lexeme, ".")

	return &ast.Var{
		Range:      tok.Range,
		ModuleName: segments[:len(segments)-1],
		Name:       segments[len(segments)-1],
	}
}

// unquote strips the surrounding quotes and resolves the common escapes.
func unquote(lexeme string) string {
	body := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var sb strings.Builder
	escaped := false
	for _, r := range body {
		if !escaped && r == '\\' {
			escaped = true

			continue
		}

		if escaped {
			switch r {
			case 'n':
				r = '\n'
			case 't':
				r = '\t'
			case 'r':
				r = '\r'
			}
			escaped = false
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// parseParenOrTuple parses "()", "(e)" or "(e1, e2, ...)". Layout is
// suspended inside the parentheses.
func (p *parser) parseParenOrTuple() (ast.Expression, error) {
	open := p.next()

	if p.peek().Type == lexer.RParen {
		closing := p.next()

		return &ast.Unit{Range: ast.Range{Start: open.Start(), End: closing.End()}}, nil
	}

	var elements []ast.Expression
	for {
		el, err := p.parseExpression(0)
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
		return &ast.Paren{Range: r, Inner: elements[0]}, nil
	}

	return &ast.Tuple{Range: r, Elements: elements}, nil
}

func (p *parser) parseList() (ast.Expression, error) {
	open := p.next()

	var elements []ast.Expression
	if p.peek().Type != lexer.RBracket {
		for {
			el, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)

			if p.peek().Type != lexer.Comma {
				break
			}
			p.next()
		}
	}

	closing, err := p.expect(lexer.RBracket, `"]"`)
	if err != nil {
		return nil, err
	}

	return &ast.ListLit{
		Range:    ast.Range{Start: open.Start(), End: closing.End()},
		Elements: elements,
	}, nil
}

func (p *parser) parseIf(indent int) (ast.Expression, error) {
	ifTok := p.next()

	cond, err := p.parseExpression(indent)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.KwThen, `"then"`); err != nil {
		return nil, err
	}

	thenExpr, err := p.parseExpression(indent)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.KwElse, `"else"`); err != nil {
		return nil, err
	}

	elseExpr, err := p.parseExpression(indent)
	if err != nil {
		return nil, err
	}

	return &ast.If{
		Range: ast.Range{Start: ifTok.Start(), End: elseExpr.GetRange().End},
		Cond:  cond,
		Then:  thenExpr,
		Else:  elseExpr,
	}, nil
}

func (p *parser) parseLambda(indent int) (ast.Expression, error) {
	backslash := p.next()

	var params []ast.Pattern
	for p.peek().Type != lexer.Arrow {
		pat, err := p.parsePattern(false)
		if err != nil {
			return nil, err
		}
		params = append(params, pat)
	}
	p.next() // "->"

	body, err := p.parseExpression(indent)
	if err != nil {
		return nil, err
	}

	return &ast.Lambda{
		Range:  ast.Range{Start: backslash.Start(), End: body.GetRange().End},
		Params: params,
		Body:   body,
	}, nil
}

// parseLet parses a let expression. The first token after "let" fixes the
// column at which every sibling binding must start; "in" ends the binding
// list and the trailing body extends until the enclosing layout resumes.
func (p *parser) parseLet(indent int) (ast.Expression, error) {
	letTok := p.next()

	first := p.peek()
	if first.Type == lexer.KwIn || first.Type == lexer.EOF {
		return nil, p.errorf(first, "let expression without bindings")
	}
	bindingCol := first.Start().Column

	var bindings []ast.LetBinding
	for p.peek().Type != lexer.KwIn {
		tok := p.peek()
		if tok.Type == lexer.EOF {
			return nil, p.errorf(tok, `unterminated let expression, missing "in"`)
		}
		if tok.Start().Column != bindingCol {
			return nil, p.errorf(tok, "misaligned let binding")
		}

		binding, err := p.parseLetBinding(bindingCol)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)
	}

	p.next() // "in"

	body, err := p.parseExpression(indent)
	if err != nil {
		return nil, err
	}

	return &ast.Let{
		Range:    ast.Range{Start: letTok.Start(), End: body.GetRange().End},
		Bindings: bindings,
		Body:     body,
	}, nil
}

func (p *parser) parseLetBinding(bindingCol int) (ast.LetBinding, error) {
	tok := p.peek()

	if tok.Type == lexer.LowerIdent && !strings.Contains(tok.Lexeme, ".") {
		if p.at(1).Type == lexer.Colon {
			// Local type annotation: skip to the annotated binding.
			p.next()
			p.next()
			for p.peek().Type != lexer.EOF && p.peek().Start().Column > bindingCol {
				p.next()
			}

			return p.parseLetBinding(bindingCol)
		}

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

		body, err := p.parseExpression(bindingCol)
		if err != nil {
			return nil, err
		}

		return &ast.LetFunction{
			Range:     ast.Range{Start: name.Start(), End: body.GetRange().End},
			Name:      name.Lexeme,
			NameRange: name.Range,
			Params:    params,
			Body:      body,
		}, nil
	}

	pat, err := p.parsePattern(true)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.Equals, `"="`); err != nil {
		return nil, err
	}

	body, err := p.parseExpression(bindingCol)
	if err != nil {
		return nil, err
	}

	return &ast.LetDestructuring{
		Range:   ast.Range{Start: pat.GetRange().Start, End: body.GetRange().End},
		Pattern: pat,
		Body:    body,
	}, nil
}
