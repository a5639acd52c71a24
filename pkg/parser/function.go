package parser

import (
	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/pkg/lexer"
)

// parseFunctionAndBlock parses a function's optional parameter list,
// optional block clause, and mandatory arrow return type (§4.4.3),
// assuming p.current is already the function's own first token: the
// opening `(` of a parameter list, the `?` or `{` of a block clause, or
// the `->` of a bare return type.
func (p *Parser) parseFunctionAndBlock() (*ast.Function, *ast.Block, error) {
	fn := &ast.Function{}

	if p.current.Kind == lexer.KindLParen {
		if err := p.parseParams(fn); err != nil {
			return nil, nil, err
		}

		if err := p.advance(); err != nil { // current == token after ")"
			return nil, nil, err
		}
	}

	var block *ast.Block

	optional := false
	if p.current.Kind == lexer.KindQuestion && p.next.Kind == lexer.KindLBrace {
		optional = true

		if err := p.advance(); err != nil { // current == "{"
			return nil, nil, err
		}
	}

	if p.current.Kind == lexer.KindLBrace {
		blockFn, err := p.parseBlockFunction()
		if err != nil {
			return nil, nil, err
		}

		if err := p.advanceAssert(lexer.KindRBrace, "}"); err != nil {
			return nil, nil, err
		}
		if err := p.advance(); err != nil { // current == "->"
			return nil, nil, err
		}

		block = &ast.Block{Func: blockFn, Required: !optional}
	}

	if err := p.requireArrowReturn(fn); err != nil {
		return nil, nil, err
	}

	return fn, block, nil
}

// parseBlockFunction parses the `(params) -> T` body of a block clause,
// assuming p.current is the opening `{`.
func (p *Parser) parseBlockFunction() (*ast.Function, error) {
	fn := &ast.Function{}

	if err := p.advance(); err != nil { // current == "(" or "->"
		return nil, err
	}

	if p.current.Kind == lexer.KindLParen {
		if err := p.parseParams(fn); err != nil {
			return nil, err
		}

		if err := p.advance(); err != nil { // current == "->"
			return nil, err
		}
	}

	if err := p.requireArrowReturn(fn); err != nil {
		return nil, err
	}

	return fn, nil
}

// requireArrowReturn assumes p.current is already the mandatory "->" and
// consumes it plus the return type that follows.
func (p *Parser) requireArrowReturn(fn *ast.Function) error {
	if p.current.Kind != lexer.KindArrow {
		return p.errExpected("->")
	}

	if err := p.advance(); err != nil {
		return err
	}

	ret, err := p.parseType()
	if err != nil {
		return err
	}

	fn.Return = ret

	return nil
}

// parseParams parses a parenthesized parameter list into fn, assuming
// p.current is the opening `(`. Parameters are classified in the fixed
// order of §4.4.3: required positionals, a single rest positional,
// trailing positionals (only once a rest has been seen), optional
// positionals, and an interleaved keywords section.
func (p *Parser) parseParams(fn *ast.Function) error {
	if p.next.Kind == lexer.KindRParen {
		return p.advance()
	}

	sawRest := false

	for {
		if err := p.advance(); err != nil {
			return err
		}

		switch {
		case p.current.Kind == lexer.KindStarStar:
			if err := p.advance(); err != nil {
				return err
			}

			t, err := p.parseType()
			if err != nil {
				return err
			}

			param := ast.Param{Type: t}
			if p.next.Kind == lexer.KindLIdent {
				if err := p.advance(); err != nil {
					return err
				}

				param.Name = p.current.Text
			}

			fn.RestKeyword = &param

		case p.current.Kind == lexer.KindStar:
			if err := p.advance(); err != nil {
				return err
			}

			t, err := p.parseType()
			if err != nil {
				return err
			}

			param := ast.Param{Type: t}
			if p.next.Kind == lexer.KindLIdent {
				if err := p.advance(); err != nil {
					return err
				}

				param.Name = p.current.Text
			}

			fn.Rest = &param
			sawRest = true

		case p.current.Kind == lexer.KindQuestion && isKeyToken(p.next.Kind) && p.next2.Kind == lexer.KindColon:
			if err := p.advance(); err != nil { // current == keyword name
				return err
			}

			name := p.current.Text

			if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
				return err
			}
			if err := p.advance(); err != nil {
				return err
			}

			t, err := p.parseType()
			if err != nil {
				return err
			}

			if fn.HasKeyword(name) {
				return p.errExpected("unique keyword parameter name")
			}

			fn.OptionalKeywords = append(fn.OptionalKeywords, ast.KeywordParam{Name: name, Type: t})

		case p.current.Kind == lexer.KindQuestion:
			if err := p.advance(); err != nil {
				return err
			}

			t, err := p.parseType()
			if err != nil {
				return err
			}

			param := ast.Param{Type: t}
			if p.next.Kind == lexer.KindLIdent {
				if err := p.advance(); err != nil {
					return err
				}

				param.Name = p.current.Text
			}

			fn.Optional = append(fn.Optional, param)

		case isKeyToken(p.current.Kind) && p.next.Kind == lexer.KindColon:
			name := p.current.Text

			if err := p.advance(); err != nil { // current == ":"
				return err
			}
			if err := p.advance(); err != nil {
				return err
			}

			t, err := p.parseType()
			if err != nil {
				return err
			}

			if fn.HasKeyword(name) {
				return p.errExpected("unique keyword parameter name")
			}

			fn.RequiredKeywords = append(fn.RequiredKeywords, ast.KeywordParam{Name: name, Type: t})

		default:
			t, err := p.parseType()
			if err != nil {
				return err
			}

			param := ast.Param{Type: t}
			if p.next.Kind == lexer.KindLIdent {
				if err := p.advance(); err != nil {
					return err
				}

				param.Name = p.current.Text
			}

			if sawRest {
				fn.Trailing = append(fn.Trailing, param)
			} else {
				fn.Required = append(fn.Required, param)
			}
		}

		if p.next.Kind == lexer.KindComma {
			if err := p.advance(); err != nil {
				return err
			}

			continue
		}

		break
	}

	return p.advanceAssert(lexer.KindRParen, ")")
}
