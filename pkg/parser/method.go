package parser

import (
	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/pkg/lexer"
)

// ParseMethodType parses a complete method signature from the parser's
// buffer (§4.5).
func (p *Parser) ParseMethodType() (*ast.MethodType, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	mt, err := p.parseMethodType()
	if err != nil {
		return nil, err
	}

	if err := p.advanceAssert(lexer.KindEOF, "end of input"); err != nil {
		return nil, err
	}

	return mt, nil
}

func (p *Parser) parseMethodType() (*ast.MethodType, error) {
	start := p.current.Range.Start

	var typeParams []ast.TypeParam

	pushedScope := false
	if p.current.Kind == lexer.KindLBracket {
		p.scopes.push(false)
		pushedScope = true

		params, err := p.parseMethodTypeParams()
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		typeParams = params

		if err := p.advance(); err != nil { // current == first token of the function
			p.scopes.pop()
			return nil, err
		}
	}

	fn, block, err := p.parseFunctionAndBlock()
	if pushedScope {
		p.scopes.pop()
	}
	if err != nil {
		return nil, err
	}

	return ast.NewMethodType(p.loc(start), typeParams, fn, block), nil
}

// parseMethodTypeParams parses the bare `[UIDENT (',' UIDENT)*]` list of
// §4.5, assuming p.current is the opening `[`. Each name is registered in
// the active scope so the function that follows resolves references to it
// as variable types.
func (p *Parser) parseMethodTypeParams() ([]ast.TypeParam, error) {
	var params []ast.TypeParam

	for {
		if err := p.advanceAssert(lexer.KindUIdent, "type parameter name"); err != nil {
			return nil, err
		}

		name := p.current.Text
		p.scopes.insert(name)
		params = append(params, ast.TypeParam{Name: name})

		if p.next.Kind != lexer.KindComma {
			break
		}

		if err := p.advance(); err != nil { // current == ","
			return nil, err
		}
	}

	return params, p.advanceAssert(lexer.KindRBracket, "]")
}
