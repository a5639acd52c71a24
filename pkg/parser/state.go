package parser

import (
	"strings"

	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/lexer"
)

// Parser holds a three-token sliding window (current/next/next2) over a
// Lexer, a stack of type-variable scopes, and a pending trailing-comment
// buffer. It implements no error recovery: the first syntax or lex error
// it encounters is returned immediately to the caller.
type Parser struct {
	lex *lexer.Lexer
	buf *source.Buffer

	current lexer.Token
	next    lexer.Token
	next2   lexer.Token

	scopes *scopeStack

	pendingComment []string
	commentStart   source.Position
	commentEnd     source.Position
}

// New returns a Parser primed with the first two significant tokens of
// buf's content in next/next2; each entry point's first advance makes the
// first token current.
func New(buf *source.Buffer) (*Parser, error) {
	p := &Parser{
		lex:    lexer.New(buf),
		buf:    buf,
		scopes: newScopeStack(),
	}

	for i := 0; i < 2; i++ {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// advance shifts the window forward by one token, transparently consuming
// comments: mid-line comments are discarded, line comments are appended to
// the pending trailing-comment buffer.
func (p *Parser) advance() error {
	p.current = p.next
	p.next = p.next2

	tok, err := p.nextSignificant()
	if err != nil {
		return err
	}

	p.next2 = tok

	return nil
}

func (p *Parser) nextSignificant() (lexer.Token, error) {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return lexer.Token{}, err
		}

		switch tok.Kind {
		case lexer.KindComment:
			continue
		case lexer.KindLineComment:
			if len(p.pendingComment) == 0 || tok.Range.Start.Line != p.commentEnd.Line+1 {
				p.pendingComment = nil
				p.commentStart = tok.Range.Start
			}
			p.pendingComment = append(p.pendingComment, tok.Text)
			p.commentEnd = tok.Range.End

			continue
		default:
			return tok, nil
		}
	}
}

// advanceAssert advances and requires the newly-current token to have
// kind; otherwise it raises a syntax error naming expected.
func (p *Parser) advanceAssert(kind lexer.Kind, expected string) error {
	if err := p.advance(); err != nil {
		return err
	}

	if p.current.Kind != kind {
		return p.errExpected(expected)
	}

	return nil
}

// advanceIf advances and returns true only if next currently has kind.
func (p *Parser) advanceIf(kind lexer.Kind) (bool, error) {
	if p.next.Kind != kind {
		return false, nil
	}

	return true, p.advance()
}

func (p *Parser) errExpected(expected string) error {
	return &source.SyntaxError{
		Buffer:   p.buf,
		Pos:      p.current.Range.Start,
		Expected: expected,
		Actual:   p.current.Kind.String(),
	}
}

// takeCommentIfAdjacent consumes and returns the pending comment buffer only
// if its last line is exactly one less than startLine (§4.6's contiguity
// rule); otherwise it drops the buffer and returns nil.
func (p *Parser) takeCommentIfAdjacent(startLine int) *ast.Comment {
	if len(p.pendingComment) == 0 {
		return nil
	}

	if p.commentEnd.Line != startLine-1 {
		p.discardComment()
		return nil
	}

	text := strings.Join(p.pendingComment, "\n")
	rng := source.Range{Start: p.commentStart, End: p.commentEnd}
	p.pendingComment = nil

	return ast.NewComment(source.NewLocation(p.buf, rng), text)
}

// discardComment drops any pending trailing comment without attaching it,
// used when a comment run turns out not to be adjacent to a declaration.
func (p *Parser) discardComment() {
	p.pendingComment = nil
}

func (p *Parser) rangeFrom(start source.Position) source.Range {
	return source.Range{Start: start, End: p.current.Range.End}
}

func (p *Parser) loc(start source.Position) *source.Location {
	return source.NewLocation(p.buf, p.rangeFrom(start))
}
