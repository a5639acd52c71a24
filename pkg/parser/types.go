package parser

import (
	"strconv"
	"strings"

	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/literal"
	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/lexer"
)

// NameMask restricts which case-classes of terminal identifier a name
// reference may resolve to (§4.4.1's "expected kind mask").
type NameMask byte

const (
	MaskClass NameMask = 1 << iota
	MaskInterface
	MaskAlias
)

const MaskAny = MaskClass | MaskInterface | MaskAlias

func (m NameMask) allows(k ast.Kind) bool {
	switch k {
	case ast.KindClass:
		return m&MaskClass != 0
	case ast.KindInterface:
		return m&MaskInterface != 0
	default:
		return m&MaskAlias != 0
	}
}

func (m NameMask) describe() string {
	var parts []string
	if m&MaskClass != 0 {
		parts = append(parts, "class name")
	}
	if m&MaskInterface != 0 {
		parts = append(parts, "interface name")
	}
	if m&MaskAlias != 0 {
		parts = append(parts, "alias name")
	}

	return strings.Join(parts, " or ")
}

// ParseType parses a single type expression from the parser's buffer (§4.4), expecting EOF
// immediately after it.
func (p *Parser) ParseType() (ast.Type, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if err := p.advanceAssert(lexer.KindEOF, "end of input"); err != nil {
		return nil, err
	}

	return t, nil
}

// parseType parses the union/intersection/optional precedence chain,
// assuming p.current is already the first token of the type.
func (p *Parser) parseType() (ast.Type, error) {
	return p.parseUnion()
}

func (p *Parser) parseUnion() (ast.Type, error) {
	start := p.current.Range.Start

	first, err := p.parseIntersection()
	if err != nil {
		return nil, err
	}

	types := []ast.Type{first}

	for p.next.Kind == lexer.KindPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		t, err := p.parseIntersection()
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return ast.NewUnionType(p.loc(start), types), nil
}

func (p *Parser) parseIntersection() (ast.Type, error) {
	start := p.current.Range.Start

	first, err := p.parseOptional()
	if err != nil {
		return nil, err
	}

	types := []ast.Type{first}

	for p.next.Kind == lexer.KindAmp {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		t, err := p.parseOptional()
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return ast.NewIntersectionType(p.loc(start), types), nil
}

func (p *Parser) parseOptional() (ast.Type, error) {
	start := p.current.Range.Start

	inner, err := p.parseSimple()
	if err != nil {
		return nil, err
	}

	if p.next.Kind == lexer.KindQuestion {
		if err := p.advance(); err != nil {
			return nil, err
		}

		return ast.NewOptionalType(p.loc(start), inner), nil
	}

	return inner, nil
}

func baseKindOf(k lexer.Kind) (ast.BaseKind, bool) {
	switch k {
	case lexer.KindKeywordBool:
		return ast.BaseBool, true
	case lexer.KindKeywordBot:
		return ast.BaseBottom, true
	case lexer.KindKeywordClass:
		return ast.BaseClass, true
	case lexer.KindKeywordInstance:
		return ast.BaseInstance, true
	case lexer.KindKeywordNil:
		return ast.BaseNil, true
	case lexer.KindKeywordSelf:
		return ast.BaseSelf, true
	case lexer.KindKeywordTop:
		return ast.BaseTop, true
	case lexer.KindKeywordVoid:
		return ast.BaseVoid, true
	case lexer.KindKeywordUntyped:
		return ast.BaseAny, true
	default:
		return 0, false
	}
}

func (p *Parser) parseSimple() (ast.Type, error) {
	start := p.current.Range.Start

	if k, ok := baseKindOf(p.current.Kind); ok {
		return ast.NewBaseType(p.loc(start), k), nil
	}

	switch p.current.Kind {
	case lexer.KindLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}

		t, err := p.parseType()
		if err != nil {
			return nil, err
		}

		if err := p.advanceAssert(lexer.KindRParen, ")"); err != nil {
			return nil, err
		}

		return t, nil

	case lexer.KindKeywordTrue:
		return ast.NewLiteralType(p.loc(start), literal.Bool(true)), nil
	case lexer.KindKeywordFalse:
		return ast.NewLiteralType(p.loc(start), literal.Bool(false)), nil
	case lexer.KindInteger:
		n, err := strconv.ParseInt(p.current.Text, 10, 64)
		if err != nil {
			return nil, p.errExpected("integer literal")
		}

		return ast.NewLiteralType(p.loc(start), literal.Int(n)), nil
	case lexer.KindSQString:
		return ast.NewLiteralType(p.loc(start), literal.String(unescapeSingle(p.current.Text))), nil
	case lexer.KindDQString:
		s, err := unescapeDouble(p.current.Text)
		if err != nil {
			return nil, err
		}

		return ast.NewLiteralType(p.loc(start), literal.String(s)), nil
	case lexer.KindSymbol:
		text := p.current.Text
		switch {
		case strings.HasPrefix(text, "\""):
			s, err := unescapeDouble(text)
			if err != nil {
				return nil, err
			}
			text = s
		case strings.HasPrefix(text, "'"):
			text = unescapeSingle(text)
		}

		return ast.NewLiteralType(p.loc(start), literal.Symbol(text)), nil

	case lexer.KindKeywordSingleton:
		return p.parseSingletonType(start)

	case lexer.KindLBracket:
		return p.parseTupleType(start)

	case lexer.KindLBrace:
		return p.parseRecordType(start)

	case lexer.KindCaret:
		return p.parseProcType(start)

	case lexer.KindLIdent:
		name := p.current.Text
		tn := ast.NewTypeName(p.loc(start), ast.Namespace{}, name)

		return ast.NewAliasType(p.loc(start), tn, nil), nil

	case lexer.KindUIdent:
		if p.scopes.member(p.current.Text) {
			return ast.NewVariableType(p.loc(start), p.current.Text), nil
		}

		return p.parseNameType(start, MaskAny)

	case lexer.KindColonColon, lexer.KindULIdent:
		return p.parseNameType(start, MaskAny)

	default:
		return nil, p.errExpected("type")
	}
}

// parseNameType resolves a (possibly namespaced) type name, assuming
// p.current is the first token of the name (`::` or the leading segment),
// and builds the matching class-instance/interface/alias node with an
// optional `[args]` list.
func (p *Parser) parseNameType(start source.Position, mask NameMask) (ast.Type, error) {
	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	tn := ast.NewTypeName(p.loc(start), ns, name)
	if !mask.allows(tn.Kind) {
		return nil, p.errExpected(mask.describe())
	}

	args, err := p.parseTypeArgs()
	if err != nil {
		return nil, err
	}

	loc := p.loc(start)

	switch tn.Kind {
	case ast.KindClass:
		return ast.NewClassInstanceType(loc, tn, args), nil
	case ast.KindInterface:
		return ast.NewInterfaceType(loc, tn, args), nil
	default:
		return ast.NewAliasType(loc, tn, args), nil
	}
}

// parseQualifiedName consumes an optional leading `::`, zero or more
// `UIDENT ::` namespace segments, and a terminal identifier. On return
// p.current is the terminal identifier token.
func (p *Parser) parseQualifiedName() (ast.Namespace, string, error) {
	ns := ast.Namespace{}

	if p.current.Kind == lexer.KindColonColon {
		ns.Absolute = true

		if err := p.advance(); err != nil {
			return ns, "", err
		}
	}

	for p.current.Kind == lexer.KindUIdent && p.next.Kind == lexer.KindColonColon {
		ns.Path = append(ns.Path, p.current.Text)

		if err := p.advance(); err != nil { // current == "::"
			return ns, "", err
		}
		if err := p.advance(); err != nil { // current == next segment
			return ns, "", err
		}
	}

	switch p.current.Kind {
	case lexer.KindUIdent, lexer.KindLIdent, lexer.KindULIdent:
		return ns, p.current.Text, nil
	default:
		return ns, "", p.errExpected("type name")
	}
}

// parseTypeArgs parses an optional `[T, ...]` type-argument list, looking
// ahead from p.current (the name just parsed) at p.next.
func (p *Parser) parseTypeArgs() ([]ast.Type, error) {
	if p.next.Kind != lexer.KindLBracket {
		return nil, nil
	}

	if err := p.advance(); err != nil { // current == "["
		return nil, err
	}

	var args []ast.Type

	for {
		if err := p.advance(); err != nil { // current == first token of arg
			return nil, err
		}

		t, err := p.parseType()
		if err != nil {
			return nil, err
		}

		args = append(args, t)

		if p.next.Kind != lexer.KindComma {
			break
		}

		if err := p.advance(); err != nil { // current == ","
			return nil, err
		}
	}

	if err := p.advanceAssert(lexer.KindRBracket, "]"); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *Parser) parseSingletonType(start source.Position) (ast.Type, error) {
	if err := p.advanceAssert(lexer.KindLParen, "("); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	tn := ast.NewTypeName(p.loc(start), ns, name)
	if tn.Kind != ast.KindClass {
		return nil, p.errExpected("class name")
	}

	if err := p.advanceAssert(lexer.KindRParen, ")"); err != nil {
		return nil, err
	}

	return ast.NewClassSingletonType(p.loc(start), tn), nil
}

func (p *Parser) parseTupleType(start source.Position) (ast.Type, error) {
	if p.next.Kind == lexer.KindRBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}

		return ast.NewTupleType(p.loc(start), nil), nil
	}

	var types []ast.Type

	for {
		if err := p.advance(); err != nil {
			return nil, err
		}

		t, err := p.parseType()
		if err != nil {
			return nil, err
		}

		types = append(types, t)

		if p.next.Kind != lexer.KindComma {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.next.Kind == lexer.KindRBracket { // trailing comma
			break
		}
	}

	if err := p.advanceAssert(lexer.KindRBracket, "]"); err != nil {
		return nil, err
	}

	return ast.NewTupleType(p.loc(start), types), nil
}

// parseRecordType parses `{ attrs }` per §4.4.2, disambiguating the
// keyword shape (`key: Type`) from the hash shape
// (`literal-key => Type`) by peeking next/next2.
func (p *Parser) parseRecordType(start source.Position) (ast.Type, error) {
	if p.next.Kind == lexer.KindRBrace {
		if err := p.advance(); err != nil {
			return nil, err
		}

		return ast.NewRecordType(p.loc(start), nil), nil
	}

	var fields []ast.RecordField

	for {
		if err := p.advance(); err != nil { // current == key-ish token
			return nil, err
		}

		field, err := p.parseRecordField()
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)

		if p.next.Kind != lexer.KindComma {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.next.Kind == lexer.KindRBrace { // trailing comma
			break
		}
	}

	if err := p.advanceAssert(lexer.KindRBrace, "}"); err != nil {
		return nil, err
	}

	return ast.NewRecordType(p.loc(start), fields), nil
}

func (p *Parser) parseRecordField() (ast.RecordField, error) {
	if isKeyToken(p.current.Kind) && p.next.Kind == lexer.KindColon {
		key := literal.Symbol(p.current.Text)

		if err := p.advance(); err != nil { // current == ":"
			return ast.RecordField{}, err
		}
		if err := p.advance(); err != nil { // current == first token of type
			return ast.RecordField{}, err
		}

		t, err := p.parseType()
		if err != nil {
			return ast.RecordField{}, err
		}

		return ast.RecordField{Key: key, Type: t}, nil
	}

	t, err := p.parseType()
	if err != nil {
		return ast.RecordField{}, err
	}

	lit, ok := t.(*ast.LiteralType)
	if !ok {
		return ast.RecordField{}, p.errExpected("symbol, string, integer or boolean literal")
	}

	if err := p.advanceAssert(lexer.KindFatArrow, "=>"); err != nil {
		return ast.RecordField{}, err
	}
	if err := p.advance(); err != nil {
		return ast.RecordField{}, err
	}

	vt, err := p.parseType()
	if err != nil {
		return ast.RecordField{}, err
	}

	return ast.RecordField{Key: lit.Value, Type: vt}, nil
}

func isKeyToken(k lexer.Kind) bool {
	switch k {
	case lexer.KindLIdent, lexer.KindUIdent, lexer.KindULIdent,
		lexer.KindKeywordBool, lexer.KindKeywordBot, lexer.KindKeywordClass,
		lexer.KindKeywordInstance, lexer.KindKeywordInterface, lexer.KindKeywordNil,
		lexer.KindKeywordSelf, lexer.KindKeywordSingleton, lexer.KindKeywordTop,
		lexer.KindKeywordVoid, lexer.KindKeywordType, lexer.KindKeywordUnchecked,
		lexer.KindKeywordIn, lexer.KindKeywordOut, lexer.KindKeywordEnd,
		lexer.KindKeywordDef, lexer.KindKeywordInclude, lexer.KindKeywordExtend,
		lexer.KindKeywordPrepend, lexer.KindKeywordAlias, lexer.KindKeywordModule,
		lexer.KindKeywordAttrReader, lexer.KindKeywordAttrWriter, lexer.KindKeywordAttrAccessor,
		lexer.KindKeywordPublic, lexer.KindKeywordPrivate, lexer.KindKeywordTrue,
		lexer.KindKeywordFalse, lexer.KindKeywordUntyped:
		return true
	default:
		return false
	}
}

func (p *Parser) parseProcType(start source.Position) (ast.Type, error) {
	if err := p.advance(); err != nil { // current == function's first token
		return nil, err
	}

	fn, block, err := p.parseFunctionAndBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewProcType(p.loc(start), fn, block), nil
}

// unescapeSingle resolves the single-quoted string escape table: only
// `\\` and `\'` are recognized, everything else passes through literally.
func unescapeSingle(raw string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'")

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) && (body[i+1] == '\\' || body[i+1] == '\'') {
			i++
		}
		b.WriteByte(body[i])
	}

	return b.String()
}

// unescapeDouble resolves the full double-quoted escape table.
func unescapeDouble(raw string) (string, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "\""), "\"")

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 >= len(body) {
			b.WriteByte(body[i])
			continue
		}

		i++
		switch body[i] {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'e':
			b.WriteByte(0x1b)
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 's':
			b.WriteByte(' ')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte(body[i])
		}
	}

	return b.String(), nil
}
