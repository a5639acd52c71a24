package parser

import (
	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/lexer"
)

// ParseSignature parses a complete sequence of declarations until EOF
// (§4.6).
func (p *Parser) ParseSignature() ([]ast.Decl, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	var decls []ast.Decl

	for p.current.Kind != lexer.KindEOF {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}

		decls = append(decls, d)

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return decls, nil
}

func (p *Parser) parseAnnotations() ([]*ast.Annotation, error) {
	var anns []*ast.Annotation

	for p.current.Kind == lexer.KindAnnotation {
		anns = append(anns, ast.NewAnnotation(p.loc(p.current.Range.Start), p.current.Text))

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return anns, nil
}

func attachMeta(d ast.Node, anns []*ast.Annotation, c *ast.Comment) {
	switch v := d.(type) {
	case *ast.Constant:
		v.Annotations, v.Comment = anns, c
	case *ast.Global:
		v.Annotations, v.Comment = anns, c
	case *ast.Alias:
		v.Annotations, v.Comment = anns, c
	case *ast.Interface:
		v.Annotations, v.Comment = anns, c
	case *ast.Module:
		v.Annotations, v.Comment = anns, c
	case *ast.Class:
		v.Annotations, v.Comment = anns, c
	case *ast.MethodDef:
		v.Annotations, v.Comment = anns, c
	case *ast.Mixin:
		v.Annotations, v.Comment = anns, c
	case *ast.Attr:
		v.Annotations, v.Comment = anns, c
	}
}

func isMethodNameToken(k lexer.Kind) bool {
	switch k {
	case lexer.KindLIdent, lexer.KindBangIdent, lexer.KindEqIdent, lexer.KindQIdent, lexer.KindOperator:
		return true
	default:
		return false
	}
}

func (p *Parser) parseDecl() (ast.Decl, error) {
	declLine := p.current.Range.Start.Line
	comment := p.takeCommentIfAdjacent(declLine)

	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}

	start := p.current.Range.Start

	d, err := p.parseDeclBody(start)
	if err != nil {
		return nil, err
	}

	attachMeta(d, annotations, comment)

	return d, nil
}

// parseDeclBody dispatches on the first token of a declaration (§4.6's
// table), assuming any leading annotations have already been consumed.
func (p *Parser) parseDeclBody(start source.Position) (ast.Decl, error) {
	switch p.current.Kind {
	case lexer.KindUIdent, lexer.KindColonColon:
		return p.parseConstantDecl(start)
	case lexer.KindGIdent:
		return p.parseGlobalDecl(start)
	case lexer.KindKeywordType:
		return p.parseAliasDecl(start)
	case lexer.KindKeywordInterface:
		return p.parseInterfaceDecl(start)
	case lexer.KindKeywordModule:
		return p.parseModuleDecl(start)
	case lexer.KindKeywordClass:
		return p.parseClassDecl(start)
	default:
		return nil, p.errExpected("declaration")
	}
}

func (p *Parser) parseConstantDecl(start source.Position) (ast.Decl, error) {
	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	nameRange := p.rangeFrom(start)
	tn := ast.NewTypeName(p.loc(start), ns, name)

	if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	loc := p.loc(start).WithRequired("name", nameRange)

	return ast.NewConstant(loc, tn, t), nil
}

func (p *Parser) parseGlobalDecl(start source.Position) (ast.Decl, error) {
	name := p.current.Text
	nameRange := p.current.Range

	if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	loc := p.loc(start).WithRequired("name", nameRange)

	return ast.NewGlobal(loc, name, t), nil
}

func (p *Parser) parseAliasDecl(start source.Position) (ast.Decl, error) {
	keywordRange := p.current.Range

	if err := p.advance(); err != nil { // current == name's leading token
		return nil, err
	}

	nameStart := p.current.Range.Start

	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	nameRange := p.rangeFrom(nameStart)
	tn := ast.NewTypeName(p.loc(start), ns, name)

	var typeParams []ast.TypeParam

	pushedScope := false
	if p.next.Kind == lexer.KindLBracket {
		if err := p.advance(); err != nil { // current == "["
			return nil, err
		}

		p.scopes.push(true)
		pushedScope = true

		tps, err := p.parseMethodTypeParams()
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		typeParams = tps
	}

	t, err := p.parseAliasBody()
	if pushedScope {
		p.scopes.pop()
	}
	if err != nil {
		return nil, err
	}

	loc := p.loc(start).WithRequired("keyword", keywordRange).WithRequired("name", nameRange)

	return ast.NewAlias(loc, tn, typeParams, t), nil
}

func (p *Parser) parseAliasBody() (ast.Type, error) {
	if err := p.advanceAssert(lexer.KindEq, "="); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p.parseType()
}

// parseVariantTypeParamList parses `[ (unchecked|in|out)* UIDENT (',' ...)* ]`,
// assuming p.current is the opening `[` (§4.6's class/module/interface
// type-parameter list, extended with variance/unchecked per
// SUPPLEMENTED FEATURES).
func (p *Parser) parseVariantTypeParamList() ([]ast.TypeParam, error) {
	var params []ast.TypeParam

	for {
		if err := p.advance(); err != nil { // current == first modifier or name token
			return nil, err
		}

		variance := ast.Invariant
		unchecked := false

	modifiers:
		for {
			switch p.current.Kind {
			case lexer.KindKeywordUnchecked:
				unchecked = true
			case lexer.KindKeywordIn:
				variance = ast.Contravariant
			case lexer.KindKeywordOut:
				variance = ast.Covariant
			default:
				break modifiers
			}

			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		if p.current.Kind != lexer.KindUIdent {
			return nil, p.errExpected("type parameter name")
		}

		name := p.current.Text
		p.scopes.insert(name)
		params = append(params, ast.TypeParam{Name: name, Variance: variance, Unchecked: unchecked})

		if p.next.Kind != lexer.KindComma {
			break
		}

		if err := p.advance(); err != nil { // current == ","
			return nil, err
		}
	}

	return params, p.advanceAssert(lexer.KindRBracket, "]")
}

func (p *Parser) parseClassInstanceRef(mask NameMask) (*ast.ClassInstanceType, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseNameType(p.current.Range.Start, mask)
	if err != nil {
		return nil, err
	}

	switch v := t.(type) {
	case *ast.ClassInstanceType:
		return v, nil
	case *ast.InterfaceType:
		// Only reachable when mask admits interface names (module self
		// types); the node's TypeName still carries KindInterface.
		return ast.NewClassInstanceType(v.Loc(), v.Name, v.Args), nil
	default:
		return nil, p.errExpected(mask.describe())
	}
}

func (p *Parser) parseInterfaceDecl(start source.Position) (ast.Decl, error) {
	keywordRange := p.current.Range

	if err := p.advance(); err != nil { // current == name token
		return nil, err
	}

	nameStart := p.current.Range.Start

	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	nameRange := p.rangeFrom(nameStart)
	tn := ast.NewTypeName(p.loc(start), ns, name)
	if tn.Kind != ast.KindInterface {
		return nil, p.errExpected("interface name")
	}

	p.scopes.push(true)

	var typeParams []ast.TypeParam
	if p.next.Kind == lexer.KindLBracket {
		if err := p.advance(); err != nil {
			p.scopes.pop()
			return nil, err
		}

		tps, err := p.parseVariantTypeParamList()
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		typeParams = tps
	}

	members, err := p.parseMembers(false, false, false, false)
	p.scopes.pop()
	if err != nil {
		return nil, err
	}

	loc := p.loc(start).
		WithRequired("keyword", keywordRange).
		WithRequired("name", nameRange).
		WithRequired("end", p.current.Range)

	return ast.NewInterface(loc, tn, typeParams, members), nil
}

func (p *Parser) parseModuleDecl(start source.Position) (ast.Decl, error) {
	keywordRange := p.current.Range

	if err := p.advance(); err != nil {
		return nil, err
	}

	nameStart := p.current.Range.Start

	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	nameRange := p.rangeFrom(nameStart)
	tn := ast.NewTypeName(p.loc(start), ns, name)
	if tn.Kind != ast.KindClass {
		return nil, p.errExpected("module name")
	}

	p.scopes.push(true)

	var typeParams []ast.TypeParam
	if p.next.Kind == lexer.KindLBracket {
		if err := p.advance(); err != nil {
			p.scopes.pop()
			return nil, err
		}

		tps, err := p.parseVariantTypeParamList()
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		typeParams = tps
	}

	var selfTypes []*ast.ClassInstanceType
	if p.next.Kind == lexer.KindColon {
		if err := p.advance(); err != nil { // current == ":"
			p.scopes.pop()
			return nil, err
		}

		for {
			ci, err := p.parseClassInstanceRef(MaskClass | MaskInterface)
			if err != nil {
				p.scopes.pop()
				return nil, err
			}

			selfTypes = append(selfTypes, ci)

			if p.next.Kind != lexer.KindComma {
				break
			}

			if err := p.advance(); err != nil {
				p.scopes.pop()
				return nil, err
			}
		}
	}

	members, err := p.parseMembers(true, true, true, true)
	p.scopes.pop()
	if err != nil {
		return nil, err
	}

	loc := p.loc(start).
		WithRequired("keyword", keywordRange).
		WithRequired("name", nameRange).
		WithRequired("end", p.current.Range)

	return ast.NewModule(loc, tn, typeParams, selfTypes, members), nil
}

func (p *Parser) parseClassDecl(start source.Position) (ast.Decl, error) {
	keywordRange := p.current.Range

	if err := p.advance(); err != nil {
		return nil, err
	}

	nameStart := p.current.Range.Start

	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	nameRange := p.rangeFrom(nameStart)
	tn := ast.NewTypeName(p.loc(start), ns, name)
	if tn.Kind != ast.KindClass {
		return nil, p.errExpected("class name")
	}

	p.scopes.push(true)

	var typeParams []ast.TypeParam
	if p.next.Kind == lexer.KindLBracket {
		if err := p.advance(); err != nil {
			p.scopes.pop()
			return nil, err
		}

		tps, err := p.parseVariantTypeParamList()
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		typeParams = tps
	}

	var super *ast.ClassInstanceType
	if p.next.Kind == lexer.KindLT {
		if err := p.advance(); err != nil { // current == "<"
			p.scopes.pop()
			return nil, err
		}

		s, err := p.parseClassInstanceRef(MaskClass)
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		super = s
	}

	members, err := p.parseMembers(true, true, true, true)
	p.scopes.pop()
	if err != nil {
		return nil, err
	}

	loc := p.loc(start).
		WithRequired("keyword", keywordRange).
		WithRequired("name", nameRange).
		WithRequired("end", p.current.Range)

	return ast.NewClass(loc, tn, typeParams, super, members), nil
}

// parseMembers parses members until a matching `end`, assuming p.current is
// the last token of the declaration header. allowDataMembers gates
// attr_reader/attr_writer/attr_accessor, ivar/cvar variable declarations,
// and public/private visibility markers: an interface body admits none of
// these (§4.6), only def/include/alias.
func (p *Parser) parseMembers(allowMixinKinds, allowNested, allowOverload, allowDataMembers bool) ([]ast.Member, error) {
	var members []ast.Member

	for p.next.Kind != lexer.KindKeywordEnd {
		if err := p.advance(); err != nil {
			return nil, err
		}

		m, err := p.parseMember(allowMixinKinds, allowNested, allowOverload, allowDataMembers)
		if err != nil {
			return nil, err
		}

		members = append(members, m)
	}

	return members, p.advanceAssert(lexer.KindKeywordEnd, "end")
}

func (p *Parser) parseMember(allowMixinKinds, allowNested, allowOverload, allowDataMembers bool) (ast.Member, error) {
	declLine := p.current.Range.Start.Line
	comment := p.takeCommentIfAdjacent(declLine)

	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}

	start := p.current.Range.Start

	var m ast.Member

	switch p.current.Kind {
	case lexer.KindKeywordPublic, lexer.KindKeywordPrivate:
		if !allowDataMembers {
			return nil, p.errExpected("interface member")
		}

		if len(annotations) > 0 {
			return nil, p.errExpected("no annotations before visibility marker")
		}

		return ast.NewVisibility(p.loc(start), p.current.Kind == lexer.KindKeywordPublic), nil

	case lexer.KindKeywordInclude:
		m, err = p.parseMixin(start, ast.MixinInclude)

	case lexer.KindKeywordExtend:
		if !allowMixinKinds {
			return nil, p.errExpected("include")
		}

		m, err = p.parseMixin(start, ast.MixinExtend)

	case lexer.KindKeywordPrepend:
		if !allowMixinKinds {
			return nil, p.errExpected("include")
		}

		m, err = p.parseMixin(start, ast.MixinPrepend)

	case lexer.KindKeywordAlias:
		m, err = p.parseMethodAlias(start)

	case lexer.KindKeywordAttrReader:
		if !allowDataMembers {
			return nil, p.errExpected("interface member")
		}

		m, err = p.parseAttr(start, ast.AttrReader)

	case lexer.KindKeywordAttrWriter:
		if !allowDataMembers {
			return nil, p.errExpected("interface member")
		}

		m, err = p.parseAttr(start, ast.AttrWriter)

	case lexer.KindKeywordAttrAccessor:
		if !allowDataMembers {
			return nil, p.errExpected("interface member")
		}

		m, err = p.parseAttr(start, ast.AttrAccessor)

	case lexer.KindAIdent, lexer.KindA2Ident:
		if !allowDataMembers {
			return nil, p.errExpected("interface member")
		}

		if len(annotations) > 0 {
			return nil, p.errExpected("no annotations before variable declaration")
		}

		m, err = p.parseVariable(start)

	case lexer.KindKeywordSelf:
		m, err = p.parseSelfMember(start, allowOverload)

	case lexer.KindKeywordDef:
		m, err = p.parseMethodDefBody(start, ast.MethodInstance, allowOverload)

	case lexer.KindUIdent, lexer.KindColonColon, lexer.KindKeywordType, lexer.KindKeywordInterface, lexer.KindKeywordModule, lexer.KindKeywordClass:
		if !allowNested {
			return nil, p.errExpected("member")
		}

		d, derr := p.parseDeclBody(start)
		if derr != nil {
			return nil, derr
		}

		mem, ok := d.(ast.Member)
		if !ok {
			return nil, p.errExpected("member")
		}

		m = mem

	default:
		return nil, p.errExpected("member")
	}

	if err != nil {
		return nil, err
	}

	attachMeta(m, annotations, comment)

	return m, nil
}

func (p *Parser) parseMixin(start source.Position, kind ast.MixinKind) (*ast.Mixin, error) {
	if err := p.advance(); err != nil { // current == name's leading token
		return nil, err
	}

	ns, name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	tn := ast.NewTypeName(p.loc(start), ns, name)

	args, err := p.parseTypeArgs()
	if err != nil {
		return nil, err
	}

	return ast.NewMixin(p.loc(start), kind, tn, args), nil
}

func (p *Parser) parseMethodAlias(start source.Position) (*ast.MethodAlias, error) {
	singleton := false
	if p.next.Kind == lexer.KindKeywordSelf {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advanceAssert(lexer.KindDot, "."); err != nil {
			return nil, err
		}

		singleton = true
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if !isMethodNameToken(p.current.Kind) {
		return nil, p.errExpected("method name")
	}

	newName := p.current.Text

	if singleton {
		if err := p.advanceAssert(lexer.KindKeywordSelf, "self"); err != nil {
			return nil, err
		}
		if err := p.advanceAssert(lexer.KindDot, "."); err != nil {
			return nil, err
		}
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if !isMethodNameToken(p.current.Kind) {
		return nil, p.errExpected("method name")
	}

	oldName := p.current.Text

	return ast.NewMethodAlias(p.loc(start), singleton, newName, oldName), nil
}

func (p *Parser) parseAttr(start source.Position, kind ast.AttrKind) (*ast.Attr, error) {
	singleton := false
	if p.next.Kind == lexer.KindKeywordSelf {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advanceAssert(lexer.KindDot, "."); err != nil {
			return nil, err
		}

		singleton = true
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if !isMethodNameToken(p.current.Kind) {
		return nil, p.errExpected("attribute name")
	}

	name := p.current.Text

	ivarName := ""
	ivarSkip := false

	if p.next.Kind == lexer.KindLParen {
		if err := p.advance(); err != nil { // current == "("
			return nil, err
		}

		if p.next.Kind == lexer.KindRParen {
			if err := p.advance(); err != nil {
				return nil, err
			}

			ivarSkip = true
		} else {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.current.Kind != lexer.KindAIdent {
				return nil, p.errExpected("instance variable name")
			}

			ivarName = p.current.Text

			if err := p.advanceAssert(lexer.KindRParen, ")"); err != nil {
				return nil, err
			}
		}
	}

	if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	attr := ast.NewAttr(p.loc(start), kind, singleton, name, t)
	attr.IvarName = ivarName
	attr.IvarSkip = ivarSkip

	return attr, nil
}

func (p *Parser) parseVariable(start source.Position) (*ast.Variable, error) {
	kind := ast.VarInstance
	if p.current.Kind == lexer.KindA2Ident {
		kind = ast.VarClass
	}

	name := p.current.Text

	if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	return ast.NewVariable(p.loc(start), name, kind, t), nil
}

// parseSelfMember dispatches the three `self`-prefixed member shapes:
// `self?.def`, `self.@ivar`/`self.@@cvar`, and `self.def`.
func (p *Parser) parseSelfMember(start source.Position, allowOverload bool) (ast.Member, error) {
	if p.next.Kind == lexer.KindQuestion {
		if err := p.advance(); err != nil { // current == "?"
			return nil, err
		}
		if err := p.advanceAssert(lexer.KindDot, "."); err != nil {
			return nil, err
		}
		if err := p.advanceAssert(lexer.KindKeywordDef, "def"); err != nil {
			return nil, err
		}

		return p.parseMethodDefBody(start, ast.MethodSingletonInstance, allowOverload)
	}

	if err := p.advanceAssert(lexer.KindDot, "."); err != nil {
		return nil, err
	}

	switch p.next.Kind {
	case lexer.KindAIdent, lexer.KindA2Ident:
		if err := p.advance(); err != nil {
			return nil, err
		}

		kind := ast.VarClassInstance
		name := p.current.Text

		if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		t, err := p.parseType()
		if err != nil {
			return nil, err
		}

		return ast.NewVariable(p.loc(start), name, kind, t), nil

	case lexer.KindKeywordDef:
		if err := p.advance(); err != nil {
			return nil, err
		}

		return p.parseMethodDefBody(start, ast.MethodSingleton, allowOverload)

	default:
		return nil, p.errExpected("instance variable or method definition")
	}
}

func (p *Parser) parseMethodDefBody(start source.Position, kind ast.MethodKind, allowOverload bool) (*ast.MethodDef, error) {
	if err := p.advance(); err != nil { // current == method name
		return nil, err
	}
	if !isMethodNameToken(p.current.Kind) {
		return nil, p.errExpected("method name")
	}

	name := p.current.Text

	if err := p.advanceAssert(lexer.KindColon, ":"); err != nil {
		return nil, err
	}

	reset := kind != ast.MethodInstance
	p.scopes.push(reset)

	var types []*ast.MethodType

	for {
		if err := p.advance(); err != nil { // current == first token of a method type
			p.scopes.pop()
			return nil, err
		}

		mt, err := p.parseMethodType()
		if err != nil {
			p.scopes.pop()
			return nil, err
		}

		types = append(types, mt)

		if p.next.Kind != lexer.KindPipe {
			break
		}

		if err := p.advance(); err != nil { // current == "|"
			p.scopes.pop()
			return nil, err
		}
	}

	p.scopes.pop()

	overload := false
	if p.next.Kind == lexer.KindDotDotDot {
		if !allowOverload {
			return nil, p.errExpected("no overload marker in this context")
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		overload = true
	}

	return ast.NewMethodDef(p.loc(start), name, kind, types, overload), nil
}
