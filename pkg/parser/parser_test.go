package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/literal"
	"github.com/sigparse/sig/internal/source"
)

func parseType(t *testing.T, input string) ast.Type {
	t.Helper()

	buf := source.NewBuffer("test.sig", []byte(input), "")

	p, err := New(buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ty, err := p.ParseType()
	if err != nil {
		t.Fatalf("ParseType(%q): %v", input, err)
	}

	return ty
}

func TestParseTypeRoundTrip(t *testing.T) {
	tests := []string{
		"Integer",
		"Integer | String",
		"Integer & Comparable",
		"Integer?",
		"::Foo::Bar[Integer, String]",
		"singleton(Integer)",
		"[Integer, String]",
		"{ x: Integer, y: String }",
		"^(Integer) -> void",
		"nil",
		"bool",
		"self",
		"42",
		"true",
		"\"hello\"",
		":sym",
	}

	for _, input := range tests {
		got := ast.String(parseType(t, input))
		require.Equalf(t, input, got, "String(ParseType(%q))", input)
	}
}

func TestParseTypeDoubleQuoteEscapes(t *testing.T) {
	ty := parseType(t, `"\a\b\e\f\n\r\s\t\v\""`)

	lit, ok := ty.(*ast.LiteralType)
	if !ok {
		t.Fatalf("got %T, want *ast.LiteralType", ty)
	}

	s, ok := lit.Value.(literal.String)
	if !ok {
		t.Fatalf("got %T, want literal.String", lit.Value)
	}

	want := "\a\b\x1b\f\n\r \t\v\""
	if string(s) != want {
		t.Fatalf("got %q, want %q", string(s), want)
	}
}

func TestParseTypeDoubleQuoteUnknownEscapePassesThrough(t *testing.T) {
	ty := parseType(t, `"\z\0\\"`)

	lit, ok := ty.(*ast.LiteralType)
	if !ok {
		t.Fatalf("got %T, want *ast.LiteralType", ty)
	}

	s, ok := lit.Value.(literal.String)
	if !ok {
		t.Fatalf("got %T, want literal.String", lit.Value)
	}

	want := "z0\\"
	if string(s) != want {
		t.Fatalf("got %q, want %q", string(s), want)
	}
}

func TestParseTypeUnionOfIntersectionPrecedence(t *testing.T) {
	ty := parseType(t, "Integer & String | Float")

	u, ok := ty.(*ast.UnionType)
	if !ok {
		t.Fatalf("got %T, want *ast.UnionType", ty)
	}
	if len(u.Types) != 2 {
		t.Fatalf("got %d union members, want 2", len(u.Types))
	}
	if _, ok := u.Types[0].(*ast.IntersectionType); !ok {
		t.Fatalf("first union member is %T, want *ast.IntersectionType", u.Types[0])
	}
}

func TestParseTypeVariableInMethodScope(t *testing.T) {
	buf := source.NewBuffer("test.sig", []byte("[T] (T) -> T"), "")

	p, err := New(buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mt, err := p.ParseMethodType()
	if err != nil {
		t.Fatalf("ParseMethodType: %v", err)
	}

	if len(mt.TypeParams) != 1 || mt.TypeParams[0].Name != "T" {
		t.Fatalf("got type params %+v, want [T]", mt.TypeParams)
	}

	if _, ok := mt.Func.Required[0].Type.(*ast.VariableType); !ok {
		t.Fatalf("required param type is %T, want *ast.VariableType", mt.Func.Required[0].Type)
	}
	if _, ok := mt.Func.Return.(*ast.VariableType); !ok {
		t.Fatalf("return type is %T, want *ast.VariableType", mt.Func.Return)
	}
}

func TestParseMethodTypeRoundTrip(t *testing.T) {
	tests := []string{
		"() -> void",
		"(Integer, ?String) -> bool",
		"(Integer x, *String rest) -> void",
		"(k: Integer, ?o: String, **bool rest) -> void",
		"() { (Integer) -> void } -> void",
		"() ?{ (Integer) -> void } -> void",
	}

	for _, input := range tests {
		buf := source.NewBuffer("test.sig", []byte(input), "")

		p, err := New(buf)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		mt, err := p.ParseMethodType()
		require.NoErrorf(t, err, "ParseMethodType(%q)", input)

		got := ast.MethodTypeString(mt)
		require.Equalf(t, input, got, "MethodTypeString(ParseMethodType(%q))", input)
	}
}

func TestParseMethodTypeWithTypeParams(t *testing.T) {
	buf := source.NewBuffer("test.sig", []byte("[A, B] (A, B) -> [A, B]"), "")

	p, err := New(buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mt, err := p.ParseMethodType()
	if err != nil {
		t.Fatalf("ParseMethodType: %v", err)
	}

	want := "[A, B] (A, B) -> [A, B]"
	if got := ast.MethodTypeString(mt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseSignatureDeclarations(t *testing.T) {
	input := `
class Foo[T] < Object
  def bar: (T) -> String
end

interface _Comparable
  def <=>: (untyped) -> Integer?
end

module Bar[T] : _Comparable
end

FOO: Integer
$global: String
type id[T] = T
`

	buf := source.NewBuffer("test.sig", []byte(input), "")

	p, err := New(buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	decls, err := p.ParseSignature()
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}

	if len(decls) != 6 {
		t.Fatalf("got %d decls, want 6", len(decls))
	}

	cls, ok := decls[0].(*ast.Class)
	if !ok {
		t.Fatalf("decls[0] is %T, want *ast.Class", decls[0])
	}
	if len(cls.Members) != 1 {
		t.Fatalf("got %d class members, want 1", len(cls.Members))
	}

	iface, ok := decls[1].(*ast.Interface)
	if !ok {
		t.Fatalf("decls[1] is %T, want *ast.Interface", decls[1])
	}
	if len(iface.Members) != 1 {
		t.Fatalf("got %d interface members, want 1", len(iface.Members))
	}

	mod, ok := decls[2].(*ast.Module)
	if !ok {
		t.Fatalf("decls[2] is %T, want *ast.Module", decls[2])
	}
	if len(mod.SelfTypes) != 1 {
		t.Fatalf("got %d self types, want 1", len(mod.SelfTypes))
	}

	if _, ok := decls[3].(*ast.Constant); !ok {
		t.Fatalf("decls[3] is %T, want *ast.Constant", decls[3])
	}
	if _, ok := decls[4].(*ast.Global); !ok {
		t.Fatalf("decls[4] is %T, want *ast.Global", decls[4])
	}
	if _, ok := decls[5].(*ast.Alias); !ok {
		t.Fatalf("decls[5] is %T, want *ast.Alias", decls[5])
	}
}

func TestParseSignatureLocationSubChildren(t *testing.T) {
	input := "class Foo\nend\n"

	buf := source.NewBuffer("test.sig", []byte(input), "")

	p, err := New(buf)
	require.NoError(t, err)

	decls, err := p.ParseSignature()
	require.NoError(t, err)
	require.Len(t, decls, 1)

	cls := decls[0].(*ast.Class)

	keyword, ok := cls.Loc().Required("keyword")
	require.True(t, ok)
	require.Equal(t, "class", input[keyword.Start.Byte:keyword.End.Byte])

	name, ok := cls.Loc().Required("name")
	require.True(t, ok)
	require.Equal(t, "Foo", input[name.Start.Byte:name.End.Byte])

	end, ok := cls.Loc().Required("end")
	require.True(t, ok)
	require.Equal(t, "end", input[end.Start.Byte:end.End.Byte])
}

func TestParseSignatureInterfaceRejectsDataMembers(t *testing.T) {
	tests := []string{
		"interface _Foo\n  attr_reader foo: Integer\nend\n",
		"interface _Foo\n  @foo: Integer\nend\n",
		"interface _Foo\n  public\nend\n",
	}

	for _, input := range tests {
		buf := source.NewBuffer("test.sig", []byte(input), "")

		p, err := New(buf)
		require.NoError(t, err)

		_, err = p.ParseSignature()
		require.Errorf(t, err, "expected a syntax error for %q", input)
	}
}

func TestParseSignatureCommentContiguity(t *testing.T) {
	input := "# attached\nFOO: Integer\n\n# not attached, blank line before decl\n\nBAR: Integer\n"

	buf := source.NewBuffer("test.sig", []byte(input), "")

	p, err := New(buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	decls, err := p.ParseSignature()
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}

	if len(decls) != 2 {
		t.Fatalf("got %d decls, want 2", len(decls))
	}

	foo := decls[0].(*ast.Constant)
	if foo.Comment == nil {
		t.Fatalf("FOO: want attached comment, got none")
	}

	bar := decls[1].(*ast.Constant)
	if bar.Comment != nil {
		t.Fatalf("BAR: want no attached comment (blank line breaks contiguity), got %q", bar.Comment.String)
	}
}
