package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigparse/sig/internal/source"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()

	buf := source.NewBuffer("test.sig", []byte(input), "")
	l := New(buf)

	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}

		toks = append(toks, tok)
		if tok.IsEOF() {
			return toks
		}
	}
}

func TestNextTokenDeclaration(t *testing.T) {
	input := "class Foo[T] < Object\n  def bar: (Integer x) -> String\nend\n"

	tests := []struct {
		kind Kind
		text string
	}{
		{KindKeywordClass, "class"},
		{KindUIdent, "Foo"},
		{KindLBracket, "["},
		{KindUIdent, "T"},
		{KindRBracket, "]"},
		{KindLT, "<"},
		{KindUIdent, "Object"},
		{KindKeywordDef, "def"},
		{KindLIdent, "bar"},
		{KindColon, ":"},
		{KindLParen, "("},
		{KindUIdent, "Integer"},
		{KindLIdent, "x"},
		{KindRParen, ")"},
		{KindArrow, "->"},
		{KindUIdent, "String"},
		{KindKeywordEnd, "end"},
		{KindEOF, ""},
	}

	toks := lexAll(t, input)

	require.GreaterOrEqual(t, len(toks), len(tests))

	for i, tt := range tests {
		require.Equalf(t, tt.kind, toks[i].Kind, "tests[%d] kind", i)
		require.Equalf(t, tt.text, toks[i].Text, "tests[%d] text", i)
	}
}

func TestOperatorSpellings(t *testing.T) {
	input := "+ - * ** -@ +@ == === <=> <= >= << >> != !~ [] []="

	tests := []struct {
		kind Kind
		text string
	}{
		{KindOperator, "+"},
		{KindOperator, "-"},
		{KindStar, "*"},
		{KindStarStar, "**"},
		{KindOperator, "-@"},
		{KindOperator, "+@"},
		{KindOperator, "=="},
		{KindOperator, "==="},
		{KindOperator, "<=>"},
		{KindOperator, "<="},
		{KindOperator, ">="},
		{KindOperator, "<<"},
		{KindOperator, ">>"},
		{KindOperator, "!="},
		{KindOperator, "!~"},
		{KindOperator, "[]"},
		{KindOperator, "[]="},
		{KindEOF, ""},
	}

	toks := lexAll(t, input)

	require.GreaterOrEqual(t, len(toks), len(tests))

	for i, tt := range tests {
		require.Equalf(t, tt.kind, toks[i].Kind, "tests[%d]", i)
		require.Equalf(t, tt.text, toks[i].Text, "tests[%d]", i)
	}
}

func TestSymbolSubLexer(t *testing.T) {
	input := ":foo :+@ :[]= :<=> :@ivar :$global :'quoted sym' ::"

	tests := []struct {
		kind Kind
		text string
	}{
		{KindSymbol, "foo"},
		{KindSymbol, "+@"},
		{KindSymbol, "[]="},
		{KindSymbol, "<=>"},
		{KindSymbol, "@ivar"},
		{KindSymbol, "$global"},
		{KindSymbol, "'quoted sym'"},
		{KindColonColon, "::"},
		{KindEOF, ""},
	}

	toks := lexAll(t, input)

	require.GreaterOrEqual(t, len(toks), len(tests))

	for i, tt := range tests {
		require.Equalf(t, tt.kind, toks[i].Kind, "tests[%d]", i)
		require.Equalf(t, tt.text, toks[i].Text, "tests[%d]", i)
	}
}

func TestIdentifierClasses(t *testing.T) {
	input := "foo Bar _Baz $glob @ivar @@cvar foo! foo= `weird-name`"

	tests := []struct {
		kind Kind
		text string
	}{
		{KindLIdent, "foo"},
		{KindUIdent, "Bar"},
		{KindULIdent, "_Baz"},
		{KindGIdent, "$glob"},
		{KindAIdent, "@ivar"},
		{KindA2Ident, "@@cvar"},
		{KindBangIdent, "foo!"},
		{KindEqIdent, "foo="},
		{KindQIdent, "weird-name"},
		{KindEOF, ""},
	}

	toks := lexAll(t, input)

	require.GreaterOrEqual(t, len(toks), len(tests))

	for i, tt := range tests {
		require.Equalf(t, tt.kind, toks[i].Kind, "tests[%d]", i)
		require.Equalf(t, tt.text, toks[i].Text, "tests[%d]", i)
	}
}

func TestNumbersAndStrings(t *testing.T) {
	input := `123 1_000 "hello \"world\"" 'it is fine'`

	toks := lexAll(t, input)

	if toks[0].Kind != KindInteger || toks[0].Text != "123" {
		t.Fatalf("unexpected token 0: %+v", toks[0])
	}
	if toks[1].Kind != KindInteger || toks[1].Text != "1000" {
		t.Fatalf("unexpected token 1: %+v", toks[1])
	}
	if toks[2].Kind != KindDQString {
		t.Fatalf("unexpected token 2 kind: %+v", toks[2])
	}
	if toks[3].Kind != KindSQString {
		t.Fatalf("unexpected token 3 kind: %+v", toks[3])
	}
}

func TestKeywords(t *testing.T) {
	input := "bool bot class instance interface nil self singleton top void " +
		"type unchecked in out end def include extend prepend alias module " +
		"attr_reader attr_writer attr_accessor public private true false untyped"

	expected := []Kind{
		KindKeywordBool, KindKeywordBot, KindKeywordClass, KindKeywordInstance,
		KindKeywordInterface, KindKeywordNil, KindKeywordSelf, KindKeywordSingleton,
		KindKeywordTop, KindKeywordVoid, KindKeywordType, KindKeywordUnchecked,
		KindKeywordIn, KindKeywordOut, KindKeywordEnd, KindKeywordDef,
		KindKeywordInclude, KindKeywordExtend, KindKeywordPrepend, KindKeywordAlias,
		KindKeywordModule, KindKeywordAttrReader, KindKeywordAttrWriter,
		KindKeywordAttrAccessor, KindKeywordPublic, KindKeywordPrivate,
		KindKeywordTrue, KindKeywordFalse, KindKeywordUntyped, KindEOF,
	}

	toks := lexAll(t, input)

	require.GreaterOrEqual(t, len(toks), len(expected))

	for i, k := range expected {
		require.Equalf(t, k, toks[i].Kind, "tests[%d]", i)
	}
}

func TestLineCommentAttachmentFlag(t *testing.T) {
	input := "# leading comment\nfoo # trailing\nbar"

	toks := lexAll(t, input)

	if toks[0].Kind != KindLineComment {
		t.Fatalf("expected leading comment to be a line comment, got %v", toks[0].Kind)
	}
	if toks[1].Kind != KindLIdent || toks[1].Text != "foo" {
		t.Fatalf("unexpected token 1: %+v", toks[1])
	}
	if toks[2].Kind != KindComment {
		t.Fatalf("expected trailing comment to be a mid-line comment, got %v", toks[2].Kind)
	}
	if toks[3].Kind != KindLIdent || toks[3].Text != "bar" {
		t.Fatalf("unexpected token 3: %+v", toks[3])
	}
}

func TestAnnotation(t *testing.T) {
	toks := lexAll(t, "%a{returns an Integer}")

	if toks[0].Kind != KindAnnotation {
		t.Fatalf("expected annotation, got %v", toks[0].Kind)
	}
	if toks[0].Text != "returns an Integer" {
		t.Fatalf("unexpected annotation body: %q", toks[0].Text)
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	buf := source.NewBuffer("test.sig", []byte(`"unterminated`), "")
	l := New(buf)

	_, err := l.Next()
	if err == nil {
		t.Fatal("expected a lex error for an unterminated string")
	}

	if _, ok := err.(*source.LexError); !ok {
		t.Fatalf("expected *source.LexError, got %T", err)
	}
}
