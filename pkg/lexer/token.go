package lexer

import "github.com/sigparse/sig/internal/source"

// Kind is the closed set of token kinds: a Null/EOF pair, single-spelling
// punctuation, keywords, identifier classes, literal classes, and comment
// classes.
type Kind int

const (
	KindNull Kind = iota
	KindEOF

	// Punctuation with a single, unambiguous spelling.
	KindLParen
	KindRParen
	KindColon
	KindColonColon
	KindLBracket
	KindRBracket
	KindLBrace
	KindRBrace
	KindCaret
	KindArrow    // ->
	KindFatArrow // =>
	KindComma
	KindPipe
	KindAmp
	KindStar     // *
	KindStarStar // **
	KindDot
	KindDotDotDot // ...
	KindQuestion
	KindLT // <, used only by the `class C < Super` clause
	KindEq // =, used only by the `type name = T` alias clause

	// Keywords, rewritten from a plain lower-initial identifier by the
	// keyword table.
	KindKeywordBool
	KindKeywordBot
	KindKeywordClass
	KindKeywordInstance
	KindKeywordInterface
	KindKeywordNil
	KindKeywordSelf
	KindKeywordSingleton
	KindKeywordTop
	KindKeywordVoid
	KindKeywordType
	KindKeywordUnchecked
	KindKeywordIn
	KindKeywordOut
	KindKeywordEnd
	KindKeywordDef
	KindKeywordInclude
	KindKeywordExtend
	KindKeywordPrepend
	KindKeywordAlias
	KindKeywordModule
	KindKeywordAttrReader
	KindKeywordAttrWriter
	KindKeywordAttrAccessor
	KindKeywordPublic
	KindKeywordPrivate
	KindKeywordTrue
	KindKeywordFalse
	KindKeywordUntyped

	// Identifier classes.
	KindLIdent    // lower-initial identifier, not a keyword
	KindUIdent    // upper-initial identifier
	KindULIdent   // underscore-then-upper identifier (interface names)
	KindGIdent    // $global
	KindAIdent    // @ivar
	KindA2Ident   // @@cvar
	KindBangIdent // identifier!
	KindEqIdent   // identifier=
	KindQIdent    // `quoted identifier`
	KindOperator  // operator-method spelling: +, -@, ==, [], etc.

	// Literal classes.
	KindInteger
	KindSymbol
	KindSQString
	KindDQString
	KindAnnotation

	// Comment classes.
	KindComment     // mid-line comment, discarded by the parser
	KindLineComment // first token of its line, eligible for attachment
)

var kindNames = map[Kind]string{
	KindNull: "null", KindEOF: "EOF",
	KindLParen: "(", KindRParen: ")", KindColon: ":", KindColonColon: "::",
	KindLBracket: "[", KindRBracket: "]", KindLBrace: "{", KindRBrace: "}",
	KindCaret: "^", KindArrow: "->", KindFatArrow: "=>", KindComma: ",",
	KindPipe: "|", KindAmp: "&", KindStar: "*", KindStarStar: "**",
	KindDot: ".", KindDotDotDot: "...", KindQuestion: "?", KindLT: "<", KindEq: "=",
	KindKeywordBool: "bool", KindKeywordBot: "bot", KindKeywordClass: "class",
	KindKeywordInstance: "instance", KindKeywordInterface: "interface",
	KindKeywordNil: "nil", KindKeywordSelf: "self", KindKeywordSingleton: "singleton",
	KindKeywordTop: "top", KindKeywordVoid: "void", KindKeywordType: "type",
	KindKeywordUnchecked: "unchecked", KindKeywordIn: "in", KindKeywordOut: "out",
	KindKeywordEnd: "end", KindKeywordDef: "def", KindKeywordInclude: "include",
	KindKeywordExtend: "extend", KindKeywordPrepend: "prepend", KindKeywordAlias: "alias",
	KindKeywordModule: "module", KindKeywordAttrReader: "attr_reader",
	KindKeywordAttrWriter: "attr_writer", KindKeywordAttrAccessor: "attr_accessor",
	KindKeywordPublic: "public", KindKeywordPrivate: "private",
	KindKeywordTrue: "true", KindKeywordFalse: "false", KindKeywordUntyped: "untyped",
	KindLIdent: "identifier", KindUIdent: "class/module name", KindULIdent: "interface name",
	KindGIdent: "global variable", KindAIdent: "instance variable", KindA2Ident: "class variable",
	KindBangIdent: "identifier!", KindEqIdent: "identifier=", KindQIdent: "quoted identifier",
	KindOperator: "operator method name",
	KindInteger:  "integer", KindSymbol: "symbol", KindSQString: "string",
	KindDQString: "string", KindAnnotation: "annotation",
	KindComment: "comment", KindLineComment: "line comment",
}

// String renders a human description of k, used in syntax error messages.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown token"
}

// keywords maps a lower-initial identifier's exact spelling to the keyword
// Kind it rewrites to.
var keywords = map[string]Kind{
	"bool":          KindKeywordBool,
	"bot":           KindKeywordBot,
	"class":         KindKeywordClass,
	"instance":      KindKeywordInstance,
	"interface":     KindKeywordInterface,
	"nil":           KindKeywordNil,
	"self":          KindKeywordSelf,
	"singleton":     KindKeywordSingleton,
	"top":           KindKeywordTop,
	"void":          KindKeywordVoid,
	"type":          KindKeywordType,
	"unchecked":     KindKeywordUnchecked,
	"in":            KindKeywordIn,
	"out":           KindKeywordOut,
	"end":           KindKeywordEnd,
	"def":           KindKeywordDef,
	"include":       KindKeywordInclude,
	"extend":        KindKeywordExtend,
	"prepend":       KindKeywordPrepend,
	"alias":         KindKeywordAlias,
	"module":        KindKeywordModule,
	"attr_reader":   KindKeywordAttrReader,
	"attr_writer":   KindKeywordAttrWriter,
	"attr_accessor": KindKeywordAttrAccessor,
	"public":        KindKeywordPublic,
	"private":       KindKeywordPrivate,
	"true":          KindKeywordTrue,
	"false":         KindKeywordFalse,
	"untyped":       KindKeywordUntyped,
}

// lookupKeyword rewrites a plain identifier spelling to its keyword Kind,
// reporting ok=false for anything not in the table (an ordinary KindLIdent).
func lookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// Token is a single lexical unit: a Kind, the exact source text it spells
// (Text), and the Range it occupies. Tokens are value types.
type Token struct {
	Kind  Kind
	Text  string
	Range source.Range
}

// Null is the sentinel empty token.
var Null = Token{Kind: KindNull, Range: source.NullRange}

// IsEOF reports whether t is the end-of-file token.
func (t Token) IsEOF() bool { return t.Kind == KindEOF }
