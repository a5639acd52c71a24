// Package parser implements a recursive-descent parser for RBS-style
// structural type signatures.
//
// The parser sits downstream of pkg/lexer, turning its token stream
// into the internal/ast node set. It carries a three-token lookahead
// window (current/next/next2) rather than the usual single-token peek,
// because disambiguating record fields from hash literals and keyword
// parameters from positional types both require looking two tokens
// past the current one before committing to a grammar production.
//
// Entry points:
//
//	ParseType        parses a single type expression.
//	ParseMethodType   parses a method signature: an optional bare
//	                  type-parameter list, a parameter list, an
//	                  optional block clause, and a return type.
//	ParseSignature    parses a whole declaration file: constants,
//	                  globals, aliases, interfaces, modules and
//	                  classes, each with its nested members.
//
// Type-variable scoping is tracked by a stack (scope.go) rather than a
// symbol table, since RBS scoping is purely lexical and nests exactly
// along the declaration/method-body structure: class and interface
// type parameters start a fresh scope, instance method bodies extend
// the enclosing class's scope, and singleton method bodies start fresh
// again.
//
// There is no error recovery. The first lexer or syntax error
// encountered anywhere in the three-token window is returned
// immediately; callers that want best-effort diagnostics over a whole
// file should run the parser once per declaration and collect results
// themselves.
package parser
