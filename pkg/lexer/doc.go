// Package lexer turns a source.Buffer into a stream of Tokens.
//
// Token kinds cover single-spelling punctuation, a fixed keyword table,
// the identifier classes (lower, upper, underscore-upper, global, ivar,
// cvar, bang, eq, quoted, operator-method), integer/string/symbol
// literals, annotations, and comments.
//
// Several leading bytes are ambiguous and are resolved by a dedicated
// sub-lexer: '-', '+', '*', '.', '=', '<', '>', '!', '#', '[', ':', '$',
// '@', '"', '\'', '%' and '`'. The ':' sub-lexer in particular has to
// disambiguate the full space of Ruby-style operator-method spellings
// (':+@', ':[]=', ':<=>', ...) from a bare ':' or a '::' namespace
// separator.
//
// A Lexer is single-threaded and non-reentrant over its internal state;
// create one per Buffer.
package lexer
