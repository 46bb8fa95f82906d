// Package token provides tokenization of JSON text.
//
// [Tokenize] is a function for tokenizing bytes. It makes a counting
// pass with [Count] and then fills a slice of exactly that size; the
// last token is always [TEnd].
//
// Strings are checked but not unescaped during tokenization.
// [QuotedToString] unescapes them, and [AppendQuote] and [QuotedLen]
// produce the escaped form used by the writer.
package token
