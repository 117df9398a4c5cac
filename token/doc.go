// Package token defines the pluggable path syntaxes used by querable.
//
// A Tokenizer splits a path into its leading step and remainder and
// parses position steps into array indices. Two reference strategies
// ship here: Default (dot separators, bracketed positions, "a.b.[2]")
// and Slash (slash-prefixed steps, bare integer positions, "/a/b/2").
// Third-party syntaxes plug in without touching the resolver.
package token
