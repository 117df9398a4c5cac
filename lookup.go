package querable

import "github.com/signadot/querable/token"

// Lookup resolves path against v with the tokenizer strategy T chosen
// at the call site:
//
//	v, err := querable.Lookup[token.Default](tree, "a.b.[2]")
//	v, err := querable.Lookup[token.Slash](tree, "/a/b/2")
//
// Strategies are stateless; the zero value of T is used. Callers
// selecting the syntax at runtime use Query directly.
func Lookup[T token.Tokenizer](v Queryable, path string) (Queryable, error) {
	var tok T
	return Query(v, path, tok)
}
