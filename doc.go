// Package querable resolves string path expressions against in-memory
// tree values.
//
// # Overview
//
// A path such as "a.b.[2]" or "/a/b/2" names a walk through a tree of
// nested dictionaries and arrays with opaque leaves. The package is
// generic over the value representation: any type implementing
// Queryable can be walked, and any type implementing token.Tokenizer
// can define the path syntax. The node package provides a ready-made
// tree value; the token package ships the two reference syntaxes.
//
// # Resolution
//
// Query drives a recursive descent: it classifies the current value as
// dictionary-like, array-like, or a leaf, asks the tokenizer for the
// leading step of the path, descends one level, and recurses on the
// remainder. Resolution is read-only and synchronous; results are
// detached clones, never references into the caller's tree. Concurrent
// lookups against a tree are safe as long as the tree itself is not
// mutated during a call.
//
// # Errors
//
// Every failure is one of a closed set of typed errors: KeyNotExistError,
// IndexNotExistError, EmptyPathError, UnknownTypeError, TypeError, or a
// token.IndexError/token.KeyError from the tokenizer. The first error in
// a descent propagates unchanged; nothing is retried or recovered.
//
//	v, err := querable.Lookup[token.Default](tree, "a.b.[2]")
package querable
