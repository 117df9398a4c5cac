package querable

import "fmt"

// KeyNotExistError reports a key absent in a dictionary-like value.
type KeyNotExistError struct {
	Key string
}

func (e *KeyNotExistError) Error() string {
	return fmt.Sprintf("key %q does not exist", e.Key)
}

// IndexNotExistError reports a position out of range in an array-like
// value.
type IndexNotExistError struct {
	Index int
}

func (e *IndexNotExistError) Error() string {
	return fmt.Sprintf("index %d does not exist", e.Index)
}

// EmptyPathError reports a tokenizer handing the resolver an empty step
// without an error while a non-leaf value still expected one. The
// shipped strategies reject such paths themselves; this arises only
// from custom tokenizers.
type EmptyPathError struct {
	Kind QueryKind
}

func (e *EmptyPathError) Error() string {
	return fmt.Sprintf("empty path querying %s", e.Kind)
}

// UnknownTypeError reports an attempt to descend into a leaf.
type UnknownTypeError struct {
	Path string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("cannot descend into leaf with path %q", e.Path)
}

// TypeError reports a step whose syntax implied one value shape while
// the value had another.
type TypeError struct {
	Path     string
	Expected QueryKind
	Found    QueryKind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch at %q: expected %s, found %s",
		e.Path, e.Expected, e.Found)
}
