package token

import (
	"errors"
	"fmt"
)

// ErrEmptyKey marks an empty or whitespace-only step where a key was
// required.
var ErrEmptyKey = errors.New("empty key")

// IndexError reports a position step that could not be parsed as an
// array index. Input carries the offending step text; Err the
// underlying strconv error when the step had valid delimiters but bad
// integer text.
type IndexError struct {
	Input string
	Err   error
}

func (e *IndexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad index %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("bad index %q", e.Input)
}

func (e *IndexError) Unwrap() error { return e.Err }

// KeyError reports a malformed path: an empty or whitespace-only step
// (Err wraps ErrEmptyKey) or broken separator syntax (Err nil, Input
// carries the path).
type KeyError struct {
	Input string
	Err   error
}

func (e *KeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad path %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("bad path %q", e.Input)
}

func (e *KeyError) Unwrap() error { return e.Err }
