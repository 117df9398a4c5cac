package token

import (
	"strconv"
	"strings"
)

// Default is the dot/bracket syntax. Steps are separated by '.',
// positions written "[N]":
//
//	[0].test.[1]
//	test.test.[1]
type Default struct{}

var _ Tokenizer = Default{}

// ParseIndex accepts "[N]" with N a base-10 non-negative integer
// fitting in int. No space is allowed inside the brackets.
func (Default) ParseIndex(step string) (int, error) {
	if len(step) <= 2 || step[0] != '[' || step[len(step)-1] != ']' {
		return 0, &IndexError{Input: step}
	}
	u, err := strconv.ParseUint(step[1:len(step)-1], 10, strconv.IntSize-1)
	if err != nil {
		return 0, &IndexError{Input: step, Err: err}
	}
	return int(u), nil
}

// Split cuts at the first '.'. Steps are not trimmed; a step that is
// whitespace-only after trimming is rejected.
func (Default) Split(path string) (State, error) {
	step, rest, found := strings.Cut(path, ".")
	if strings.TrimSpace(step) == "" {
		return State{}, &KeyError{Input: path, Err: ErrEmptyKey}
	}
	st := State{Step: step}
	if found {
		st.Rest = &rest
	}
	return st, nil
}
