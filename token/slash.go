package token

import (
	"strconv"
	"strings"
)

// Slash is the slash syntax. Every step, key or position, carries a
// leading '/'; positions are bare integers:
//
//	/0/1/2/3
//	/test/test/1/test/test/2
type Slash struct{}

var _ Tokenizer = Slash{}

func (Slash) ParseIndex(step string) (int, error) {
	u, err := strconv.ParseUint(step, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &IndexError{Input: step, Err: err}
	}
	return int(u), nil
}

// Split requires the '/' prefix and cuts at the next '/'. The
// remainder keeps its own '/' prefix so recursive splits see a
// well-formed path. "//" is an empty step and an error, not a skip.
func (Slash) Split(path string) (State, error) {
	if path == "" {
		return State{}, &KeyError{Input: path, Err: ErrEmptyKey}
	}
	if path[0] != '/' {
		// steps are always slash-prefixed
		return State{}, &KeyError{Input: path}
	}
	step, rest, found := strings.Cut(path[1:], "/")
	if strings.TrimSpace(step) == "" {
		return State{}, &KeyError{Input: path, Err: ErrEmptyKey}
	}
	st := State{Step: step}
	if found {
		rest = "/" + rest
		st.Rest = &rest
	}
	return st, nil
}
