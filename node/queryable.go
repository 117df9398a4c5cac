package node

import (
	"fmt"

	"github.com/signadot/querable"
)

var _ querable.Queryable = (*Node)(nil)

// QueryKind classifies the node: objects are dictionaries, arrays are
// arrays, everything else is a leaf.
func (n *Node) QueryKind() (querable.QueryKind, bool) {
	switch n.Type {
	case ObjectType:
		return querable.DictionaryKind, true
	case ArrayType:
		return querable.ArrayKind, true
	default:
		return 0, false
	}
}

// QueryDict returns a clone of the value under key.
func (n *Node) QueryDict(key string) (querable.Queryable, error) {
	switch n.Type {
	case ObjectType:
		v, ok := n.Field(key)
		if !ok {
			return nil, &querable.KeyNotExistError{Key: key}
		}
		return v.Clone(), nil
	case ArrayType:
		return nil, &querable.TypeError{
			Path:     key,
			Expected: querable.ArrayKind,
			Found:    querable.DictionaryKind,
		}
	default:
		return nil, &querable.UnknownTypeError{Path: key}
	}
}

// QueryArray returns a clone of the value at idx.
func (n *Node) QueryArray(idx int) (querable.Queryable, error) {
	switch n.Type {
	case ArrayType:
		if idx < 0 || idx >= len(n.Values) {
			return nil, &querable.IndexNotExistError{Index: idx}
		}
		return n.Values[idx].Clone(), nil
	case ObjectType:
		return nil, &querable.TypeError{
			Path:     fmt.Sprintf("[%d]", idx),
			Expected: querable.DictionaryKind,
			Found:    querable.ArrayKind,
		}
	default:
		return nil, &querable.UnknownTypeError{Path: fmt.Sprintf("[%d]", idx)}
	}
}
