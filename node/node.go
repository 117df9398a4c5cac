// Package node provides a concrete tree value for querable lookups.
//
// A Node is a recursive tagged union over null, bool, number, string,
// object, and array values, with fields populated according to Type.
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i]; ArrayType nodes use Values alone. Numbers carry either
// Int64 or Float64. Nodes implement the querable.Queryable contract,
// returning detached clones on descent.
package node

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// FromAny builds a node tree from plain Go values of the shapes
// produced by decoding YAML or JSON: nil, bool, string, integers,
// floats, []any, and map[string]any.
func FromAny(v any) (*Node, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint64:
		if v > 1<<63-1 {
			return nil, fmt.Errorf("number %d overflows int64", v)
		}
		return FromInt(int64(v)), nil
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case []any:
		vs := make([]*Node, len(v))
		for i, e := range v {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		res := &Node{
			Type:   ObjectType,
			Fields: make([]string, 0, len(v)),
			Values: make([]*Node, 0, len(v)),
		}
		for _, key := range slices.Sorted(maps.Keys(v)) {
			n, err := FromAny(v[key])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot build node from %T", v)
	}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.String = n.String
	dst.Bool = n.Bool
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Fields != nil {
		dst.Fields = slices.Clone(n.Fields)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, nv := range n.Values {
			dstI := &Node{}
			nv.CloneTo(dstI)
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Field returns the value under key in an object node.
func (n *Node) Field(key string) (*Node, bool) {
	if n.Type != ObjectType {
		return nil, false
	}
	for i, f := range n.Fields {
		if f == key {
			return n.Values[i], true
		}
	}
	return nil, false
}

// Interface converts the node tree back to plain Go values.
func (n *Node) Interface() any {
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return nil
	case ArrayType:
		vs := make([]any, len(n.Values))
		for i, nv := range n.Values {
			vs[i] = nv.Interface()
		}
		return vs
	case ObjectType:
		m := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			m[f] = n.Values[i].Interface()
		}
		return m
	default:
		panic("type")
	}
}

// Literal renders a leaf node as its scalar text.
func (n *Node) Literal() string {
	switch n.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(n.Bool)
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
		}
		return ""
	default:
		return "<" + n.Type.String() + ">"
	}
}
