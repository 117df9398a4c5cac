// Package encode renders node trees as YAML or JSON text, optionally
// colorized for terminals.
package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/querable/format"
	"github.com/signadot/querable/node"
)

type EncState struct {
	format format.Format
	indent int
	Color  func(t node.Type, a ColorAttr, s string) string
}

// Encode writes n to w in the configured format. The default is block
// YAML with two-space indentation and no color.
func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, Color: noColor}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if es.format.IsJSON() {
		es.encodeJSON(buf, n, 0)
	} else {
		es.encodeYAML(buf, n, 0)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// MustString renders n without color, for diffs and tests.
func MustString(n *node.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

func (es *EncState) scalar(n *node.Node, quoted bool) string {
	lit := n.Literal()
	if n.Type == node.StringType && (quoted || yamlNeedsQuote(lit)) {
		lit = strconv.Quote(lit)
	}
	return es.Color(n.Type, ValueColor, lit)
}

// yamlNeedsQuote reports whether a string scalar would be misread as
// another YAML value or structure when written plain.
func yamlNeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "null", "true", "false", "yes", "no", "~":
		return true
	}
	if strings.ContainsAny(s, ":#{}[]\"'\n") {
		return true
	}
	if c := s[0]; c == '-' || c == ' ' || (c >= '0' && c <= '9') {
		return true
	}
	return s[len(s)-1] == ' '
}

func (es *EncState) encodeYAML(buf *bytes.Buffer, n *node.Node, depth int) {
	switch n.Type {
	case node.ObjectType:
		if len(n.Fields) == 0 {
			buf.WriteString("{}")
			return
		}
		for i, f := range n.Fields {
			if i > 0 || depth > 0 {
				buf.WriteByte('\n')
				buf.WriteString(es.pad(depth))
			}
			buf.WriteString(es.Color(node.ObjectType, FieldColor, f))
			buf.WriteString(es.Color(node.ObjectType, SepColor, ":"))
			v := n.Values[i]
			if v.Type.IsLeaf() || len(v.Values) == 0 {
				buf.WriteByte(' ')
				es.encodeYAML(buf, v, depth+1)
			} else {
				es.encodeYAML(buf, v, depth+1)
			}
		}
	case node.ArrayType:
		if len(n.Values) == 0 {
			buf.WriteString("[]")
			return
		}
		for i, v := range n.Values {
			if i > 0 || depth > 0 {
				buf.WriteByte('\n')
				buf.WriteString(es.pad(depth))
			}
			buf.WriteString(es.Color(node.ArrayType, SepColor, "-"))
			if v.Type.IsLeaf() || len(v.Values) == 0 {
				buf.WriteByte(' ')
				es.encodeYAML(buf, v, depth+1)
			} else {
				es.encodeYAML(buf, v, depth+1)
			}
		}
	default:
		buf.WriteString(es.scalar(n, false))
	}
}

func (es *EncState) encodeJSON(buf *bytes.Buffer, n *node.Node, depth int) {
	switch n.Type {
	case node.ObjectType:
		if len(n.Fields) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString(es.Color(node.ObjectType, SepColor, "{"))
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteString(es.Color(node.ObjectType, SepColor, ","))
			}
			buf.WriteByte('\n')
			buf.WriteString(es.pad(depth + 1))
			buf.WriteString(es.Color(node.ObjectType, FieldColor, strconv.Quote(f)))
			buf.WriteString(es.Color(node.ObjectType, SepColor, ":"))
			buf.WriteByte(' ')
			es.encodeJSON(buf, n.Values[i], depth+1)
		}
		buf.WriteByte('\n')
		buf.WriteString(es.pad(depth))
		buf.WriteString(es.Color(node.ObjectType, SepColor, "}"))
	case node.ArrayType:
		if len(n.Values) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString(es.Color(node.ArrayType, SepColor, "["))
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteString(es.Color(node.ArrayType, SepColor, ","))
			}
			buf.WriteByte('\n')
			buf.WriteString(es.pad(depth + 1))
			es.encodeJSON(buf, v, depth+1)
		}
		buf.WriteByte('\n')
		buf.WriteString(es.pad(depth))
		buf.WriteString(es.Color(node.ArrayType, SepColor, "]"))
	case node.StringType:
		buf.WriteString(es.Color(node.StringType, ValueColor, strconv.Quote(n.String)))
	default:
		buf.WriteString(es.Color(n.Type, ValueColor, n.Literal()))
	}
}
