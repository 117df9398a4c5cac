package node

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Decode parses one YAML document into a node tree. JSON documents
// decode through the same path, JSON being a subset of YAML.
func Decode(data []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return FromAny(v)
}
