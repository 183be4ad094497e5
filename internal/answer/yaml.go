package answer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse reads a YAML mapping of answers. Key order is preserved.
// Booleans become Bool, null becomes Absent, mappings nest, and every other
// scalar is taken verbatim as a String.
func Parse(r io.Reader) (*Map, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return NewMap(), nil
		}
		return nil, fmt.Errorf("parse answers YAML: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewMap(), nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return NewMap(), nil
	}
	return decodeMap(root, "")
}

func decodeMap(node *yaml.Node, path string) (*Map, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("answers%s: expected a mapping (line %d)", pathSuffix(path), node.Line)
	}
	m := NewMap()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		child := joinPath(path, key)
		v, err := decodeValue(node.Content[i+1], child)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	return m, nil
}

func decodeValue(node *yaml.Node, path string) (Value, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMap(node, path)
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return Absent{}, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, fmt.Errorf("answers%s: %w", pathSuffix(path), err)
			}
			return Bool(b), nil
		default:
			return String(node.Value), nil
		}
	default:
		return nil, fmt.Errorf("answers%s: unsupported value on line %d (want bool, string, or mapping)", pathSuffix(path), node.Line)
	}
}

// MarshalYAML renders the map as an ordered YAML mapping. Absent answers
// are written as null.
func (m *Map) MarshalYAML() (interface{}, error) {
	return m.node(), nil
}

func (m *Map) node() *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, v := range m.All() {
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode(v),
		)
	}
	return out
}

func valueNode(v Value) *yaml.Node {
	switch v := v.(type) {
	case Bool:
		value := "false"
		if v {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	case *Map:
		if v == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		return v.node()
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func pathSuffix(path string) string {
	if path == "" {
		return ""
	}
	return " at " + path
}
