package manifest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type rawManifest struct {
	Name      string        `yaml:"name"`
	Variables []rawVariable `yaml:"variables"`
}

type rawVariable struct {
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type"`
	Description string        `yaml:"description"`
	Options     []Option      `yaml:"options"`
	Variables   []rawVariable `yaml:"variables"`
}

// Parse decodes a YAML (or JSON) manifest. Only the type tag is checked;
// fields that do not belong to a variable's kind are dropped.
func Parse(r io.Reader) (*Manifest, error) {
	var raw rawManifest
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("parse manifest YAML: %w", err)
	}

	return &Manifest{
		Name:      raw.Name,
		Variables: convertVariables(raw.Variables),
	}, nil
}

func convertVariables(raws []rawVariable) []Variable {
	out := make([]Variable, 0, len(raws))
	for _, raw := range raws {
		out = append(out, convertVariable(raw))
	}
	return out
}

func convertVariable(raw rawVariable) Variable {
	h := Header{Name: raw.Name, Description: raw.Description}
	switch Kind(raw.Type) {
	case KindOption:
		return OptionVariable{Header: h, Options: raw.Options}
	case KindString:
		return StringVariable{Header: h}
	case KindBool:
		return BoolVariable{Header: h}
	case KindNested:
		return NestedVariable{Header: h, Variables: convertVariables(raw.Variables)}
	default:
		return UnknownVariable{Header: h, Type: raw.Type}
	}
}
