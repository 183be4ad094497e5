// Package walker asks the questions a manifest describes and collects the
// answers.
package walker

import (
	"context"
	"fmt"

	"github.com/mostlydev/promptflags/internal/answer"
	"github.com/mostlydev/promptflags/internal/manifest"
	"github.com/mostlydev/promptflags/internal/prompt"
)

const (
	Yes = "Yes"
	No  = "No"
)

var yesNo = []prompt.Item{{Label: Yes}, {Label: No}}

// Walk resolves vars in order and returns their answers keyed by name.
func Walk(ctx context.Context, p prompt.Prompter, vars []manifest.Variable) (*answer.Map, error) {
	out := answer.NewMap()
	for _, v := range vars {
		value, err := Resolve(ctx, p, v)
		if err != nil {
			return nil, err
		}
		out.Set(v.Head().Name, value)
	}
	return out, nil
}

// Resolve asks for a single variable. A dismissed question yields
// answer.Absent, except for bool variables where it counts as "No".
// Errors come only from the prompter itself.
func Resolve(ctx context.Context, p prompt.Prompter, v manifest.Variable) (answer.Value, error) {
	switch v := v.(type) {
	case manifest.OptionVariable:
		items := make([]prompt.Item, 0, len(v.Options))
		for _, opt := range v.Options {
			items = append(items, prompt.Item{Label: opt.Name, Detail: opt.Description})
		}
		label, ok, err := p.Pick(ctx, v.Caption(), items)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if !ok {
			return answer.Absent{}, nil
		}
		return answer.String(label), nil

	case manifest.StringVariable:
		text, ok, err := p.Input(ctx, v.Caption())
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if !ok {
			return answer.Absent{}, nil
		}
		return answer.String(text), nil

	case manifest.BoolVariable:
		label, _, err := p.Pick(ctx, v.Caption(), yesNo)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		return answer.Bool(label == Yes), nil

	case manifest.NestedVariable:
		label, _, err := p.Pick(ctx, gateCaption(v), yesNo)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if label != Yes {
			return answer.Absent{}, nil
		}
		children, err := Walk(ctx, p, v.Variables)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		return children, nil

	default:
		return answer.Absent{}, nil
	}
}

func gateCaption(v manifest.NestedVariable) string {
	if v.Description != "" {
		return v.Description
	}
	return fmt.Sprintf("Would you like to use %s?", v.Name)
}
