package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrScriptExhausted is returned when a Scripted prompter is asked more
// questions than it has responses for.
var ErrScriptExhausted = errors.New("scripted responses exhausted")

type responseKind int

const (
	respChoose responseKind = iota
	respType
	respDismiss
)

// Response is one canned answer for a Scripted prompter.
type Response struct {
	kind  responseKind
	value string
}

// Choose answers a Pick with label.
func Choose(label string) Response { return Response{kind: respChoose, value: label} }

// Type answers an Input with text.
func Type(text string) Response { return Response{kind: respType, value: text} }

// Dismiss dismisses whichever question comes next.
func Dismiss() Response { return Response{kind: respDismiss} }

func (r Response) String() string {
	switch r.kind {
	case respChoose:
		return fmt.Sprintf("choose %q", r.value)
	case respType:
		return fmt.Sprintf("type %q", r.value)
	default:
		return "dismiss"
	}
}

// Scripted replays responses in order and records every caption it was
// shown in Asked.
type Scripted struct {
	responses []Response
	Asked     []string
}

func NewScripted(responses ...Response) *Scripted {
	return &Scripted{responses: responses}
}

// Remaining is the number of responses not yet consumed.
func (s *Scripted) Remaining() int {
	return len(s.responses)
}

func (s *Scripted) next(ctx context.Context, caption string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	s.Asked = append(s.Asked, caption)
	if len(s.responses) == 0 {
		return Response{}, fmt.Errorf("%w at %q", ErrScriptExhausted, caption)
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r, nil
}

func (s *Scripted) Pick(ctx context.Context, caption string, items []Item) (string, bool, error) {
	r, err := s.next(ctx, caption)
	if err != nil {
		return "", false, err
	}
	switch r.kind {
	case respDismiss:
		return "", false, nil
	case respChoose:
		if !slices.ContainsFunc(items, func(item Item) bool { return item.Label == r.value }) {
			return "", false, fmt.Errorf("scripted choice %q is not offered by %q", r.value, caption)
		}
		return r.value, true, nil
	default:
		return "", false, fmt.Errorf("scripted %s cannot answer choice %q", r, caption)
	}
}

func (s *Scripted) Input(ctx context.Context, caption string) (string, bool, error) {
	r, err := s.next(ctx, caption)
	if err != nil {
		return "", false, err
	}
	switch r.kind {
	case respDismiss:
		return "", false, nil
	case respType:
		return r.value, true, nil
	default:
		return "", false, fmt.Errorf("scripted %s cannot answer input %q", r, caption)
	}
}

type scriptEntry struct {
	Choose  *string `yaml:"choose"`
	Type    *string `yaml:"type"`
	Dismiss bool    `yaml:"dismiss"`
}

// ParseScript reads a YAML list of responses:
//
//	- choose: dev
//	- type: my-app
//	- dismiss: true
func ParseScript(r io.Reader) ([]Response, error) {
	var entries []scriptEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse answer script: %w", err)
	}

	out := make([]Response, 0, len(entries))
	for i, e := range entries {
		set := 0
		if e.Choose != nil {
			set++
		}
		if e.Type != nil {
			set++
		}
		if e.Dismiss {
			set++
		}
		if set != 1 {
			return nil, fmt.Errorf("answer script entry %d: want exactly one of choose, type, dismiss", i+1)
		}

		switch {
		case e.Choose != nil:
			out = append(out, Choose(*e.Choose))
		case e.Type != nil:
			out = append(out, Type(*e.Type))
		default:
			out = append(out, Dismiss())
		}
	}
	return out, nil
}
