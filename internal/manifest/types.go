package manifest

// Kind is the type tag of a variable as written in the manifest.
type Kind string

const (
	KindOption Kind = "option"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindNested Kind = "nested"
)

// Manifest is a template manifest: a name and the variables to ask for.
type Manifest struct {
	Name      string
	Variables []Variable
}

// Header carries the fields shared by every variable kind.
type Header struct {
	Name        string
	Description string
}

func (h Header) Head() Header { return h }

// Caption is the prompt text: the description, or the name when there is none.
func (h Header) Caption() string {
	if h.Description != "" {
		return h.Description
	}
	return h.Name
}

// Variable is one of OptionVariable, StringVariable, BoolVariable,
// NestedVariable or UnknownVariable.
type Variable interface {
	Head() Header
	Kind() Kind
}

type Option struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type OptionVariable struct {
	Header
	Options []Option
}

type StringVariable struct {
	Header
}

type BoolVariable struct {
	Header
}

type NestedVariable struct {
	Header
	Variables []Variable
}

// UnknownVariable keeps a descriptor whose type tag is not recognized.
// It is never prompted and always resolves to an absent answer.
type UnknownVariable struct {
	Header
	Type string
}

func (OptionVariable) Kind() Kind    { return KindOption }
func (StringVariable) Kind() Kind    { return KindString }
func (BoolVariable) Kind() Kind      { return KindBool }
func (NestedVariable) Kind() Kind    { return KindNested }
func (u UnknownVariable) Kind() Kind { return Kind(u.Type) }
