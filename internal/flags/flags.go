// Package flags turns an answer map into command-line flag tokens.
package flags

import "github.com/mostlydev/promptflags/internal/answer"

// Build renders m as flag tokens in key order:
//
//	true   -> --name
//	false  -> --no-name
//	"v"    -> --name v
//	nested -> the nested flags, named parent.child
//
// Absent answers produce nothing.
func Build(m *answer.Map) []string {
	return BuildPrefixed(m, "")
}

// BuildPrefixed is Build with every flag name placed under prefix.
func BuildPrefixed(m *answer.Map, prefix string) []string {
	out := make([]string, 0, m.Len())
	return appendFlags(out, m, prefix)
}

func appendFlags(out []string, m *answer.Map, prefix string) []string {
	for key, value := range m.All() {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		switch v := value.(type) {
		case answer.Bool:
			if v {
				out = append(out, "--"+name)
			} else {
				out = append(out, "--no-"+name)
			}
		case answer.String:
			out = append(out, "--"+name, string(v))
		case *answer.Map:
			if v != nil {
				out = appendFlags(out, v, name)
			}
		case answer.Absent, nil:
		}
	}
	return out
}
