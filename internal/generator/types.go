package generator

import "strings"

// EnvCall represents one accessor call-site extracted from source.
type EnvCall struct {
	Key            string
	Aliases        []string
	DefaultLiteral string
	TypeLiteral    string
	Line           int
	Desc           *Description
}

// Description is the documentation block attached to a call-site, with
// directive overrides split out from the prose.
type Description struct {
	Lines   []string
	Default string
	Type    string
	Section string
}

// knownTypes are the type names displayed as-is.
var knownTypes = map[string]bool{
	"int":   true,
	"float": true,
	"str":   true,
	"bool":  true,
}

// typeAliases maps accessor parser names to their display type.
var typeAliases = map[string]string{
	"Int":         "int",
	"Float":       "float",
	"Str":         "str",
	"String":      "str",
	"Bool":        "bool",
	"ParseBool":   "bool",
	"bool_parser": "bool",
}

// normalizeType maps a type literal to its display name, stripping any
// package qualifier first. The second result is false for literals outside
// the recognized set; those are displayed verbatim.
func normalizeType(literal string) (string, bool) {
	name := literal
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if knownTypes[name] {
		return name, true
	}
	if t, ok := typeAliases[name]; ok {
		return t, true
	}
	return literal, false
}

// Type returns the display type of the variable: a description directive
// wins over the call's type argument, and a call with neither is a plain
// string.
func (c *EnvCall) Type() string {
	t, _ := c.typeWithWarning()
	return t
}

func (c *EnvCall) typeWithWarning() (string, bool) {
	if c.Desc != nil && c.Desc.Type != "" {
		return c.Desc.Type, true
	}
	if c.TypeLiteral != "" {
		return normalizeType(c.TypeLiteral)
	}
	return "str", true
}

// Default returns the effective default value: a description directive wins
// over the call's default argument. Empty means the variable is required.
func (c *EnvCall) Default() string {
	if c.Desc != nil && c.Desc.Default != "" {
		return c.Desc.Default
	}
	return c.DefaultLiteral
}

// IsRequired reports whether the variable has no default at all.
func (c *EnvCall) IsRequired() bool {
	return c.Default() == ""
}

// Section returns the group the variable renders under. Required variables
// always land in REQUIRED, regardless of any section directive. The empty
// string is the unnamed group, shown as Miscellaneous.
func (c *EnvCall) Section() string {
	if c.IsRequired() {
		return requiredSection
	}
	if c.Desc != nil && c.Desc.Section != "" {
		return c.Desc.Section
	}
	return ""
}
