package tokens

import (
	"sort"
	"strings"
)

// Group names one of the token maps.
type Group string

const (
	GroupColors     Group = "colors"
	GroupTypography Group = "typography"
	GroupSpacing    Group = "spacing"
)

// Groups lists the token groups in their canonical order.
func Groups() []Group {
	return []Group{GroupColors, GroupTypography, GroupSpacing}
}

// Tokens is the typed mapping of design values exposed to consumers.
type Tokens struct {
	Colors     map[string]string `yaml:"colors" validate:"dive,keys,token_name,endkeys,required,token_value"`
	Typography map[string]string `yaml:"typography" validate:"dive,keys,token_name,endkeys,required,token_value"`
	Spacing    map[string]string `yaml:"spacing" validate:"dive,keys,token_name,endkeys,required,token_value"`
}

// Default returns the placeholder token set: every group present, no values.
func Default() Tokens {
	return Tokens{
		Colors:     map[string]string{},
		Typography: map[string]string{},
		Spacing:    map[string]string{},
	}
}

// Normalize replaces nil groups with empty maps.
func (t Tokens) Normalize() Tokens {
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
	if t.Typography == nil {
		t.Typography = map[string]string{}
	}
	if t.Spacing == nil {
		t.Spacing = map[string]string{}
	}
	return t
}

// Group returns the map backing a group, or nil for an unknown group.
func (t Tokens) Group(g Group) map[string]string {
	switch g {
	case GroupColors:
		return t.Colors
	case GroupTypography:
		return t.Typography
	case GroupSpacing:
		return t.Spacing
	default:
		return nil
	}
}

// Lookup returns a token value by group and name.
func (t Tokens) Lookup(group Group, name string) (string, bool) {
	v, ok := t.Group(group)[name]
	return v, ok
}

// Len returns the total number of tokens.
func (t Tokens) Len() int {
	return len(t.Colors) + len(t.Typography) + len(t.Spacing)
}

var cssPrefix = map[Group]string{
	GroupColors:     "color",
	GroupTypography: "font",
	GroupSpacing:    "space",
}

// CSS renders the tokens as custom properties on :root, grouped in
// canonical order and sorted by name within each group.
func (t Tokens) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, g := range Groups() {
		values := t.Group(g)
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString("  --")
			b.WriteString(cssPrefix[g])
			b.WriteByte('-')
			b.WriteString(propertyName(name))
			b.WriteString(": ")
			b.WriteString(values[name])
			b.WriteString(";\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// propertyName maps a token name to its custom property suffix. Names that
// differ only in "." versus "-" share a property and are rejected by
// Validate.
func propertyName(name string) string {
	return strings.ReplaceAll(name, ".", "-")
}
