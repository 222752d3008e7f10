package dom

import "strings"

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of inline CSS declarations. Properties are unique;
// setting an existing property replaces its value in place.
type Style struct {
	decls []Declaration
}

// StyleOf builds a Style from declarations, later entries winning.
func StyleOf(decls ...Declaration) Style {
	var s Style
	s.Merge(decls...)
	return s
}

// Set assigns a property, keeping its original position if already present.
func (s *Style) Set(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	for i := range s.decls {
		if s.decls[i].Property == property {
			s.decls[i].Value = value
			return
		}
	}
	s.decls = append(s.decls, Declaration{Property: property, Value: value})
}

// Merge applies declarations in order.
func (s *Style) Merge(decls ...Declaration) {
	for _, d := range decls {
		s.Set(d.Property, d.Value)
	}
}

// Get returns the value of a property.
func (s Style) Get(property string) (string, bool) {
	property = strings.ToLower(strings.TrimSpace(property))
	for _, d := range s.decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Declarations returns a copy of the declarations in order.
func (s Style) Declarations() []Declaration {
	return append([]Declaration(nil), s.decls...)
}

// Len returns the number of declarations.
func (s Style) Len() int {
	return len(s.decls)
}

// String renders the declarations as an inline style attribute value.
func (s Style) String() string {
	parts := make([]string, 0, len(s.decls))
	for _, d := range s.decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}
