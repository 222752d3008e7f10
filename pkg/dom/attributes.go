package dom

import (
	"sort"
	"strings"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

// Attributes holds pass-through attributes forwarded unchanged to the
// rendered element. Classes, inline style and event handlers have dedicated
// fields on Element and are rejected here.
type Attributes map[string]string

var knownAttributes = map[string]struct{}{
	"id": {}, "title": {}, "role": {}, "tabindex": {}, "lang": {}, "dir": {},
	"hidden": {}, "draggable": {}, "contenteditable": {}, "spellcheck": {},
	"accesskey": {}, "translate": {}, "inputmode": {},
	"href": {}, "target": {}, "rel": {}, "download": {},
	"type": {}, "name": {}, "value": {}, "disabled": {}, "autofocus": {},
	"for": {}, "form": {}, "placeholder": {}, "readonly": {}, "required": {},
	"charset": {}, "content": {}, "src": {}, "alt": {}, "width": {}, "height": {},
}

// Names returns the attribute names in sorted order.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Validate checks every attribute name against the known attribute set.
// data-* and aria-* names are always accepted.
func (a Attributes) Validate(tag string) error {
	for _, name := range a.Names() {
		if err := validateAttribute(tag, name); err != nil {
			return err
		}
	}
	return nil
}

func validateAttribute(tag, name string) error {
	lower := strings.ToLower(name)
	switch {
	case lower != name:
		return dserrors.NewRenderError(tag, name, "attribute names must be lowercase")
	case name == "class":
		return dserrors.NewRenderError(tag, name, "use Element.Classes for class names")
	case name == "style":
		return dserrors.NewRenderError(tag, name, "use Element.Style for inline styles")
	case strings.HasPrefix(name, "on"):
		return dserrors.NewRenderError(tag, name, "use Element.On for event handlers")
	case strings.HasPrefix(name, "data-") && len(name) > len("data-"):
		return nil
	case strings.HasPrefix(name, "aria-") && len(name) > len("aria-"):
		return nil
	}
	if _, ok := knownAttributes[name]; !ok {
		return dserrors.NewRenderError(tag, name, "unknown attribute")
	}
	return nil
}
