package dom

import "strings"

// Node is anything that can appear in an element tree. The set of
// implementations is closed: *Element and Text.
type Node interface {
	isNode()
}

// Text is a literal text node. Its content is escaped when rendered.
type Text string

func (Text) isNode() {}

// Element is a single rendered element with its tag, classes, inline style,
// pass-through attributes, event handlers and children.
type Element struct {
	Tag      string
	Classes  []string
	Style    Style
	Attrs    Attributes
	Children []Node

	handlers map[EventType]Handler
}

func (*Element) isNode() {}

// NewElement creates an element with the given tag and children.
func NewElement(tag string, children ...Node) *Element {
	el := &Element{Tag: tag}
	el.Append(children...)
	return el
}

// Append adds children in order, dropping nil nodes.
func (e *Element) Append(children ...Node) *Element {
	for _, child := range children {
		if isNil(child) {
			continue
		}
		e.Children = append(e.Children, child)
	}
	return e
}

// AddClass appends class names. Each argument may hold several
// space-separated names; duplicates are ignored.
func (e *Element) AddClass(names ...string) *Element {
	for _, name := range names {
		for _, class := range strings.Fields(name) {
			if !e.HasClass(class) {
				e.Classes = append(e.Classes, class)
			}
		}
	}
	return e
}

// HasClass reports whether class is present on the element's class list.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// SetAttr sets a pass-through attribute.
func (e *Element) SetAttr(name, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = Attributes{}
	}
	e.Attrs[name] = value
	return e
}

// Attr returns a pass-through attribute value.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	value, ok := e.Attrs[name]
	return value, ok
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	el, ok := n.(*Element)
	return ok && el == nil
}
