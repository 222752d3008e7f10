package dom

import "strings"

// Walk visits every element under n in document order, parents before
// children. Returning false from visit stops the walk.
func Walk(n Node, visit func(*Element) bool) {
	walk(n, visit)
}

func walk(n Node, visit func(*Element) bool) bool {
	el, ok := n.(*Element)
	if !ok || el == nil {
		return true
	}
	if !visit(el) {
		return false
	}
	for _, child := range el.Children {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

// FindAll returns every element under n matching pred, in document order.
func FindAll(n Node, pred func(*Element) bool) []*Element {
	var out []*Element
	Walk(n, func(el *Element) bool {
		if pred(el) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// FindByText returns the first element whose own text (its direct text
// children, whitespace-normalised) equals text. Nested elements' text does
// not count toward their parent.
func FindByText(n Node, text string) *Element {
	want := normalizeSpace(text)
	var found *Element
	Walk(n, func(el *Element) bool {
		if OwnText(el) == want {
			found = el
			return false
		}
		return true
	})
	return found
}

// OwnText returns the normalised concatenation of the element's direct
// text children.
func OwnText(el *Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range el.Children {
		if t, ok := child.(Text); ok {
			b.WriteString(string(t))
			b.WriteByte(' ')
		}
	}
	return normalizeSpace(b.String())
}

// TextContent returns all text under n, in document order.
func TextContent(n Node) string {
	var b strings.Builder
	textContent(&b, n)
	return b.String()
}

func textContent(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Text:
		b.WriteString(string(v))
	case *Element:
		if v == nil {
			return
		}
		for _, child := range v.Children {
			textContent(b, child)
		}
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
