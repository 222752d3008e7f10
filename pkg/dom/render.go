package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

var knownTags = map[string]struct{}{
	"html": {}, "head": {}, "body": {}, "title": {}, "meta": {}, "link": {},
	"div": {}, "span": {}, "button": {}, "section": {}, "article": {},
	"header": {}, "footer": {}, "main": {}, "nav": {}, "aside": {},
	"p": {}, "a": {}, "label": {}, "ul": {}, "ol": {}, "li": {}, "form": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"pre": {}, "code": {}, "strong": {}, "em": {}, "small": {},
	"img": {}, "input": {}, "br": {}, "hr": {},
	"table": {}, "thead": {}, "tbody": {}, "tr": {}, "th": {}, "td": {},
}

var voidTags = map[string]struct{}{
	"br": {}, "hr": {}, "img": {}, "input": {}, "meta": {}, "link": {},
}

// IsKnownTag reports whether the renderer accepts the tag.
func IsKnownTag(tag string) bool {
	_, ok := knownTags[tag]
	return ok
}

// Render writes the HTML serialisation of n to w.
func Render(w io.Writer, n Node) error {
	node, err := toHTML(n)
	if err != nil {
		return err
	}
	if node == nil {
		return nil
	}
	return html.Render(w, node)
}

// RenderString returns the HTML serialisation of n.
func RenderString(n Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDocument writes a full HTML document with a doctype. root is
// normally an <html> element.
func RenderDocument(w io.Writer, root *Element) error {
	node, err := toHTML(root)
	if err != nil {
		return err
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	if node != nil {
		doc.AppendChild(node)
	}
	return html.Render(w, doc)
}

func toHTML(n Node) (*html.Node, error) {
	if isNil(n) {
		return nil, nil
	}

	switch v := n.(type) {
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(v)}, nil
	case *Element:
		return elementToHTML(v)
	default:
		return nil, dserrors.NewRenderError("", "", "unsupported node type")
	}
}

func elementToHTML(el *Element) (*html.Node, error) {
	tag := strings.TrimSpace(el.Tag)
	if tag == "" {
		return nil, dserrors.NewRenderError(el.Tag, "", "missing tag")
	}
	if !IsKnownTag(tag) {
		return nil, dserrors.NewRenderError(tag, "", "unsupported element kind")
	}
	if err := el.Attrs.Validate(tag); err != nil {
		return nil, err
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(el.Classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(el.Classes, " ")})
	}
	if el.Style.Len() > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: el.Style.String()})
	}
	for _, name := range el.Attrs.Names() {
		node.Attr = append(node.Attr, html.Attribute{Key: name, Val: el.Attrs[name]})
	}

	if _, void := voidTags[tag]; void {
		if len(el.Children) > 0 {
			return nil, dserrors.NewRenderError(tag, "", "void element cannot have children")
		}
		return node, nil
	}

	for _, child := range el.Children {
		c, err := toHTML(child)
		if err != nil {
			return nil, err
		}
		if c != nil {
			node.AppendChild(c)
		}
	}
	return node, nil
}
