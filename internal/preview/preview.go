// Package preview draws element trees in the terminal with lipgloss. It is
// an approximation for quick inspection: backgrounds, text colors, bold
// weights, padding, margin and rounded corners are carried over; layout is
// block-stacked.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
)

var inlineTags = map[string]bool{
	"span": true, "a": true, "strong": true, "em": true, "small": true,
	"code": true, "label": true,
}

// Render returns the terminal rendition of n.
func Render(n dom.Node) string {
	switch v := n.(type) {
	case dom.Text:
		return string(v)
	case *dom.Element:
		if v == nil {
			return ""
		}
		return renderElement(v)
	default:
		return ""
	}
}

func renderElement(el *dom.Element) string {
	content := renderChildren(el.Children)
	return elementStyle(el).Render(content)
}

// renderChildren stacks block children vertically and runs text and inline
// children together on one line.
func renderChildren(children []dom.Node) string {
	var blocks []string
	var line strings.Builder

	flush := func() {
		if line.Len() > 0 {
			blocks = append(blocks, line.String())
			line.Reset()
		}
	}

	for _, child := range children {
		if el, ok := child.(*dom.Element); ok && el != nil && !inlineTags[el.Tag] {
			flush()
			blocks = append(blocks, renderElement(el))
			continue
		}
		line.WriteString(Render(child))
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func elementStyle(el *dom.Element) lipgloss.Style {
	style := lipgloss.NewStyle()

	if bg, ok := el.Style.Get("background-color"); ok && isTerminalColor(bg) {
		style = style.Background(lipgloss.Color(bg))
	}
	if fg, ok := el.Style.Get("color"); ok && isTerminalColor(fg) {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if isBold(el) {
		style = style.Bold(true)
	}

	if v, ok := el.Style.Get("padding"); ok {
		if p := ParseSpacing(v); !p.IsZero() {
			style = style.Padding(p.Top, p.Right, p.Bottom, p.Left)
		}
	}
	if v, ok := el.Style.Get("margin"); ok {
		if m := ParseSpacing(v); !m.IsZero() {
			style = style.Margin(m.Top, m.Right, m.Bottom, m.Left)
		}
	}

	if border, ok := borderFor(el); ok {
		style = style.BorderStyle(border)
	}
	return style
}

func borderFor(el *dom.Element) (lipgloss.Border, bool) {
	if v, ok := el.Style.Get("border-radius"); ok && parsePixels(v) > 0 {
		return lipgloss.RoundedBorder(), true
	}
	if el.Tag == "button" {
		if v, ok := el.Style.Get("border"); ok && strings.TrimSpace(v) == "none" {
			return lipgloss.Border{}, false
		}
		return lipgloss.NormalBorder(), true
	}
	return lipgloss.Border{}, false
}

func isBold(el *dom.Element) bool {
	switch el.Tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "strong":
		return true
	}
	w, ok := el.Style.Get("font-weight")
	if !ok {
		return false
	}
	switch strings.TrimSpace(w) {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

// isTerminalColor accepts hex colors and ANSI palette indexes; CSS keywords
// like transparent or white are left to the terminal default.
func isTerminalColor(v string) bool {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		return len(v) == 4 || len(v) == 7
	}
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
