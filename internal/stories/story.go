// Package stories declares named example configurations of components.
// Each story pairs a fixed set of args with a renderer; the storybook build
// and the terminal browser consume them for visual inspection.
package stories

import (
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
)

// Control is the kind of input an arg is edited with in a documentation UI.
type Control string

const (
	ControlColor  Control = "color"
	ControlNumber Control = "number"
	ControlText   Control = "text"
	ControlSelect Control = "select"
)

// Layout controls how a story is framed on its documentation page.
type Layout string

const (
	LayoutCentered   Layout = "centered"
	LayoutPadded     Layout = "padded"
	LayoutFullscreen Layout = "fullscreen"
)

// RenderFunc renders a story from its args.
type RenderFunc func(Args) dom.Node

// Meta describes the component a group of stories documents.
type Meta struct {
	Title     string
	Component string
	Layout    Layout
	Tags      []string
	ArgTypes  map[string]Control
	// Render is the default renderer for stories without their own.
	Render RenderFunc
}

// Story is one named configuration of a component.
type Story struct {
	Name   string
	Args   Args
	Render RenderFunc
}

// Entry is a registered story resolved against its Meta.
type Entry struct {
	ID    string
	Meta  Meta
	Story Story
}

// DisplayName is the human readable story name, "WithColor" becoming
// "With Color".
func (e Entry) DisplayName() string {
	return strings.Join(splitWords(e.Story.Name), " ")
}

// Node renders the story.
func (e Entry) Node() dom.Node {
	render := e.Story.Render
	if render == nil {
		render = e.Meta.Render
	}
	if render == nil {
		return nil
	}
	return render(e.Story.Args)
}

// Args is the arg bag passed to a story renderer.
type Args map[string]any

// String returns a string arg, or "" when missing or not a string.
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Number returns a numeric arg.
func (a Args) Number(key string) (float64, bool) {
	switch v := a[key].(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// Length returns a numeric-or-string arg as a primitives.Length.
func (a Args) Length(key string) primitives.Length {
	if n, ok := a.Number(key); ok {
		return primitives.Px(n)
	}
	if s := a.String(key); s != "" {
		return primitives.Raw(s)
	}
	return primitives.Length{}
}

// With returns a copy of the args with key set to value.
func (a Args) With(key string, value any) Args {
	out := make(Args, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[key] = value
	return out
}

// ID builds the canonical story identifier: "Primitives/Box" and
// "WithColor" give "primitives-box--with-color".
func ID(title, name string) string {
	return kebab(title) + "--" + kebab(name)
}

func kebab(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// splitWords breaks on non-alphanumerics and lower-to-upper transitions.
func splitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && i > 0 && len(current) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}
