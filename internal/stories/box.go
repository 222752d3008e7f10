package stories

import (
	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
)

// BoxProps converts story args to Box props. Recognised keys: children, bg,
// p, m, borderRadius, as, className.
func BoxProps(a Args) primitives.BoxProps {
	props := primitives.BoxProps{
		Bg:           a.String("bg"),
		P:            a.Length("p"),
		M:            a.Length("m"),
		BorderRadius: a.Length("borderRadius"),
		As:           primitives.ElementKind(a.String("as")),
		ClassName:    a.String("className"),
	}
	if children := a.String("children"); children != "" {
		props.Children = []dom.Node{dom.Text(children)}
	}
	return props
}

// BoxMeta documents the Box primitive.
func BoxMeta() Meta {
	return Meta{
		Title:     "Primitives/Box",
		Component: "Box",
		Layout:    LayoutCentered,
		Tags:      []string{"autodocs"},
		ArgTypes: map[string]Control{
			"bg":           ControlColor,
			"p":            ControlNumber,
			"m":            ControlNumber,
			"borderRadius": ControlNumber,
		},
		Render: func(a Args) dom.Node {
			return primitives.Box(BoxProps(a))
		},
	}
}

// BoxStories returns the Box stories. Clicks on the AsButton story are
// reported through log.
func BoxStories(log *logger.Logger) []Story {
	return []Story{
		{
			Name: "Default",
			Args: Args{
				"children":     "This is a Box",
				"bg":           "#f0f0f0",
				"p":            16,
				"m":            8,
				"borderRadius": 4,
			},
		},
		{
			Name: "WithColor",
			Args: Args{
				"children":     "Colored Box",
				"bg":           "#3b82f6",
				"p":            24,
				"borderRadius": 8,
			},
			Render: func(a Args) dom.Node {
				props := BoxProps(a)
				props.Style = dom.StyleOf(
					dom.Declaration{Property: "color", Value: "white"},
					dom.Declaration{Property: "font-weight", Value: "bold"},
				)
				return primitives.Box(props)
			},
		},
		{
			Name: "Nested",
			Render: func(Args) dom.Node {
				heading := dom.NewElement("h3", dom.Text("Outer Box"))
				heading.Style.Set("margin", "0 0 12px 0")
				para := dom.NewElement("p", dom.Text("Inner Box - Boxes can be nested!"))
				para.Style.Set("margin", "0")

				inner := primitives.Box(primitives.BoxProps{
					Bg:           "#ffffff",
					P:            primitives.Px(16),
					BorderRadius: primitives.Px(4),
					Children:     []dom.Node{para},
				})
				return primitives.Box(primitives.BoxProps{
					Bg:           "#f3f4f6",
					P:            primitives.Px(20),
					BorderRadius: primitives.Px(8),
					Children:     []dom.Node{heading, inner},
				})
			},
		},
		{
			Name: "AsButton",
			Args: Args{
				"as":           "button",
				"children":     "I am a button!",
				"bg":           "#10b981",
				"p":            12,
				"borderRadius": 6,
			},
			Render: func(a Args) dom.Node {
				props := BoxProps(a)
				props.Style = dom.StyleOf(
					dom.Declaration{Property: "color", Value: "white"},
					dom.Declaration{Property: "border", Value: "none"},
					dom.Declaration{Property: "cursor", Value: "pointer"},
					dom.Declaration{Property: "font-weight", Value: "500"},
				)
				props.Handlers = map[dom.EventType]dom.Handler{
					dom.EventClick: func(dom.Event) {
						log.With("story", ID("Primitives/Box", "AsButton")).Info("Box as button clicked!")
					},
				}
				return primitives.Box(props)
			},
		},
	}
}

// Default returns a registry holding every built-in story.
func Default(log *logger.Logger) (*Registry, error) {
	reg := NewRegistry()
	if err := reg.Register(BoxMeta(), BoxStories(log)...); err != nil {
		return nil, err
	}
	return reg, nil
}
