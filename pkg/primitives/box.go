package primitives

import (
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
)

// BoxProps configures a Box. Every field is optional.
type BoxProps struct {
	// Children is the content rendered inside the box.
	Children []dom.Node
	// Bg is the background color; empty means transparent.
	Bg string
	// P is the padding.
	P Length
	// M is the margin.
	M Length
	// BorderRadius is the corner radius.
	BorderRadius Length
	// As is the element kind to render; defaults to div.
	As ElementKind
	// Ref, when set, is pointed at the rendered element.
	Ref *dom.Ref

	// ClassName is a space-separated class list forwarded verbatim.
	ClassName string
	// Style holds inline declarations applied after the computed ones.
	Style dom.Style
	// Attrs are pass-through attributes such as id, role, data-* or aria-*.
	Attrs dom.Attributes
	// Handlers are attached to the rendered element.
	Handlers map[dom.EventType]dom.Handler
}

// Box renders a single styleable container. It is a pure function of its
// props: nothing is validated and no state is kept between calls.
func Box(props BoxProps) *dom.Element {
	el := dom.NewElement(props.As.Tag(), props.Children...)

	bg := props.Bg
	if bg == "" {
		bg = "transparent"
	}
	el.Style.Set("background-color", bg)
	el.Style.Set("padding", props.P.Format())
	el.Style.Set("margin", props.M.Format())
	el.Style.Set("border-radius", props.BorderRadius.Format())
	el.Style.Set("box-sizing", "border-box")
	el.Style.Merge(props.Style.Declarations()...)

	el.AddClass(props.ClassName)
	el.Attrs = props.Attrs.Clone()
	for event, handler := range props.Handlers {
		el.On(event, handler)
	}

	props.Ref.Set(el)
	return el
}

// BoxText is a convenience for a Box whose only child is text.
func BoxText(text string, props BoxProps) *dom.Element {
	props.Children = append([]dom.Node{dom.Text(text)}, props.Children...)
	return Box(props)
}
