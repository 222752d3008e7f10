package stories

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
)

func TestID(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		title, name, want string
	}{
		"camel case":      {title: "Primitives/Box", name: "WithColor", want: "primitives-box--with-color"},
		"single word":     {title: "Primitives/Box", name: "Default", want: "primitives-box--default"},
		"spaces":          {title: "Layout / Stack", name: "Two Columns", want: "layout-stack--two-columns"},
		"acronym":         {title: "Components/HTMLBlock", name: "AsButton", want: "components-html-block--as-button"},
		"trailing digits": {title: "Tokens", name: "Scale2x", want: "tokens--scale2x"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ID(tc.title, tc.name))
		})
	}
}

func TestArgs(t *testing.T) {
	t.Parallel()

	a := Args{"p": 16, "m": "1rem", "ratio": 0.5, "label": "hi", "flag": true}

	n, ok := a.Number("p")
	require.True(t, ok)
	assert.Equal(t, 16.0, n)
	_, ok = a.Number("label")
	assert.False(t, ok)

	assert.Equal(t, "16px", a.Length("p").Format())
	assert.Equal(t, "1rem", a.Length("m").Format())
	assert.Equal(t, "0.5px", a.Length("ratio").Format())
	assert.True(t, a.Length("missing").IsZero())
	assert.Equal(t, "", a.String("flag"))

	b := a.With("label", "changed")
	assert.Equal(t, "hi", a.String("label"))
	assert.Equal(t, "changed", b.String("label"))
}

func TestArgsNumberAcceptsEveryNumericKind(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"int": int(8), "int8": int8(8), "int16": int16(8), "int32": int32(8), "int64": int64(8),
		"uint": uint(8), "uint8": uint8(8), "uint16": uint16(8), "uint32": uint32(8), "uint64": uint64(8),
		"float32": float32(8), "float64": float64(8),
	}

	for kind, value := range values {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			a := Args{"p": value}
			n, ok := a.Number("p")
			require.True(t, ok)
			assert.Equal(t, 8.0, n)
			assert.Equal(t, "8px", a.Length("p").Format())
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	render := func(Args) dom.Node { return dom.Text("x") }
	reg := NewRegistry()

	require.NoError(t, reg.Register(Meta{Title: "A/Thing", Render: render}, Story{Name: "Second"}, Story{Name: "First"}))
	assert.Equal(t, 2, reg.Len())

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a-thing--first", list[0].ID)
	assert.Equal(t, LayoutPadded, list[0].Meta.Layout)

	var storyErr *dserrors.StoryError
	err := reg.Register(Meta{Title: "A/Thing", Render: render}, Story{Name: "Third"}, Story{Name: "First"})
	require.ErrorAs(t, err, &storyErr)
	assert.Equal(t, "a-thing--first", storyErr.StoryID)
	assert.Equal(t, 2, reg.Len(), "failed registration must not be partial")

	require.ErrorAs(t, reg.Register(Meta{}, Story{Name: "X"}), &storyErr)
	require.ErrorAs(t, reg.Register(Meta{Title: "B"}, Story{Name: "NoRender"}), &storyErr)
	require.ErrorAs(t, reg.Register(Meta{Title: "B", Render: render}, Story{}), &storyErr)
	require.ErrorAs(t, reg.Register(Meta{Title: "B", Render: render}, Story{Name: "Dup"}, Story{Name: "Dup"}), &storyErr)

	_, err = reg.Lookup("nope")
	require.ErrorAs(t, err, &storyErr)
}

func TestDefaultBoxStories(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	reg, err := Default(log)
	require.NoError(t, err)

	ids := make([]string, 0, reg.Len())
	for _, e := range reg.List() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{
		"primitives-box--as-button",
		"primitives-box--default",
		"primitives-box--nested",
		"primitives-box--with-color",
	}, ids)

	t.Run("default", func(t *testing.T) {
		e, err := reg.Lookup("primitives-box--default")
		require.NoError(t, err)
		assert.Equal(t, "Default", e.DisplayName())
		box := dom.FindByText(e.Node(), "This is a Box")
		require.NotNil(t, box)
		bg, _ := box.Style.Get("background-color")
		p, _ := box.Style.Get("padding")
		m, _ := box.Style.Get("margin")
		r, _ := box.Style.Get("border-radius")
		assert.Equal(t, []string{"#f0f0f0", "16px", "8px", "4px"}, []string{bg, p, m, r})
	})

	t.Run("with color", func(t *testing.T) {
		e, err := reg.Lookup("primitives-box--with-color")
		require.NoError(t, err)
		assert.Equal(t, "With Color", e.DisplayName())
		box := dom.FindByText(e.Node(), "Colored Box")
		require.NotNil(t, box)
		color, _ := box.Style.Get("color")
		assert.Equal(t, "white", color)
	})

	t.Run("nested", func(t *testing.T) {
		e, err := reg.Lookup("primitives-box--nested")
		require.NoError(t, err)
		root := e.Node()
		require.NotNil(t, dom.FindByText(root, "Outer Box"))
		require.NotNil(t, dom.FindByText(root, "Inner Box - Boxes can be nested!"))
		out, err := dom.RenderString(root)
		require.NoError(t, err)
		assert.Contains(t, out, "<h3 style=\"margin: 0 0 12px 0\">Outer Box</h3>")
	})

	t.Run("as button", func(t *testing.T) {
		e, err := reg.Lookup("primitives-box--as-button")
		require.NoError(t, err)
		box := dom.FindByText(e.Node(), "I am a button!")
		require.NotNil(t, box)
		assert.Equal(t, "button", box.Tag)
		require.True(t, box.Dispatch(dom.Event{Type: dom.EventClick}))
		assert.Contains(t, buf.String(), "Box as button clicked!")
	})
}

func TestBoxPropsFromArgs(t *testing.T) {
	t.Parallel()

	props := BoxProps(Args{"as": "span", "className": "a b", "p": "2rem"})
	assert.Equal(t, primitives.KindSpan, props.As)
	assert.Equal(t, "a b", props.ClassName)
	assert.Equal(t, "2rem", props.P.Format())
	assert.Empty(t, props.Children)
	assert.Equal(t, primitives.ElementKind(""), BoxProps(Args{}).As)
}
