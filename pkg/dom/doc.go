// Package dom is the host rendering target for the design system.
//
// Primitives build trees of *Element and Text values. A tree can be queried
// the way a testing library queries a browser document (FindByText,
// TextContent, HasClass) and serialised to HTML with Render. Validation of
// tags and attributes happens at render time, never while the tree is built,
// so primitives stay free of error handling:
//
//	ref := dom.NewRef()
//	el := dom.NewElement("div", dom.Text("Hello"))
//	ref.Set(el)
//	out, err := dom.RenderString(el)
//
// Event handlers attached with On are kept on the element and invoked with
// Dispatch; they are never written to the HTML output.
package dom
