package primitives

// ElementKind selects the element a primitive renders as. The zero value is
// KindDiv, a generic block container.
type ElementKind string

const (
	KindDiv     ElementKind = "div"
	KindButton  ElementKind = "button"
	KindSpan    ElementKind = "span"
	KindSection ElementKind = "section"
	KindArticle ElementKind = "article"
	KindHeader  ElementKind = "header"
	KindFooter  ElementKind = "footer"
	KindMain    ElementKind = "main"
	KindNav     ElementKind = "nav"
	KindAside   ElementKind = "aside"
	KindP       ElementKind = "p"
	KindA       ElementKind = "a"
	KindLabel   ElementKind = "label"
	KindLi      ElementKind = "li"
	KindUl      ElementKind = "ul"
	KindOl      ElementKind = "ol"
	KindForm    ElementKind = "form"
	KindH1      ElementKind = "h1"
	KindH2      ElementKind = "h2"
	KindH3      ElementKind = "h3"
	KindH4      ElementKind = "h4"
	KindH5      ElementKind = "h5"
	KindH6      ElementKind = "h6"
)

var knownKinds = map[ElementKind]struct{}{
	KindDiv: {}, KindButton: {}, KindSpan: {}, KindSection: {}, KindArticle: {},
	KindHeader: {}, KindFooter: {}, KindMain: {}, KindNav: {}, KindAside: {},
	KindP: {}, KindA: {}, KindLabel: {}, KindLi: {}, KindUl: {}, KindOl: {},
	KindForm: {}, KindH1: {}, KindH2: {}, KindH3: {}, KindH4: {}, KindH5: {},
	KindH6: {},
}

// Tag returns the element tag, defaulting to div.
func (k ElementKind) Tag() string {
	if k == "" {
		return string(KindDiv)
	}
	return string(k)
}

// Known reports whether the kind is one of the predefined element kinds.
func (k ElementKind) Known() bool {
	_, ok := knownKinds[ElementKind(k.Tag())]
	return ok
}
