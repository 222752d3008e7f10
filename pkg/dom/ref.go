package dom

import "sync"

// Ref is an output handle the caller passes into a primitive. After the
// primitive runs it points at the concrete element that was produced. The
// ref does not own the element.
type Ref struct {
	mu    sync.RWMutex
	value *Element
}

// NewRef creates an empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the element in this ref. A nil ref is ignored.
func (r *Ref) Set(el *Element) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = el
}

// Current returns the referenced element, or nil if not yet set.
func (r *Ref) Current() *Element {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet reports whether the ref points at an element.
func (r *Ref) IsSet() bool {
	return r.Current() != nil
}
