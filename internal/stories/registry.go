package stories

import (
	"sort"
	"strings"
	"sync"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

// Registry holds registered stories keyed by ID.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds the stories of one component. Nothing is registered if any
// story is invalid or its ID is already taken.
func (r *Registry) Register(meta Meta, stories ...Story) error {
	if strings.TrimSpace(meta.Title) == "" {
		return dserrors.NewStoryError("", "meta title is required")
	}
	if meta.Layout == "" {
		meta.Layout = LayoutPadded
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]Entry, len(stories))
	for _, s := range stories {
		if strings.TrimSpace(s.Name) == "" {
			return dserrors.NewStoryError(kebab(meta.Title), "story name is required")
		}
		id := ID(meta.Title, s.Name)
		if _, exists := r.entries[id]; exists {
			return dserrors.NewStoryError(id, "story already registered")
		}
		if _, exists := pending[id]; exists {
			return dserrors.NewStoryError(id, "story already registered")
		}
		if s.Render == nil && meta.Render == nil {
			return dserrors.NewStoryError(id, "story has no renderer")
		}
		pending[id] = Entry{ID: id, Meta: meta, Story: s}
	}

	for id, e := range pending {
		r.entries[id] = e
	}
	return nil
}

// Lookup returns the story with the given ID.
func (r *Registry) Lookup(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return Entry{}, dserrors.NewStoryError(id, "story not found")
	}
	return e, nil
}

// List returns all stories sorted by ID.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
