package dom

// EventType names an event an element can respond to.
type EventType string

const (
	EventClick      EventType = "click"
	EventFocus      EventType = "focus"
	EventBlur       EventType = "blur"
	EventKeyDown    EventType = "keydown"
	EventKeyUp      EventType = "keyup"
	EventMouseEnter EventType = "mouseenter"
	EventMouseLeave EventType = "mouseleave"
	EventSubmit     EventType = "submit"
)

// Event is delivered to handlers by Dispatch.
type Event struct {
	Type   EventType
	Target *Element
	Key    string
}

// Handler responds to an event.
type Handler func(Event)

// On registers the handler for an event type, replacing any previous one.
// A nil handler removes the registration.
func (e *Element) On(t EventType, h Handler) *Element {
	if h == nil {
		delete(e.handlers, t)
		return e
	}
	if e.handlers == nil {
		e.handlers = make(map[EventType]Handler)
	}
	e.handlers[t] = h
	return e
}

// Handler returns the registered handler for an event type.
func (e *Element) Handler(t EventType) (Handler, bool) {
	if e == nil {
		return nil, false
	}
	h, ok := e.handlers[t]
	return h, ok
}

// Dispatch delivers ev to the element's handler for ev.Type. It reports
// whether a handler ran. Events do not bubble.
func (e *Element) Dispatch(ev Event) bool {
	h, ok := e.Handler(ev.Type)
	if !ok {
		return false
	}
	if ev.Target == nil {
		ev.Target = e
	}
	h(ev)
	return true
}
