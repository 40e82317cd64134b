package dom

import "golang.org/x/net/html"

type EventPhase uint

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

// Event https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
	Phase         EventPhase
	Bubbles       bool
	Cancelable    bool

	defaultPrevented bool
	stopPropagation  bool
	stopImmediate    bool
}

// NewEvent creates an untrusted event ready for DispatchEvent.
func NewEvent(eventType string, bubbles, cancelable bool) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    bubbles,
		Cancelable: cancelable,
	}
}

func (e *Event) StopPropagation() {
	e.stopPropagation = true
}

func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediate = true
}

// PreventDefault only has an effect on cancelable events.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener is called with the event being dispatched.
type Listener func(e *Event)

// AddEventListener registers fn for eventType on n. Listeners run in
// registration order.
// https://dom.spec.whatwg.org/#dom-eventtarget-addeventlistener
func (d *Document) AddEventListener(n *html.Node, eventType string, fn Listener) {
	if n == nil || fn == nil || eventType == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	byType, ok := d.listeners[n]
	if !ok {
		byType = map[string][]Listener{}
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], fn)
}

func (d *Document) listenersFor(n *html.Node, eventType string) []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()
	src := d.listeners[n][eventType]
	return append([]Listener(nil), src...)
}

// DispatchEvent delivers e to target and then, if e bubbles, to each
// ancestor of target. It returns false if a listener cancelled the event.
// https://dom.spec.whatwg.org/#dom-eventtarget-dispatchevent
func (d *Document) DispatchEvent(target *html.Node, e *Event) bool {
	e.Target = target
	e.Phase = AtTargetPhase
	for n := target; n != nil; n = n.Parent {
		if n != target {
			if !e.Bubbles {
				break
			}
			e.Phase = BubblingPhase
		}
		e.CurrentTarget = n
		for _, fn := range d.listenersFor(n, e.Type) {
			fn(e)
			if e.stopImmediate {
				break
			}
		}
		if e.stopPropagation {
			break
		}
	}
	e.CurrentTarget = nil
	e.Phase = NoneEventPhase
	return !e.defaultPrevented
}
