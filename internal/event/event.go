// internal/event/event.go
package event

import (
	"log"
	"slices"
)

// EventType names an event.
type EventType string

// Event is what listeners receive.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously on the caller's goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
// Listeners must be comparable; a ListenerFunc cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	ls := d.listeners[eventType]
	if i := slices.Index(ls, listener); i >= 0 {
		d.listeners[eventType] = slices.Delete(ls, i, i+1)
	}
}

// Dispatch sends e to every listener of its type, in subscription order.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

// LogListener writes lifecycle events to the standard logger.
type LogListener struct{}

func (LogListener) OnEvent(e Event) {
	switch e.Type {
	case BodiesInitialized:
		log.Printf("bodies initialized: %v", e.Data)
	case BoundaryReflected:
		// every frame has bounces; too noisy for the log
	default:
		log.Printf("%s", e.Type)
	}
}
