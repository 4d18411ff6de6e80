// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event is a simulation lifecycle notification. The simulation only
// produces events; it never reacts to them.
type Event struct {
	Type EventType
	Data interface{} // WaveData, EnemyData, PhaseData или TowerData
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans events out to subscribed listeners. It is not safe for
// concurrent use; a session dispatches from its own update loop.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe removes listener from one event type.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to its type listeners, then to catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.any {
		listener.OnEvent(event)
	}
}

// DispatchAll delivers events in order.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
