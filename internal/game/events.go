package game

type EventType int

const (
	EventStateChanged EventType = iota
	EventPlayerWrapped
)

type Event struct {
	Type     EventType
	Op       Op
	From, To GameState
	X, Y     float64 // player position after the event
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
