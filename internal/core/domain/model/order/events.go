package order

// EventKind identifies what happened to an order.
type EventKind int

const (
	EventCreated EventKind = iota + 1
	EventStatusChanged
	EventDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventStatusChanged:
		return "status_changed"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event records one committed mutation of one order. The order it carries
// is a snapshot taken when the event was raised.
type Event struct {
	kind           EventKind
	order          *Order
	previousStatus Status
}

func NewCreatedEvent(o *Order) Event {
	return Event{kind: EventCreated, order: o.Clone()}
}

func NewStatusChangedEvent(o *Order, previous Status) Event {
	return Event{kind: EventStatusChanged, order: o.Clone(), previousStatus: previous}
}

func NewDeletedEvent(o *Order) Event {
	return Event{kind: EventDeleted, order: o.Clone()}
}

func (e Event) Kind() EventKind {
	return e.kind
}

func (e Event) Order() *Order {
	return e.order
}

// PreviousStatus is the status before the change. Only meaningful for
// EventStatusChanged.
func (e Event) PreviousStatus() Status {
	return e.previousStatus
}
