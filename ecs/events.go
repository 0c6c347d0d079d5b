package ecs

// Event types emitted by the path-follower systems.
const (
	EventGroupSwitched  = "group_switched"
	EventSwitchRejected = "switch_rejected"
	EventGroupEmpty     = "group_empty"
	EventShakeFinished  = "shake_finished"
	EventRouteReloaded  = "route_reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   string
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the pending events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
