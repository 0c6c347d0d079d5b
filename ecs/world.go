package ecs

import "github.com/milk9111/pathrig/ecs/component"

// World owns entities, their components, the event queue and the host clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    Clock
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*SparseSet{}}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = map[component.ComponentID]*SparseSet{}
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the world's host-driven clock.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// Emit pushes an event for e onto the queue.
func (w *World) Emit(e Entity, typ string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Entity: e, Data: data})
}
