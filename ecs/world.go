package ecs

import "github.com/milk9111/motioncore/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	dt       float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and recycles its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities lists every live entity.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

// SetDeltaTime records the length of the tick being simulated.
func (w *World) SetDeltaTime(dt float64) {
	w.dt = dt
}

// DeltaTime is the tick length in seconds.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Query returns the live entities that carry every kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate the smallest set
	smallest := 0
	for i, s := range sets {
		if len(s.entities()) < len(sets[smallest].entities()) {
			smallest = i
		}
	}

	var out []Entity
outer:
	for _, e := range sets[smallest].entities() {
		for i, s := range sets {
			if i != smallest && !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || len(s.entities()) == 0 {
		return 0, false
	}
	return s.entities()[0], true
}
