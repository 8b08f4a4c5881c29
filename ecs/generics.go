package ecs

import (
	"fmt"

	"github.com/milk9111/motioncore/ecs/component"
)

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) (*sparseSet[T], error) {
	if !kind.Valid() {
		return nil, component.ErrInvalidComponentKind
	}
	raw, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil, nil
		}
		s := &sparseSet[T]{}
		w.stores[kind.ID()] = s
		return s, nil
	}
	s, ok := raw.(*sparseSet[T])
	if !ok {
		return nil, fmt.Errorf("%w: id %d", component.ErrKindMismatch, kind.ID())
	}
	return s, nil
}

// Add attaches or replaces the component value on e.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	s, err := storeFor(w, handle.Kind(), true)
	if err != nil {
		return err
	}
	s.set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s, err := storeFor(w, handle.Kind(), false)
	if err != nil || s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s, err := storeFor(w, handle.Kind(), false)
	if err != nil || s == nil {
		return false
	}
	return s.has(e)
}

// Get returns a copy of the component value. Write changes back with Add.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	s, err := storeFor(w, handle.Kind(), false)
	if err != nil || s == nil {
		return zero, false
	}
	v, ok := s.get(e)
	if !ok {
		return zero, false
	}
	return *v, true
}

// ForEach visits every entity carrying the component. The pointer is only
// valid during the callback; fn must not add or remove components of this
// kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	s, err := storeFor(w, handle.Kind(), false)
	if err != nil || s == nil {
		return
	}
	for i := range s.owners {
		fn(s.owners[i], &s.dense[i])
	}
}
