package entity

import (
	"fmt"

	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"github.com/milk9111/motioncore/prefabs"
)

func NewSolid(w *ecs.World, box prefabs.BoxSpec) (ecs.Entity, error) {
	return newBox(w, "solid", box, component.PhysicsBody{
		Width:      box.Width,
		Height:     box.Height,
		Friction:   box.Friction,
		Elasticity: box.Elasticity,
		Static:     true,
	}, component.CollisionLayer{Category: component.CategorySolid})
}

// NewCrate creates a loose dynamic box. Crates feel world gravity, so the
// magnet pushes them around.
func NewCrate(w *ecs.World, box prefabs.BoxSpec) (ecs.Entity, error) {
	e, err := newBox(w, "crate", box, component.PhysicsBody{
		Width:      box.Width,
		Height:     box.Height,
		Mass:       box.Mass,
		Friction:   box.Friction,
		Elasticity: box.Elasticity,
	}, component.CollisionLayer{
		Category: component.CategoryCrate,
		Mask:     component.CategorySolid | component.CategoryPlayer | component.CategoryCrate,
	})
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CrateTagComponent, component.CrateTag{}); err != nil {
		return 0, fmt.Errorf("crate: add tag: %w", err)
	}
	return e, nil
}

// NewHazard creates a static sensor box that kills on overlap.
func NewHazard(w *ecs.World, box prefabs.BoxSpec) (ecs.Entity, error) {
	e, err := newBox(w, "hazard", box, component.PhysicsBody{
		Width:  box.Width,
		Height: box.Height,
		Static: true,
		Sensor: true,
	}, component.CollisionLayer{
		Category: component.CategoryHazard,
		Mask:     component.CategoryPlayer,
	})
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HazardComponent, component.Hazard{Width: box.Width, Height: box.Height}); err != nil {
		return 0, fmt.Errorf("hazard: add hazard: %w", err)
	}
	return e, nil
}

func newBox(w *ecs.World, kind string, box prefabs.BoxSpec, body component.PhysicsBody, layer component.CollisionLayer) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: box.X, Y: box.Y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, body); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, layer); err != nil {
		return 0, fmt.Errorf("%s: add collision layer: %w", kind, err)
	}
	return e, nil
}
