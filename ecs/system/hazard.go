package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
)

// HazardSystem kills motion controllers whose body overlaps a hazard.
type HazardSystem struct {
	physics *PhysicsSystem
}

func NewHazardSystem(physics *PhysicsSystem) *HazardSystem {
	return &HazardSystem{physics: physics}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil || s.physics == nil {
		return
	}

	for _, e := range w.Query(component.MotionComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		mc, _ := ecs.Get(w, e, component.MotionComponent)
		if mc.Controller == nil || mc.Controller.Snapshot().Dead {
			continue
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if body.Body == nil {
			continue
		}

		size := cp.Vector{X: body.Width, Y: body.Height}
		if s.physics.OverlapBox(body.Body.Position(), size, component.CategoryHazard) {
			log.Printf("hazard system: entity %s killed", e)
			mc.Controller.Kill()
		}
	}
}
